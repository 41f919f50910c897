// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ecocredit/internal/price/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/price/internal/repository/cache"
	"github.com/ecodeclub/ecocredit/internal/price/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./price.go -destination=../../mocks/price_repository.mock.go -package=pricemocks PriceRepository
type PriceRepository interface {
	Save(ctx context.Context, p domain.Price, setter string) error
	// Find 没有设置过价格时返回零值
	Find(ctx context.Context) (domain.Price, error)
}

// CachedPriceRepository 先写数据库再更新缓存, 读的时候优先读缓存
type CachedPriceRepository struct {
	dao    dao.PriceDAO
	cache  cache.PriceCache
	logger *elog.Component
}

func NewCachedPriceRepository(d dao.PriceDAO, c cache.PriceCache) PriceRepository {
	return &CachedPriceRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedPriceRepository) Save(ctx context.Context, p domain.Price, setter string) error {
	err := r.dao.Save(ctx, dao.UnitPrice{
		Amount:    p.Amount,
		UpdatedAt: p.UpdatedAt,
		Setter:    setter,
	})
	if err != nil {
		return err
	}
	if err = r.cache.Set(ctx, p); err != nil {
		// 缓存里的旧价格必须删掉
		r.logger.Warn("更新价格缓存失败", elog.FieldErr(err))
		if err = r.cache.Delete(ctx); err != nil {
			r.logger.Error("删除价格缓存失败", elog.FieldErr(err))
		}
	}
	return nil
}

func (r *CachedPriceRepository) Find(ctx context.Context) (domain.Price, error) {
	p, err := r.cache.Get(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, cache.ErrPriceNotFound) {
		r.logger.Warn("查询价格缓存失败", elog.FieldErr(err))
	}
	up, err := r.dao.Find(ctx)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Price{}, nil
	}
	if err != nil {
		return domain.Price{}, err
	}
	p = domain.Price{Amount: up.Amount, UpdatedAt: up.UpdatedAt}
	if err = r.cache.Set(ctx, p); err != nil {
		r.logger.Warn("回写价格缓存失败", elog.FieldErr(err))
	}
	return p, nil
}
