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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecocredit/internal/price/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/price/internal/event"
	"github.com/ecodeclub/ecocredit/internal/price/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrAccessDenied = errors.New("没有设置价格的权限")
	ErrInvalidPrice = errors.New("价格必须大于 0")
	ErrPriceNotSet  = errors.New("还没有设置价格")
)

type Config struct {
	// Setter 唯一允许设置价格的地址
	Setter string `yaml:"setter"`
}

//go:generate mockgen -source=./price.go -destination=../../mocks/price.mock.go -package=pricemocks Service
type Service interface {
	SetPrice(ctx context.Context, caller string, amount uint64) (domain.Price, error)
	// CurrentUnitPrice 没有设置过价格时返回 ErrPriceNotSet
	CurrentUnitPrice(ctx context.Context) (domain.Price, error)
}

type service struct {
	repo     repository.PriceRepository
	producer event.PriceEventProducer
	cfg      Config
	now      func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.PriceRepository, producer event.PriceEventProducer, cfg Config) Service {
	return &service{
		repo:     repo,
		producer: producer,
		cfg:      cfg,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) SetPrice(ctx context.Context, caller string, amount uint64) (domain.Price, error) {
	if s.cfg.Setter == "" || caller != s.cfg.Setter {
		return domain.Price{}, fmt.Errorf("%w: caller=%s", ErrAccessDenied, caller)
	}
	if amount == 0 {
		return domain.Price{}, ErrInvalidPrice
	}
	p := domain.Price{Amount: amount, UpdatedAt: s.now().UnixMilli()}
	if err := s.repo.Save(ctx, p, caller); err != nil {
		return domain.Price{}, err
	}
	err := s.producer.Produce(ctx, event.PriceEvent{
		Amount:    p.Amount,
		UpdatedAt: p.UpdatedAt,
		Setter:    caller,
	})
	if err != nil {
		s.logger.Warn("发送价格更新事件失败", elog.FieldErr(err), elog.Any("price", p))
	}
	return p, nil
}

func (s *service) CurrentUnitPrice(ctx context.Context) (domain.Price, error) {
	p, err := s.repo.Find(ctx)
	if err != nil {
		return domain.Price{}, err
	}
	if !p.IsSet() {
		return domain.Price{}, ErrPriceNotSet
	}
	return p, nil
}
