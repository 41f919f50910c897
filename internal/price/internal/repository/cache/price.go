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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ecocredit/internal/price/internal/domain"
	"github.com/pkg/errors"
)

const (
	priceKey        = "current"
	priceExpiration = time.Hour
)

var ErrPriceNotFound = errors.New("缓存中没有价格")

type PriceCache interface {
	Set(ctx context.Context, p domain.Price) error
	Get(ctx context.Context) (domain.Price, error)
	Delete(ctx context.Context) error
}

type priceCache struct {
	ec ecache.Cache
}

func NewPriceCache(ec ecache.Cache) PriceCache {
	return &priceCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "price:",
		},
	}
}

func (c *priceCache) Set(ctx context.Context, p domain.Price) error {
	val, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化价格失败")
	}
	return c.ec.Set(ctx, priceKey, string(val), priceExpiration)
}

func (c *priceCache) Get(ctx context.Context) (domain.Price, error) {
	val := c.ec.Get(ctx, priceKey)
	if val.KeyNotFound() {
		return domain.Price{}, ErrPriceNotFound
	}
	if val.Err != nil {
		return domain.Price{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return domain.Price{}, errors.Wrap(err, "缓存中的价格格式错误")
	}
	var p domain.Price
	if err = json.Unmarshal([]byte(str), &p); err != nil {
		return domain.Price{}, errors.Wrap(err, "反序列化价格失败")
	}
	return p, nil
}

func (c *priceCache) Delete(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, priceKey)
	return err
}
