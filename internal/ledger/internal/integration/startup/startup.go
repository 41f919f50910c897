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

package startup

import (
	"context"

	"github.com/ecodeclub/ecocredit/internal/ledger"
	"github.com/ecodeclub/ecocredit/internal/payment"
	"github.com/ecodeclub/ecocredit/internal/pkg/snowflake"
	"github.com/ecodeclub/ecocredit/internal/price"
	testioc "github.com/ecodeclub/ecocredit/internal/test/ioc"
	"github.com/ecodeclub/ecocredit/internal/vehicle"
)

type Modules struct {
	Vehicle *vehicle.Module
	Price   *price.Module
	Payment *payment.Module
	Ledger  *ledger.Module
}

// InitModules 使用测试环境的数据库, 缓存和内存消息队列组装账本及其依赖的模块
func InitModules(priceCfg price.Config, cfg ledger.Config) (*Modules, error) {
	db := testioc.InitDB()
	ec := testioc.InitCache()
	q := testioc.InitMQ()
	vm := vehicle.InitModule(db)
	pm, err := price.InitModule(db, ec, q, priceCfg)
	if err != nil {
		return nil, err
	}
	paym := payment.InitModule(db)
	idGen, err := snowflake.NewBizGenerator(1)
	if err != nil {
		return nil, err
	}
	lm, err := ledger.InitModule(db, ec, q, idGen, vm, pm, paym, cfg)
	if err != nil {
		return nil, err
	}
	lm.MileageConsumer.Start(context.Background())
	return &Modules{Vehicle: vm, Price: pm, Payment: paym, Ledger: lm}, nil
}
