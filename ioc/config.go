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

package ioc

import (
	"github.com/ecodeclub/ecocredit/internal/ledger"
	"github.com/ecodeclub/ecocredit/internal/pkg/snowflake"
	"github.com/ecodeclub/ecocredit/internal/price"
	"github.com/gotomicro/ego/core/econf"
)

func initLedgerConfig() ledger.Config {
	var cfg ledger.Config
	err := econf.UnmarshalKey("ledger", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.EscrowAccount == "" {
		panic("ledger.escrowAccount 不能为空")
	}
	return cfg
}

func initPriceConfig() price.Config {
	var cfg price.Config
	err := econf.UnmarshalKey("price", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// initIDGenerator 多实例部署时每个实例的 nodeID 必须不同
func initIDGenerator() snowflake.Generator {
	g, err := snowflake.NewBizGenerator(uint(econf.GetInt("snowflake.nodeID")))
	if err != nil {
		panic(err)
	}
	return g
}
