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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/ecocredit/internal/ledger"
	"github.com/ecodeclub/ecocredit/internal/payment"
	"github.com/ecodeclub/ecocredit/internal/price"
	"github.com/ecodeclub/ecocredit/internal/vehicle"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, initIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		initLedgerConfig,
		initPriceConfig,
		vehicle.InitModule,
		wire.FieldsOf(new(*vehicle.Module), "Hdl"),
		price.InitModule,
		wire.FieldsOf(new(*price.Module), "Hdl", "AdminHdl"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl", "AdminHdl"),
		ledger.InitModule,
		wire.FieldsOf(new(*ledger.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
