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

package ledger

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/consumer"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/event"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/job"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository/dao"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/web"
	"github.com/ecodeclub/ecocredit/internal/payment"
	"github.com/ecodeclub/ecocredit/internal/pkg/snowflake"
	"github.com/ecodeclub/ecocredit/internal/price"
	"github.com/ecodeclub/ecocredit/internal/vehicle"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	idGen snowflake.Generator,
	vm *vehicle.Module,
	pm *price.Module,
	paym *payment.Module,
	cfg Config) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*vehicle.Module), "Svc"),
		wire.FieldsOf(new(*price.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		newVehicleRegistry,
		newPriceSource,
		newPaymentRail,
		event.NewLedgerEventProducer,
		initService,
		web.NewHandler,
		web.NewAdminHandler,
		consumer.NewMileageEventConsumer,
		initRelayLedgerEventsJob,
		job.NewConservationAuditJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	svcOnce = &sync.Once{}
	svc     service.Service
)

// initService 账本服务内部有全局锁, 整个进程只能有一个实例
func initService(db *egorm.Component,
	registry service.VehicleRegistry,
	prices service.PriceSource,
	rail service.PaymentRail,
	producer event.LedgerEventProducer,
	idGen snowflake.Generator,
	cfg Config) service.Service {
	svcOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		repo := repository.NewLedgerRepository(dao.NewLedgerGORMDAO(db))
		svc = service.NewLedgerService(repo, registry, prices, rail, producer, idGen, cfg)
	})
	return svc
}

func initRelayLedgerEventsJob(svc service.Service) *job.RelayLedgerEventsJob {
	const (
		batchSize  = 100
		maxBatches = 10
	)
	return job.NewRelayLedgerEventsJob(svc, batchSize, maxBatches)
}
