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

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/collaborators.mock.go -package=svcmocks VehicleRegistry,PriceSource,PaymentRail

// VehicleRegistry 持有人没有登记车辆时返回 ErrUnregisteredVehicle
type VehicleRegistry interface {
	VehicleOf(ctx context.Context, owner domain.Address) (string, error)
}

type PriceSource interface {
	CurrentUnitPrice(ctx context.Context) (domain.UnitPrice, error)
}

// PaymentRail 转账要么全部成功, 要么没有任何效果
type PaymentRail interface {
	Transfer(ctx context.Context, from, to domain.Address, amount uint64) error
}
