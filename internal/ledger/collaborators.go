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

package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/ecodeclub/ecocredit/internal/payment"
	"github.com/ecodeclub/ecocredit/internal/price"
	"github.com/ecodeclub/ecocredit/internal/vehicle"
)

type vehicleRegistry struct {
	svc vehicle.Service
}

func newVehicleRegistry(svc vehicle.Service) service.VehicleRegistry {
	return &vehicleRegistry{svc: svc}
}

func (r *vehicleRegistry) VehicleOf(ctx context.Context, owner domain.Address) (string, error) {
	v, err := r.svc.VehicleOf(ctx, owner.String())
	if errors.Is(err, vehicle.ErrVehicleNotFound) {
		return "", fmt.Errorf("%w: %s", service.ErrUnregisteredVehicle, owner)
	}
	if err != nil {
		return "", err
	}
	return v.VIN, nil
}

type priceSource struct {
	svc price.Service
}

func newPriceSource(svc price.Service) service.PriceSource {
	return &priceSource{svc: svc}
}

// CurrentUnitPrice 没有设置过价格时返回 0, 由账本拒绝购买
func (p *priceSource) CurrentUnitPrice(ctx context.Context) (domain.UnitPrice, error) {
	res, err := p.svc.CurrentUnitPrice(ctx)
	if errors.Is(err, price.ErrPriceNotSet) {
		return domain.UnitPrice{}, nil
	}
	if err != nil {
		return domain.UnitPrice{}, err
	}
	return domain.UnitPrice{Amount: res.Amount, UpdatedAt: res.UpdatedAt}, nil
}

type paymentRail struct {
	svc payment.Service
}

func newPaymentRail(svc payment.Service) service.PaymentRail {
	return &paymentRail{svc: svc}
}

func (p *paymentRail) Transfer(ctx context.Context, from, to domain.Address, amount uint64) error {
	_, err := p.svc.Transfer(ctx, from.String(), to.String(), amount)
	return err
}
