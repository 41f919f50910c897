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
	"testing"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/ecodeclub/ecocredit/internal/payment"
	paymentmocks "github.com/ecodeclub/ecocredit/internal/payment/mocks"
	"github.com/ecodeclub/ecocredit/internal/price"
	pricemocks "github.com/ecodeclub/ecocredit/internal/price/mocks"
	"github.com/ecodeclub/ecocredit/internal/vehicle"
	vehiclemocks "github.com/ecodeclub/ecocredit/internal/vehicle/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestVehicleRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := vehiclemocks.NewMockService(ctrl)
	svc.EXPECT().VehicleOf(gomock.Any(), "0xa11ce").
		Return(vehicle.Vehicle{VIN: "1HGCM82633A004352", Owner: "0xa11ce"}, nil)
	svc.EXPECT().VehicleOf(gomock.Any(), "0xb0b").
		Return(vehicle.Vehicle{}, fmt.Errorf("%w: owner=0xb0b", vehicle.ErrVehicleNotFound))
	r := newVehicleRegistry(svc)

	vin, err := r.VehicleOf(context.Background(), "0xa11ce")
	assert.NoError(t, err)
	assert.Equal(t, "1HGCM82633A004352", vin)
	_, err = r.VehicleOf(context.Background(), "0xb0b")
	assert.ErrorIs(t, err, service.ErrUnregisteredVehicle)
}

func TestPriceSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := pricemocks.NewMockService(ctrl)
	gomock.InOrder(
		svc.EXPECT().CurrentUnitPrice(gomock.Any()).Return(price.Price{}, price.ErrPriceNotSet),
		svc.EXPECT().CurrentUnitPrice(gomock.Any()).Return(price.Price{Amount: 250, UpdatedAt: 1700000000000}, nil),
		svc.EXPECT().CurrentUnitPrice(gomock.Any()).Return(price.Price{}, errors.New("mock cache error")),
	)
	p := newPriceSource(svc)

	res, err := p.CurrentUnitPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.UnitPrice{}, res)
	res, err = p.CurrentUnitPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.UnitPrice{Amount: 250, UpdatedAt: 1700000000000}, res)
	_, err = p.CurrentUnitPrice(context.Background())
	assert.Error(t, err)
}

func TestPaymentRail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := paymentmocks.NewMockService(ctrl)
	svc.EXPECT().Transfer(gomock.Any(), "0xb0b", "0xe5c", uint64(750)).Return(payment.Transfer{SN: "sn"}, nil)
	svc.EXPECT().Transfer(gomock.Any(), "0xb0b", "0xe5c", uint64(751)).
		Return(payment.Transfer{}, payment.ErrInsufficientFunds)
	r := newPaymentRail(svc)

	assert.NoError(t, r.Transfer(context.Background(), "0xb0b", "0xe5c", 750))
	assert.ErrorIs(t, r.Transfer(context.Background(), "0xb0b", "0xe5c", 751), payment.ErrInsufficientFunds)
}
