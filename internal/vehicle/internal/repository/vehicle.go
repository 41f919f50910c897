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

	"github.com/ecodeclub/ecocredit/internal/vehicle/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/vehicle/internal/repository/dao"
)

var (
	ErrRecordNotFound         = dao.ErrRecordNotFound
	ErrDuplicatedRegistration = dao.ErrDuplicatedRegistration
)

//go:generate mockgen -source=./vehicle.go -destination=../../mocks/vehicle_repository.mock.go -package=vehiclemocks VehicleRepository
type VehicleRepository interface {
	Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	FindByVIN(ctx context.Context, vin string) (domain.Vehicle, error)
	FindByOwner(ctx context.Context, owner string) (domain.Vehicle, error)
}

type vehicleRepository struct {
	dao dao.VehicleDAO
}

func NewVehicleRepository(d dao.VehicleDAO) VehicleRepository {
	return &vehicleRepository{dao: d}
}

func (r *vehicleRepository) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	res, err := r.dao.Create(ctx, dao.Vehicle{Vin: v.VIN, Owner: v.Owner})
	return r.toDomain(res), err
}

func (r *vehicleRepository) FindByVIN(ctx context.Context, vin string) (domain.Vehicle, error) {
	res, err := r.dao.FindByVIN(ctx, vin)
	return r.toDomain(res), err
}

func (r *vehicleRepository) FindByOwner(ctx context.Context, owner string) (domain.Vehicle, error) {
	res, err := r.dao.FindByOwner(ctx, owner)
	return r.toDomain(res), err
}

func (r *vehicleRepository) toDomain(v dao.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		VIN:   v.Vin,
		Owner: v.Owner,
		Ctime: v.Ctime,
	}
}
