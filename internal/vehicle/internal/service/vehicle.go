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

	"github.com/ecodeclub/ecocredit/internal/vehicle/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/vehicle/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrInvalidVIN        = errors.New("车辆识别代号非法")
	ErrInvalidOwner      = errors.New("车主地址为空")
	ErrVehicleNotFound   = errors.New("车辆没有登记")
	ErrDuplicatedVehicle = repository.ErrDuplicatedRegistration
)

//go:generate mockgen -source=./vehicle.go -destination=../../mocks/vehicle.mock.go -package=vehiclemocks Service
type Service interface {
	// Register 登记车辆, 车辆和车主都只能登记一次
	Register(ctx context.Context, owner, vin string) (domain.Vehicle, error)
	// OwnerOf 车辆没有登记时返回 ErrVehicleNotFound
	OwnerOf(ctx context.Context, vin string) (string, error)
	// VehicleOf 车主没有登记车辆时返回 ErrVehicleNotFound
	VehicleOf(ctx context.Context, owner string) (domain.Vehicle, error)
}

type service struct {
	repo   repository.VehicleRepository
	logger *elog.Component
}

func NewService(repo repository.VehicleRepository) Service {
	return &service{repo: repo, logger: elog.DefaultLogger}
}

func (s *service) Register(ctx context.Context, owner, vin string) (domain.Vehicle, error) {
	if owner == "" {
		return domain.Vehicle{}, ErrInvalidOwner
	}
	vin = domain.NormalizeVIN(vin)
	if !domain.ValidVIN(vin) {
		return domain.Vehicle{}, fmt.Errorf("%w: %s", ErrInvalidVIN, vin)
	}
	v, err := s.repo.Create(ctx, domain.Vehicle{VIN: vin, Owner: owner})
	if err != nil {
		return domain.Vehicle{}, err
	}
	s.logger.Info("登记车辆", elog.String("vin", vin), elog.String("owner", owner))
	return v, nil
}

func (s *service) OwnerOf(ctx context.Context, vin string) (string, error) {
	v, err := s.repo.FindByVIN(ctx, domain.NormalizeVIN(vin))
	if errors.Is(err, repository.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: vin=%s", ErrVehicleNotFound, vin)
	}
	return v.Owner, err
}

func (s *service) VehicleOf(ctx context.Context, owner string) (domain.Vehicle, error) {
	v, err := s.repo.FindByOwner(ctx, owner)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Vehicle{}, fmt.Errorf("%w: owner=%s", ErrVehicleNotFound, owner)
	}
	return v, err
}
