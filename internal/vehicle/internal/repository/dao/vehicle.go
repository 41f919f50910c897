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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound         = gorm.ErrRecordNotFound
	ErrDuplicatedRegistration = errors.New("车辆或者车主已经登记过")
)

type VehicleDAO interface {
	Create(ctx context.Context, v Vehicle) (Vehicle, error)
	FindByVIN(ctx context.Context, vin string) (Vehicle, error)
	FindByOwner(ctx context.Context, owner string) (Vehicle, error)
}

type VehicleGORMDAO struct {
	db *egorm.Component
}

func NewVehicleGORMDAO(db *egorm.Component) VehicleDAO {
	return &VehicleGORMDAO{db: db}
}

func (g *VehicleGORMDAO) Create(ctx context.Context, v Vehicle) (Vehicle, error) {
	now := time.Now().UnixMilli()
	v.Ctime, v.Utime = now, now
	err := g.db.WithContext(ctx).Create(&v).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return Vehicle{}, ErrDuplicatedRegistration
		}
	}
	return v, err
}

func (g *VehicleGORMDAO) FindByVIN(ctx context.Context, vin string) (Vehicle, error) {
	var res Vehicle
	err := g.db.WithContext(ctx).Where("vin = ?", vin).First(&res).Error
	return res, err
}

func (g *VehicleGORMDAO) FindByOwner(ctx context.Context, owner string) (Vehicle, error) {
	var res Vehicle
	err := g.db.WithContext(ctx).Where("owner = ?", owner).First(&res).Error
	return res, err
}

// Vehicle 一个车主只能登记一辆车, 一辆车只能属于一个车主
type Vehicle struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;comment:车辆自增ID"`
	Vin   string `gorm:"type:varchar(32);not null;uniqueIndex:uniq_vin;comment:车辆识别代号"`
	Owner string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_owner;comment:车主钱包地址"`
	Ctime int64
	Utime int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Vehicle{})
}
