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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// 全表只有一行
const singletonID int64 = 1

type PriceDAO interface {
	Save(ctx context.Context, p UnitPrice) error
	Find(ctx context.Context) (UnitPrice, error)
}

type PriceGORMDAO struct {
	db *egorm.Component
}

func NewPriceGORMDAO(db *egorm.Component) PriceDAO {
	return &PriceGORMDAO{db: db}
}

func (g *PriceGORMDAO) Save(ctx context.Context, p UnitPrice) error {
	now := time.Now().UnixMilli()
	p.Id = singletonID
	p.Ctime, p.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at", "setter", "utime"}),
	}).Create(&p).Error
}

func (g *PriceGORMDAO) Find(ctx context.Context) (UnitPrice, error) {
	var res UnitPrice
	err := g.db.WithContext(ctx).Where("id = ?", singletonID).First(&res).Error
	return res, err
}

type UnitPrice struct {
	Id        int64  `gorm:"primaryKey;comment:固定为1"`
	Amount    uint64 `gorm:"not null;comment:单个积分的价格"`
	UpdatedAt int64  `gorm:"not null;comment:价格更新时间, 由设置方给出"`
	Setter    string `gorm:"type:varchar(128);not null;comment:设置价格的地址"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&UnitPrice{})
}
