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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound    = gorm.ErrRecordNotFound
	ErrInsufficientFunds = errors.New("余额不足")
)

type PaymentDAO interface {
	// Transfer 扣减 from 的余额, 增加 to 的余额, 并记录流水, 三者在同一个事务里
	Transfer(ctx context.Context, t TransferLog) error
	// TransferIn 外部资金转入
	TransferIn(ctx context.Context, t TransferLog) error
	FindWallet(ctx context.Context, address string) (Wallet, error)
	FindTransferLogs(ctx context.Context, address string, offset, limit int) ([]TransferLog, error)
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) Transfer(ctx context.Context, t TransferLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from Wallet
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", t.FromAddr).First(&from).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: address=%s", ErrInsufficientFunds, t.FromAddr)
		}
		if err != nil {
			return err
		}
		if from.Balance < t.Amount {
			return fmt.Errorf("%w: address=%s, 余额 %d, 需要 %d",
				ErrInsufficientFunds, t.FromAddr, from.Balance, t.Amount)
		}
		now := time.Now().UnixMilli()
		if t.FromAddr != t.ToAddr {
			err = tx.Model(&Wallet{}).Where("id = ?", from.Id).Updates(map[string]any{
				"balance": gorm.Expr("balance - ?", t.Amount),
				"utime":   now,
			}).Error
			if err != nil {
				return fmt.Errorf("扣减余额失败: %w", err)
			}
			if err = g.deposit(tx, t.ToAddr, t.Amount, now); err != nil {
				return err
			}
		}
		return g.createLog(tx, t, now)
	})
}

func (g *PaymentGORMDAO) TransferIn(ctx context.Context, t TransferLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		if err := g.deposit(tx, t.ToAddr, t.Amount, now); err != nil {
			return err
		}
		return g.createLog(tx, t, now)
	})
}

func (g *PaymentGORMDAO) deposit(tx *gorm.DB, address string, amount uint64, now int64) error {
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]any{
			"balance": gorm.Expr("balance + ?", amount),
			"utime":   now,
		}),
	}).Create(&Wallet{
		Address: address,
		Balance: amount,
		Ctime:   now,
		Utime:   now,
	}).Error
	if err != nil {
		return fmt.Errorf("增加余额失败: %w", err)
	}
	return nil
}

func (g *PaymentGORMDAO) createLog(tx *gorm.DB, t TransferLog, now int64) error {
	t.Ctime, t.Utime = now, now
	if err := tx.Create(&t).Error; err != nil {
		return fmt.Errorf("记录转账流水失败: %w", err)
	}
	return nil
}

func (g *PaymentGORMDAO) FindWallet(ctx context.Context, address string) (Wallet, error) {
	var res Wallet
	err := g.db.WithContext(ctx).Where("address = ?", address).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) FindTransferLogs(ctx context.Context, address string, offset, limit int) ([]TransferLog, error) {
	var res []TransferLog
	err := g.db.WithContext(ctx).
		Where("from_addr = ? OR to_addr = ?", address, address).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

type Wallet struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:钱包自增ID"`
	Address string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_address;comment:钱包地址"`
	Balance uint64 `gorm:"not null;default:0;comment:余额"`
	Ctime   int64
	Utime   int64
}

type TransferLog struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:转账流水自增ID"`
	SN       string `gorm:"column:sn;type:varchar(255);not null;uniqueIndex:uniq_sn;comment:转账序列号"`
	FromAddr string `gorm:"type:varchar(128);not null;index:idx_from_addr;comment:转出地址, 外部转入时为空"`
	ToAddr   string `gorm:"type:varchar(128);not null;index:idx_to_addr;comment:转入地址"`
	Amount   uint64 `gorm:"not null;comment:金额"`
	Type     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:类型 1=钱包转账 2=外部转入"`
	Ctime    int64
	Utime    int64
}
