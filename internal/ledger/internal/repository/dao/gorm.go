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
	"gorm.io/gorm/clause"
)

type LedgerGORMDAO struct {
	db *egorm.Component
	// inTx 为 true 时读操作加行锁, 读出来的数据在事务提交前不会被其他进程修改
	inTx bool
}

func NewLedgerGORMDAO(db *egorm.Component) LedgerDAO {
	return &LedgerGORMDAO{db: db}
}

func (g *LedgerGORMDAO) Transaction(ctx context.Context, fn func(tx LedgerDAO) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		return fn(&LedgerGORMDAO{db: tx, inTx: true})
	})
}

// FindQueueCursor 加行锁, 同一个事务内对队列的所有操作都串行化
func (g *LedgerGORMDAO) FindQueueCursor(ctx context.Context) (QueueCursor, error) {
	var c QueueCursor
	err := g.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", singletonID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return QueueCursor{Id: singletonID}, nil
	}
	return c, err
}

// forUpdate 事务内的读取加上 SELECT ... FOR UPDATE
func (g *LedgerGORMDAO) forUpdate(ctx context.Context) *gorm.DB {
	db := g.db.WithContext(ctx)
	if g.inTx {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func (g *LedgerGORMDAO) SaveQueueCursor(ctx context.Context, c QueueCursor) error {
	now := time.Now().UnixMilli()
	c.Id = singletonID
	c.Ctime, c.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mint_cursor", "burn_cursor", "utime"}),
	}).Create(&c).Error
}

func (g *LedgerGORMDAO) CreateCreditRecord(ctx context.Context, r CreditRecord) error {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := g.db.WithContext(ctx).Create(&r).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrDuplicatedCreditIdx
		}
	}
	return err
}

func (g *LedgerGORMDAO) FindCreditRecord(ctx context.Context, idx uint64) (CreditRecord, error) {
	var r CreditRecord
	err := g.forUpdate(ctx).Where("idx = ?", idx).First(&r).Error
	return r, err
}

func (g *LedgerGORMDAO) InvalidateCreditRecord(ctx context.Context, idx uint64) error {
	res := g.db.WithContext(ctx).Model(&CreditRecord{}).
		Where("idx = ? AND valid = ?", idx, true).
		Updates(map[string]any{
			"valid": false,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCreditRecordConsumed
	}
	return nil
}

func (g *LedgerGORMDAO) FindHolderAccount(ctx context.Context, holder string) (HolderAccount, error) {
	var a HolderAccount
	err := g.forUpdate(ctx).Where("holder = ?", holder).First(&a).Error
	return a, err
}

func (g *LedgerGORMDAO) SaveHolderAccount(ctx context.Context, a HolderAccount) error {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "holder"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "minted", "burned", "utime"}),
	}).Create(&a).Error
}

func (g *LedgerGORMDAO) ListHolderAccounts(ctx context.Context, offset, limit int) ([]HolderAccount, error) {
	var res []HolderAccount
	err := g.db.WithContext(ctx).Order("minted DESC, holder ASC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *LedgerGORMDAO) CountHolderAccounts(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&HolderAccount{}).Count(&cnt).Error
	return cnt, err
}

func (g *LedgerGORMDAO) SumHolderAccounts(ctx context.Context) (HolderAccountSum, error) {
	var res HolderAccountSum
	err := g.db.WithContext(ctx).Model(&HolderAccount{}).
		Select("COALESCE(SUM(balance), 0) AS balance, COALESCE(SUM(minted), 0) AS minted, COALESCE(SUM(burned), 0) AS burned").
		Scan(&res).Error
	return res, err
}

func (g *LedgerGORMDAO) FindPendingReward(ctx context.Context, holder string) (PendingReward, error) {
	var r PendingReward
	err := g.forUpdate(ctx).Where("holder = ?", holder).First(&r).Error
	return r, err
}

func (g *LedgerGORMDAO) SavePendingReward(ctx context.Context, r PendingReward) error {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "holder"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "utime"}),
	}).Create(&r).Error
}

func (g *LedgerGORMDAO) FindVehicleRecord(ctx context.Context, vin string) (VehicleRecord, error) {
	var v VehicleRecord
	err := g.forUpdate(ctx).Where("vin = ?", vin).First(&v).Error
	return v, err
}

func (g *LedgerGORMDAO) SaveVehicleRecord(ctx context.Context, v VehicleRecord) error {
	now := time.Now().UnixMilli()
	v.Ctime, v.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vin"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_processed_reading", "last_processed_at", "utime"}),
	}).Create(&v).Error
}

func (g *LedgerGORMDAO) FindLedgerState(ctx context.Context) (LedgerState, error) {
	var s LedgerState
	err := g.forUpdate(ctx).Where("id = ?", singletonID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LedgerState{Id: singletonID}, nil
	}
	return s, err
}

func (g *LedgerGORMDAO) SaveLedgerState(ctx context.Context, s LedgerState) error {
	now := time.Now().UnixMilli()
	s.Id = singletonID
	s.Ctime, s.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"unit_price", "last_price_update_time", "total_minted", "total_burned", "utime",
		}),
	}).Create(&s).Error
}

func (g *LedgerGORMDAO) CreateLedgerEvents(ctx context.Context, evts []LedgerEvent) error {
	if len(evts) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range evts {
		evts[i].Ctime, evts[i].Utime = now, now
	}
	return g.db.WithContext(ctx).Create(&evts).Error
}

func (g *LedgerGORMDAO) FindUnpublishedLedgerEvents(ctx context.Context, afterID int64, limit int) ([]LedgerEvent, error) {
	var res []LedgerEvent
	err := g.db.WithContext(ctx).Where("id > ? AND published = ?", afterID, false).
		Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}

func (g *LedgerGORMDAO) MarkLedgerEventsPublished(ctx context.Context, eventIDs []int64) error {
	if len(eventIDs) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).Model(&LedgerEvent{}).
		Where("event_id IN ?", eventIDs).
		Updates(map[string]any{
			"published": true,
			"utime":     time.Now().UnixMilli(),
		}).Error
}
