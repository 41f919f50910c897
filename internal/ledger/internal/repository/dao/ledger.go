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

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound       = gorm.ErrRecordNotFound
	ErrDuplicatedCreditIdx  = errors.New("积分发行记录下标重复")
	ErrCreditRecordConsumed = errors.New("积分发行记录已作废")
)

// 单行表的固定主键
const singletonID int64 = 1

// LedgerDAO 所有写操作都应当在 Transaction 中进行, fn 收到的 tx 绑定到同一个事务
type LedgerDAO interface {
	Transaction(ctx context.Context, fn func(tx LedgerDAO) error) error

	// FindQueueCursor 不存在时返回零值
	FindQueueCursor(ctx context.Context) (QueueCursor, error)
	SaveQueueCursor(ctx context.Context, c QueueCursor) error

	CreateCreditRecord(ctx context.Context, r CreditRecord) error
	FindCreditRecord(ctx context.Context, idx uint64) (CreditRecord, error)
	InvalidateCreditRecord(ctx context.Context, idx uint64) error

	FindHolderAccount(ctx context.Context, holder string) (HolderAccount, error)
	SaveHolderAccount(ctx context.Context, a HolderAccount) error
	ListHolderAccounts(ctx context.Context, offset, limit int) ([]HolderAccount, error)
	CountHolderAccounts(ctx context.Context) (int64, error)
	SumHolderAccounts(ctx context.Context) (HolderAccountSum, error)

	FindPendingReward(ctx context.Context, holder string) (PendingReward, error)
	SavePendingReward(ctx context.Context, r PendingReward) error

	FindVehicleRecord(ctx context.Context, vin string) (VehicleRecord, error)
	SaveVehicleRecord(ctx context.Context, v VehicleRecord) error

	// FindLedgerState 不存在时返回零值
	FindLedgerState(ctx context.Context) (LedgerState, error)
	SaveLedgerState(ctx context.Context, s LedgerState) error

	CreateLedgerEvents(ctx context.Context, evts []LedgerEvent) error
	FindUnpublishedLedgerEvents(ctx context.Context, afterID int64, limit int) ([]LedgerEvent, error)
	// MarkLedgerEventsPublished 按 EventId 标记
	MarkLedgerEventsPublished(ctx context.Context, eventIDs []int64) error
}

type CreditRecord struct {
	Idx      uint64 `gorm:"primaryKey;autoIncrement:false;comment:发行队列下标"`
	Holder   string `gorm:"type:varchar(64);not null;index:idx_holder;comment:持有人地址"`
	IssuedAt int64  `gorm:"not null;comment:发行时间,UTC Unix毫秒数"`
	Valid    bool   `gorm:"not null;comment:是否有效,被购买后置为false"`
	Ctime    int64
	Utime    int64
}

type QueueCursor struct {
	Id         int64  `gorm:"primaryKey;autoIncrement:false"`
	MintCursor uint64 `gorm:"not null;comment:下一个发行下标"`
	BurnCursor uint64 `gorm:"not null;comment:下一个销毁下标"`
	Ctime      int64
	Utime      int64
}

type HolderAccount struct {
	Holder  string `gorm:"primaryKey;type:varchar(64);comment:持有人地址"`
	Balance uint64 `gorm:"not null;comment:净归属积分数"`
	Minted  uint64 `gorm:"not null;comment:累计发行积分数"`
	Burned  uint64 `gorm:"not null;comment:累计购买销毁积分数"`
	Ctime   int64
	Utime   int64
}

type HolderAccountSum struct {
	Balance uint64
	Minted  uint64
	Burned  uint64
}

type PendingReward struct {
	Holder string `gorm:"primaryKey;type:varchar(64);comment:持有人地址"`
	Amount uint64 `gorm:"not null;comment:待领取金额,最小支付单位"`
	Ctime  int64
	Utime  int64
}

type VehicleRecord struct {
	Vin                  string `gorm:"primaryKey;type:varchar(17);comment:车辆识别码"`
	LastProcessedReading uint64 `gorm:"not null;comment:最近一次处理的里程,100的整数倍"`
	LastProcessedAt      int64  `gorm:"not null;comment:最近一次处理时间,UTC Unix毫秒数"`
	Ctime                int64
	Utime                int64
}

type LedgerState struct {
	Id                  int64  `gorm:"primaryKey;autoIncrement:false"`
	UnitPrice           uint64 `gorm:"not null;comment:最近一次购买采用的单价"`
	LastPriceUpdateTime int64  `gorm:"not null;comment:该单价的更新时间"`
	TotalMinted         uint64 `gorm:"not null;comment:累计发行"`
	TotalBurned         uint64 `gorm:"not null;comment:累计销毁"`
	Ctime               int64
	Utime               int64
}

type LedgerEvent struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:事件自增ID"`
	EventId      int64  `gorm:"not null;uniqueIndex:unq_event_id;comment:全局唯一事件ID"`
	Type         string `gorm:"type:varchar(32);not null;comment:事件类型"`
	Holder       string `gorm:"type:varchar(64);not null;index:idx_holder;comment:持有人/买方地址"`
	Counterparty string `gorm:"type:varchar(64);not null;default:'';comment:卖方地址"`
	Vin          string `gorm:"type:varchar(17);not null;default:'';comment:车辆识别码"`
	Amount       uint64 `gorm:"not null;comment:数量或金额"`
	Distance     uint64 `gorm:"not null;default:0;comment:里程"`
	Published    bool   `gorm:"not null;index:idx_published;comment:是否已发送到消息队列"`
	Ctime        int64
	Utime        int64
}
