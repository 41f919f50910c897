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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository/dao"
)

var (
	ErrRecordNotFound       = dao.ErrRecordNotFound
	ErrDuplicatedCreditIdx  = dao.ErrDuplicatedCreditIdx
	ErrCreditRecordConsumed = dao.ErrCreditRecordConsumed
)

// LedgerRepository 查询持有人, 待领取奖励, 车辆和全局状态时, 不存在的记录返回零值
type LedgerRepository interface {
	Transaction(ctx context.Context, fn func(tx LedgerRepository) error) error

	QueueCursor(ctx context.Context) (domain.QueueCursor, error)
	SaveQueueCursor(ctx context.Context, c domain.QueueCursor) error
	CreateCreditRecord(ctx context.Context, r domain.CreditRecord) error
	// FindCreditRecord 不存在时返回 ErrRecordNotFound
	FindCreditRecord(ctx context.Context, idx uint64) (domain.CreditRecord, error)
	InvalidateCreditRecord(ctx context.Context, idx uint64) error

	HolderAccount(ctx context.Context, holder domain.Address) (domain.HolderAccount, error)
	SaveHolderAccount(ctx context.Context, a domain.HolderAccount) error
	ListHolderAccounts(ctx context.Context, offset, limit int) ([]domain.HolderAccount, error)
	CountHolderAccounts(ctx context.Context) (int64, error)
	SumHolderAccounts(ctx context.Context) (domain.HolderAccount, error)

	PendingReward(ctx context.Context, holder domain.Address) (domain.PendingReward, error)
	SavePendingReward(ctx context.Context, r domain.PendingReward) error

	Vehicle(ctx context.Context, vin string) (domain.Vehicle, error)
	SaveVehicle(ctx context.Context, v domain.Vehicle) error

	GlobalState(ctx context.Context) (domain.GlobalState, error)
	SaveGlobalState(ctx context.Context, s domain.GlobalState) error

	CreateLedgerEvents(ctx context.Context, evts []domain.LedgerEvent) error
	// FindUnpublishedLedgerEvents 按自增ID升序返回 afterID 之后的未发送事件
	FindUnpublishedLedgerEvents(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error)
	MarkLedgerEventsPublished(ctx context.Context, eventIDs []int64) error
}

type ledgerRepository struct {
	dao dao.LedgerDAO
}

func NewLedgerRepository(d dao.LedgerDAO) LedgerRepository {
	return &ledgerRepository{dao: d}
}

func (r *ledgerRepository) Transaction(ctx context.Context, fn func(tx LedgerRepository) error) error {
	return r.dao.Transaction(ctx, func(tx dao.LedgerDAO) error {
		return fn(&ledgerRepository{dao: tx})
	})
}

func (r *ledgerRepository) QueueCursor(ctx context.Context) (domain.QueueCursor, error) {
	c, err := r.dao.FindQueueCursor(ctx)
	return domain.QueueCursor{MintCursor: c.MintCursor, BurnCursor: c.BurnCursor}, err
}

func (r *ledgerRepository) SaveQueueCursor(ctx context.Context, c domain.QueueCursor) error {
	return r.dao.SaveQueueCursor(ctx, dao.QueueCursor{MintCursor: c.MintCursor, BurnCursor: c.BurnCursor})
}

func (r *ledgerRepository) CreateCreditRecord(ctx context.Context, c domain.CreditRecord) error {
	return r.dao.CreateCreditRecord(ctx, dao.CreditRecord{
		Idx:      c.Index,
		Holder:   c.Holder.String(),
		IssuedAt: c.IssuedAt,
		Valid:    c.Valid,
	})
}

func (r *ledgerRepository) FindCreditRecord(ctx context.Context, idx uint64) (domain.CreditRecord, error) {
	c, err := r.dao.FindCreditRecord(ctx, idx)
	if err != nil {
		return domain.CreditRecord{}, err
	}
	return domain.CreditRecord{
		Index:    c.Idx,
		Holder:   domain.Address(c.Holder),
		IssuedAt: c.IssuedAt,
		Valid:    c.Valid,
	}, nil
}

func (r *ledgerRepository) InvalidateCreditRecord(ctx context.Context, idx uint64) error {
	return r.dao.InvalidateCreditRecord(ctx, idx)
}

func (r *ledgerRepository) HolderAccount(ctx context.Context, holder domain.Address) (domain.HolderAccount, error) {
	a, err := r.dao.FindHolderAccount(ctx, holder.String())
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.HolderAccount{Holder: holder}, nil
	}
	if err != nil {
		return domain.HolderAccount{}, err
	}
	return r.toAccountDomain(a), nil
}

func (r *ledgerRepository) SaveHolderAccount(ctx context.Context, a domain.HolderAccount) error {
	return r.dao.SaveHolderAccount(ctx, dao.HolderAccount{
		Holder:  a.Holder.String(),
		Balance: a.Balance,
		Minted:  a.Minted,
		Burned:  a.Burned,
	})
}

func (r *ledgerRepository) ListHolderAccounts(ctx context.Context, offset, limit int) ([]domain.HolderAccount, error) {
	as, err := r.dao.ListHolderAccounts(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.HolderAccount) domain.HolderAccount {
		return r.toAccountDomain(src)
	}), nil
}

func (r *ledgerRepository) CountHolderAccounts(ctx context.Context) (int64, error) {
	return r.dao.CountHolderAccounts(ctx)
}

// SumHolderAccounts 返回值的 Holder 为空地址
func (r *ledgerRepository) SumHolderAccounts(ctx context.Context) (domain.HolderAccount, error) {
	s, err := r.dao.SumHolderAccounts(ctx)
	return domain.HolderAccount{Balance: s.Balance, Minted: s.Minted, Burned: s.Burned}, err
}

func (r *ledgerRepository) PendingReward(ctx context.Context, holder domain.Address) (domain.PendingReward, error) {
	p, err := r.dao.FindPendingReward(ctx, holder.String())
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.PendingReward{Holder: holder}, nil
	}
	if err != nil {
		return domain.PendingReward{}, err
	}
	return domain.PendingReward{Holder: domain.Address(p.Holder), Amount: p.Amount}, nil
}

func (r *ledgerRepository) SavePendingReward(ctx context.Context, p domain.PendingReward) error {
	return r.dao.SavePendingReward(ctx, dao.PendingReward{Holder: p.Holder.String(), Amount: p.Amount})
}

func (r *ledgerRepository) Vehicle(ctx context.Context, vin string) (domain.Vehicle, error) {
	v, err := r.dao.FindVehicleRecord(ctx, vin)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Vehicle{VIN: vin}, nil
	}
	if err != nil {
		return domain.Vehicle{}, err
	}
	return domain.Vehicle{
		VIN:                  v.Vin,
		LastProcessedReading: v.LastProcessedReading,
		LastProcessedAt:      v.LastProcessedAt,
	}, nil
}

func (r *ledgerRepository) SaveVehicle(ctx context.Context, v domain.Vehicle) error {
	return r.dao.SaveVehicleRecord(ctx, dao.VehicleRecord{
		Vin:                  v.VIN,
		LastProcessedReading: v.LastProcessedReading,
		LastProcessedAt:      v.LastProcessedAt,
	})
}

func (r *ledgerRepository) GlobalState(ctx context.Context) (domain.GlobalState, error) {
	s, err := r.dao.FindLedgerState(ctx)
	return domain.GlobalState{
		UnitPrice:           s.UnitPrice,
		LastPriceUpdateTime: s.LastPriceUpdateTime,
		TotalMinted:         s.TotalMinted,
		TotalBurned:         s.TotalBurned,
	}, err
}

func (r *ledgerRepository) SaveGlobalState(ctx context.Context, s domain.GlobalState) error {
	return r.dao.SaveLedgerState(ctx, dao.LedgerState{
		UnitPrice:           s.UnitPrice,
		LastPriceUpdateTime: s.LastPriceUpdateTime,
		TotalMinted:         s.TotalMinted,
		TotalBurned:         s.TotalBurned,
	})
}

func (r *ledgerRepository) CreateLedgerEvents(ctx context.Context, evts []domain.LedgerEvent) error {
	return r.dao.CreateLedgerEvents(ctx, slice.Map(evts, func(idx int, src domain.LedgerEvent) dao.LedgerEvent {
		return dao.LedgerEvent{
			EventId:      src.EventID,
			Type:         src.Type.ToString(),
			Holder:       src.Holder.String(),
			Counterparty: src.Counterparty.String(),
			Vin:          src.VIN,
			Amount:       src.Amount,
			Distance:     src.Distance,
		}
	}))
}

func (r *ledgerRepository) FindUnpublishedLedgerEvents(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error) {
	evts, err := r.dao.FindUnpublishedLedgerEvents(ctx, afterID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(evts, func(idx int, src dao.LedgerEvent) domain.LedgerEvent {
		return domain.LedgerEvent{
			ID:           src.Id,
			EventID:      src.EventId,
			Type:         domain.EventType(src.Type),
			Holder:       domain.Address(src.Holder),
			Counterparty: domain.Address(src.Counterparty),
			VIN:          src.Vin,
			Amount:       src.Amount,
			Distance:     src.Distance,
			Ctime:        src.Ctime,
		}
	}), nil
}

func (r *ledgerRepository) MarkLedgerEventsPublished(ctx context.Context, eventIDs []int64) error {
	return r.dao.MarkLedgerEventsPublished(ctx, eventIDs)
}

func (r *ledgerRepository) toAccountDomain(a dao.HolderAccount) domain.HolderAccount {
	return domain.HolderAccount{
		Holder:  domain.Address(a.Holder),
		Balance: a.Balance,
		Minted:  a.Minted,
		Burned:  a.Burned,
	}
}
