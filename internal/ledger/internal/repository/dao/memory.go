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
	"fmt"
	"sort"
	"sync"
	"time"
)

// LedgerMemoryDAO 基于内存的实现, 事务通过回滚日志实现
// 同一时刻只有一个事务在执行
type LedgerMemoryDAO struct {
	store *memoryStore
	// 非 nil 表示处于事务中
	undo *[]func()
}

type memoryStore struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	records  []CreditRecord
	cursor   QueueCursor
	accounts map[string]HolderAccount
	rewards  map[string]PendingReward
	vehicles map[string]VehicleRecord
	state    LedgerState
	events   []LedgerEvent
}

func NewLedgerMemoryDAO() LedgerDAO {
	return &LedgerMemoryDAO{
		store: &memoryStore{
			cursor:   QueueCursor{Id: singletonID},
			accounts: make(map[string]HolderAccount),
			rewards:  make(map[string]PendingReward),
			vehicles: make(map[string]VehicleRecord),
			state:    LedgerState{Id: singletonID},
		},
	}
}

func (m *LedgerMemoryDAO) Transaction(ctx context.Context, fn func(tx LedgerDAO) error) error {
	if m.undo != nil {
		// 已经在事务中了, 直接复用
		return fn(m)
	}
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()
	var journal []func()
	tx := &LedgerMemoryDAO{store: m.store, undo: &journal}
	err := fn(tx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		m.store.mu.Lock()
		for i := len(journal) - 1; i >= 0; i-- {
			journal[i]()
		}
		m.store.mu.Unlock()
	}
	return err
}

// record 调用方必须持有 store.mu 写锁
func (m *LedgerMemoryDAO) record(fn func()) {
	if m.undo != nil {
		*m.undo = append(*m.undo, fn)
	}
}

func (m *LedgerMemoryDAO) FindQueueCursor(ctx context.Context) (QueueCursor, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return m.store.cursor, nil
}

func (m *LedgerMemoryDAO) SaveQueueCursor(ctx context.Context, c QueueCursor) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	old := m.store.cursor
	m.record(func() { m.store.cursor = old })
	c.Id = singletonID
	c.Utime = time.Now().UnixMilli()
	m.store.cursor = c
	return nil
}

func (m *LedgerMemoryDAO) CreateCreditRecord(ctx context.Context, r CreditRecord) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	n := uint64(len(m.store.records))
	switch {
	case r.Idx < n:
		return ErrDuplicatedCreditIdx
	case r.Idx > n:
		return fmt.Errorf("积分发行记录下标不连续, 期望 %d, 实际 %d", n, r.Idx)
	}
	m.record(func() { m.store.records = m.store.records[:n] })
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	m.store.records = append(m.store.records, r)
	return nil
}

func (m *LedgerMemoryDAO) FindCreditRecord(ctx context.Context, idx uint64) (CreditRecord, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	if idx >= uint64(len(m.store.records)) {
		return CreditRecord{}, ErrRecordNotFound
	}
	return m.store.records[idx], nil
}

func (m *LedgerMemoryDAO) InvalidateCreditRecord(ctx context.Context, idx uint64) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if idx >= uint64(len(m.store.records)) || !m.store.records[idx].Valid {
		return ErrCreditRecordConsumed
	}
	old := m.store.records[idx]
	m.record(func() { m.store.records[idx] = old })
	m.store.records[idx].Valid = false
	m.store.records[idx].Utime = time.Now().UnixMilli()
	return nil
}

func (m *LedgerMemoryDAO) FindHolderAccount(ctx context.Context, holder string) (HolderAccount, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	a, ok := m.store.accounts[holder]
	if !ok {
		return HolderAccount{}, ErrRecordNotFound
	}
	return a, nil
}

func (m *LedgerMemoryDAO) SaveHolderAccount(ctx context.Context, a HolderAccount) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	old, ok := m.store.accounts[a.Holder]
	m.record(func() {
		if ok {
			m.store.accounts[a.Holder] = old
			return
		}
		delete(m.store.accounts, a.Holder)
	})
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	if ok {
		a.Ctime = old.Ctime
	}
	m.store.accounts[a.Holder] = a
	return nil
}

func (m *LedgerMemoryDAO) ListHolderAccounts(ctx context.Context, offset, limit int) ([]HolderAccount, error) {
	m.store.mu.RLock()
	res := make([]HolderAccount, 0, len(m.store.accounts))
	for _, a := range m.store.accounts {
		res = append(res, a)
	}
	m.store.mu.RUnlock()
	sort.Slice(res, func(i, j int) bool {
		if res[i].Minted != res[j].Minted {
			return res[i].Minted > res[j].Minted
		}
		return res[i].Holder < res[j].Holder
	})
	if offset >= len(res) {
		return []HolderAccount{}, nil
	}
	end := min(offset+limit, len(res))
	return res[offset:end], nil
}

func (m *LedgerMemoryDAO) CountHolderAccounts(ctx context.Context) (int64, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return int64(len(m.store.accounts)), nil
}

func (m *LedgerMemoryDAO) SumHolderAccounts(ctx context.Context) (HolderAccountSum, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	var res HolderAccountSum
	for _, a := range m.store.accounts {
		res.Balance += a.Balance
		res.Minted += a.Minted
		res.Burned += a.Burned
	}
	return res, nil
}

func (m *LedgerMemoryDAO) FindPendingReward(ctx context.Context, holder string) (PendingReward, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	r, ok := m.store.rewards[holder]
	if !ok {
		return PendingReward{}, ErrRecordNotFound
	}
	return r, nil
}

func (m *LedgerMemoryDAO) SavePendingReward(ctx context.Context, r PendingReward) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	old, ok := m.store.rewards[r.Holder]
	m.record(func() {
		if ok {
			m.store.rewards[r.Holder] = old
			return
		}
		delete(m.store.rewards, r.Holder)
	})
	r.Utime = time.Now().UnixMilli()
	m.store.rewards[r.Holder] = r
	return nil
}

func (m *LedgerMemoryDAO) FindVehicleRecord(ctx context.Context, vin string) (VehicleRecord, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	v, ok := m.store.vehicles[vin]
	if !ok {
		return VehicleRecord{}, ErrRecordNotFound
	}
	return v, nil
}

func (m *LedgerMemoryDAO) SaveVehicleRecord(ctx context.Context, v VehicleRecord) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	old, ok := m.store.vehicles[v.Vin]
	m.record(func() {
		if ok {
			m.store.vehicles[v.Vin] = old
			return
		}
		delete(m.store.vehicles, v.Vin)
	})
	v.Utime = time.Now().UnixMilli()
	m.store.vehicles[v.Vin] = v
	return nil
}

func (m *LedgerMemoryDAO) FindLedgerState(ctx context.Context) (LedgerState, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return m.store.state, nil
}

func (m *LedgerMemoryDAO) SaveLedgerState(ctx context.Context, s LedgerState) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	old := m.store.state
	m.record(func() { m.store.state = old })
	s.Id = singletonID
	s.Utime = time.Now().UnixMilli()
	m.store.state = s
	return nil
}

func (m *LedgerMemoryDAO) CreateLedgerEvents(ctx context.Context, evts []LedgerEvent) error {
	if len(evts) == 0 {
		return nil
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	n := len(m.store.events)
	m.record(func() { m.store.events = m.store.events[:n] })
	now := time.Now().UnixMilli()
	for i := range evts {
		evts[i].Id = int64(len(m.store.events) + 1)
		evts[i].Ctime, evts[i].Utime = now, now
		m.store.events = append(m.store.events, evts[i])
	}
	return nil
}

func (m *LedgerMemoryDAO) FindUnpublishedLedgerEvents(ctx context.Context, afterID int64, limit int) ([]LedgerEvent, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	res := make([]LedgerEvent, 0, limit)
	for _, evt := range m.store.events {
		if len(res) == limit {
			break
		}
		if evt.Id > afterID && !evt.Published {
			res = append(res, evt)
		}
	}
	return res, nil
}

func (m *LedgerMemoryDAO) MarkLedgerEventsPublished(ctx context.Context, eventIDs []int64) error {
	if len(eventIDs) == 0 {
		return nil
	}
	ids := make(map[int64]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		ids[id] = struct{}{}
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for i := range m.store.events {
		if _, ok := ids[m.store.events[i].EventId]; !ok {
			continue
		}
		old := m.store.events[i]
		m.record(func() { m.store.events[i] = old })
		m.store.events[i].Published = true
		m.store.events[i].Utime = time.Now().UnixMilli()
	}
	return nil
}
