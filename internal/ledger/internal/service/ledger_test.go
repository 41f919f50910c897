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
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/event"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository/dao"
	svcmocks "github.com/ecodeclub/ecocredit/internal/ledger/internal/service/mocks"
	"github.com/ecodeclub/ecocredit/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

const (
	escrowAccount domain.Address = "escrow"
	alice         domain.Address = "alice"
	bob           domain.Address = "bob"
	buyer         domain.Address = "buyer"
	reporter      domain.Address = "reporter"

	aliceVIN = "1HGCM82633A004352"
	bobVIN   = "1HGCM82633A004353"

	unitPrice uint64 = 250
)

type ledgerFixture struct {
	svc      *ledgerService
	repo     repository.LedgerRepository
	registry *svcmocks.MockVehicleRegistry
	prices   *svcmocks.MockPriceSource
	payment  *svcmocks.MockPaymentRail
	consumer mq.Consumer
}

func newLedgerFixture(t *testing.T, ctrl *gomock.Controller, cfg Config) *ledgerFixture {
	t.Helper()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.LedgerEventName, 1))
	consumer, err := q.Consumer(event.LedgerEventName, "test")
	require.NoError(t, err)
	producer, err := event.NewLedgerEventProducer(q)
	require.NoError(t, err)
	idGen, err := snowflake.NewBizGenerator(0)
	require.NoError(t, err)

	registry := svcmocks.NewMockVehicleRegistry(ctrl)
	vins := map[domain.Address]string{alice: aliceVIN, bob: bobVIN}
	registry.EXPECT().VehicleOf(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, owner domain.Address) (string, error) {
			vin, ok := vins[owner]
			if !ok {
				return "", ErrUnregisteredVehicle
			}
			return vin, nil
		}).AnyTimes()
	prices := svcmocks.NewMockPriceSource(ctrl)
	prices.EXPECT().CurrentUnitPrice(gomock.Any()).
		Return(domain.UnitPrice{Amount: unitPrice, UpdatedAt: 1700000000000}, nil).AnyTimes()
	payment := svcmocks.NewMockPaymentRail(ctrl)

	if cfg.EscrowAccount == "" {
		cfg.EscrowAccount = escrowAccount
	}
	repo := repository.NewLedgerRepository(dao.NewLedgerMemoryDAO())
	svc := NewLedgerService(repo, registry, prices, payment, producer, idGen, cfg).(*ledgerService)
	svc.initialInterval = time.Millisecond
	svc.maxInterval = 2 * time.Millisecond
	svc.now = func() time.Time { return time.UnixMilli(1700000100000) }
	return &ledgerFixture{
		svc:      svc,
		repo:     repo,
		registry: registry,
		prices:   prices,
		payment:  payment,
		consumer: consumer,
	}
}

// snapshot 账本中所有可观察的状态
type ledgerSnapshot struct {
	Cursor   domain.QueueCursor
	State    domain.GlobalState
	Accounts []domain.HolderAccount
	Pending  map[domain.Address]uint64
	Records  []domain.CreditRecord
}

func (f *ledgerFixture) snapshot(t *testing.T) ledgerSnapshot {
	t.Helper()
	ctx := context.Background()
	var (
		res ledgerSnapshot
		err error
	)
	res.Cursor, err = f.repo.QueueCursor(ctx)
	require.NoError(t, err)
	res.State, err = f.repo.GlobalState(ctx)
	require.NoError(t, err)
	res.Accounts, err = f.repo.ListHolderAccounts(ctx, 0, 100)
	require.NoError(t, err)
	res.Pending = make(map[domain.Address]uint64)
	for _, h := range []domain.Address{alice, bob, buyer} {
		res.Pending[h], err = f.svc.PendingRewardOf(ctx, h)
		require.NoError(t, err)
	}
	for i := uint64(0); i < res.Cursor.MintCursor; i++ {
		r, err := f.svc.CreditRecordAt(ctx, i)
		require.NoError(t, err)
		res.Records = append(res.Records, r)
	}
	return res
}

func (f *ledgerFixture) assertConservation(t *testing.T) {
	t.Helper()
	report, err := f.svc.AuditConservation(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Violations())
}

func (f *ledgerFixture) consumeEvent(t *testing.T) event.LedgerEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, err := f.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.LedgerEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	return evt
}

func TestLedgerService_RecordMileage_Rounding(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	ctx := context.Background()

	res, err := f.svc.RecordMileage(ctx, alice, 199)
	require.NoError(t, err)
	assert.Equal(t, domain.MintResult{Holder: alice, VIN: aliceVIN, Units: 1, Reading: 100, Distance: 100}, res)

	res, err = f.svc.RecordMileage(ctx, alice, 450)
	require.NoError(t, err)
	assert.Equal(t, domain.MintResult{Holder: alice, VIN: aliceVIN, Units: 3, Reading: 400, Distance: 300}, res)

	st, err := f.svc.GlobalState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), st.TotalMinted)
	v, err := f.svc.VehicleState(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.Vehicle{VIN: aliceVIN, LastProcessedReading: 400, LastProcessedAt: 1700000100000}, v)
	acc, err := f.svc.AccountOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.HolderAccount{Holder: alice, Balance: 4, Minted: 4}, acc)
	cnt, err := f.svc.AvailableCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), cnt)

	evt := f.consumeEvent(t)
	assert.Equal(t, domain.EventUnitMinted.ToString(), evt.Type)
	assert.Equal(t, alice.String(), evt.Holder)
	assert.Equal(t, aliceVIN, evt.VIN)
	assert.Equal(t, uint64(1), evt.Amount)
	assert.Equal(t, uint64(100), evt.Distance)
	evt = f.consumeEvent(t)
	assert.Equal(t, uint64(3), evt.Amount)
	assert.Equal(t, uint64(300), evt.Distance)

	f.assertConservation(t)
}

func TestLedgerService_RecordMileage_CarryOver(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{MaxUnitsPerCall: 1000})
	ctx := context.Background()

	// 第一次只发行上限数量, 剩下的 500 个积分留到下一次
	res, err := f.svc.RecordMileage(ctx, alice, 150000)
	require.NoError(t, err)
	assert.Equal(t, domain.MintResult{Holder: alice, VIN: aliceVIN, Units: 1000, Reading: 100000, Distance: 100000}, res)
	v, err := f.svc.VehicleState(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(100000), v.LastProcessedReading)

	res, err = f.svc.RecordMileage(ctx, alice, 150000)
	require.NoError(t, err)
	assert.Equal(t, domain.MintResult{Holder: alice, VIN: aliceVIN, Units: 500, Reading: 150000, Distance: 50000}, res)
	v, err = f.svc.VehicleState(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(150000), v.LastProcessedReading)

	_, err = f.svc.RecordMileage(ctx, alice, 150000)
	assert.ErrorIs(t, err, ErrNonMonotonicReading)

	acc, err := f.svc.AccountOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.HolderAccount{Holder: alice, Balance: 1500, Minted: 1500}, acc)
	f.assertConservation(t)

	// 购买超过上限仍然直接拒绝, 调用方可以拆分
	_, err = f.svc.Purchase(ctx, buyer, 1001)
	assert.ErrorIs(t, err, ErrTooManyUnits)
}

func TestLedgerService_RecordMileage_Failed(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		cfg     Config
		before  func(t *testing.T, f *ledgerFixture)
		holder  domain.Address
		reading uint64
		wantErr error
	}{
		{
			name:    "没有登记车辆",
			holder:  buyer,
			reading: 1000,
			wantErr: ErrUnregisteredVehicle,
		},
		{
			name:    "空地址",
			holder:  domain.NullAddress,
			reading: 1000,
			wantErr: ErrInvalidInput,
		},
		{
			name:    "首次读数不足100",
			holder:  alice,
			reading: 99,
			wantErr: ErrNonMonotonicReading,
		},
		{
			name: "取整后与已处理读数相同",
			before: func(t *testing.T, f *ledgerFixture) {
				_, err := f.svc.RecordMileage(context.Background(), alice, 450)
				require.NoError(t, err)
			},
			holder:  alice,
			reading: 499,
			wantErr: ErrNonMonotonicReading,
		},
		{
			name: "读数回退",
			before: func(t *testing.T, f *ledgerFixture) {
				_, err := f.svc.RecordMileage(context.Background(), alice, 450)
				require.NoError(t, err)
			},
			holder:  alice,
			reading: 300,
			wantErr: ErrNonMonotonicReading,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newLedgerFixture(t, ctrl, tc.cfg)
			if tc.before != nil {
				tc.before(t, f)
			}
			before := f.snapshot(t)
			beforeVehicle, _ := f.svc.VehicleState(context.Background(), alice)

			_, err := f.svc.RecordMileage(context.Background(), tc.holder, tc.reading)
			assert.ErrorIs(t, err, tc.wantErr)

			assert.Equal(t, before, f.snapshot(t))
			afterVehicle, _ := f.svc.VehicleState(context.Background(), alice)
			assert.Equal(t, beforeVehicle, afterVehicle)
		})
	}
}

func TestLedgerService_ReportMileage(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{Reporters: []domain.Address{reporter}})
	ctx := context.Background()

	_, err := f.svc.ReportMileage(ctx, alice, alice, 500)
	assert.ErrorIs(t, err, ErrAccessDenied)
	res, err := f.svc.ReportMileage(ctx, reporter, alice, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.Units)
}

func TestLedgerService_Purchase_MultiSeller(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	ctx := context.Background()

	_, err := f.svc.RecordMileage(ctx, alice, 300)
	require.NoError(t, err)
	_, err = f.svc.RecordMileage(ctx, bob, 200)
	require.NoError(t, err)
	f.consumeEvent(t)
	f.consumeEvent(t)

	f.payment.EXPECT().Transfer(gomock.Any(), buyer, escrowAccount, 4*unitPrice).Return(nil)
	res, err := f.svc.Purchase(ctx, buyer, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseResult{
		Buyer:     buyer,
		Amount:    4,
		UnitPrice: unitPrice,
		Cost:      4 * unitPrice,
		Sellers: []domain.SellerShare{
			{Seller: alice, Units: 3},
			{Seller: bob, Units: 1},
		},
	}, res)

	cnt, err := f.svc.AvailableCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cnt)
	for i := uint64(0); i < 4; i++ {
		r, err := f.svc.CreditRecordAt(ctx, i)
		require.NoError(t, err)
		assert.False(t, r.Valid)
	}
	r, err := f.svc.CreditRecordAt(ctx, 4)
	require.NoError(t, err)
	assert.True(t, r.Valid)
	assert.Equal(t, bob, r.Holder)

	st, err := f.svc.GlobalState(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GlobalState{
		UnitPrice:           unitPrice,
		LastPriceUpdateTime: 1700000000000,
		TotalMinted:         5,
		TotalBurned:         4,
	}, st)

	wantAccounts := map[domain.Address]domain.HolderAccount{
		alice: {Holder: alice, Balance: 0, Minted: 3},
		bob:   {Holder: bob, Balance: 1, Minted: 2},
		buyer: {Holder: buyer, Balance: 4, Burned: 4},
	}
	for h, want := range wantAccounts {
		acc, err := f.svc.AccountOf(ctx, h)
		require.NoError(t, err)
		assert.Equal(t, want, acc)
	}
	pending, err := f.svc.PendingRewardOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 3*unitPrice, pending)
	pending, err = f.svc.PendingRewardOf(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, unitPrice, pending)

	sellers := []string{alice.String(), alice.String(), alice.String(), bob.String()}
	for _, seller := range sellers {
		evt := f.consumeEvent(t)
		assert.Equal(t, domain.EventUnitBurned.ToString(), evt.Type)
		assert.Equal(t, buyer.String(), evt.Holder)
		assert.Equal(t, seller, evt.Counterparty)
		assert.Equal(t, uint64(1), evt.Amount)
	}

	accs, total, err := f.svc.ListAccounts(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, accs, 3)

	f.assertConservation(t)
}

func TestLedgerService_Purchase_BuyerIsSeller(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	ctx := context.Background()

	_, err := f.svc.RecordMileage(ctx, alice, 300)
	require.NoError(t, err)
	f.payment.EXPECT().Transfer(gomock.Any(), alice, escrowAccount, 2*unitPrice).Return(nil)
	_, err = f.svc.Purchase(ctx, alice, 2)
	require.NoError(t, err)

	acc, err := f.svc.AccountOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.HolderAccount{Holder: alice, Balance: 3, Minted: 3, Burned: 2}, acc)
	f.assertConservation(t)
}

func TestLedgerService_Purchase_Failed(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		cfg     Config
		mock    func(f *ledgerFixture)
		buyer   domain.Address
		amount  uint64
		wantErr error
	}{
		{
			name:    "购买数量为0",
			buyer:   buyer,
			amount:  0,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "买方为空地址",
			buyer:   domain.NullAddress,
			amount:  1,
			wantErr: ErrInvalidInput,
		},
		{
			name:    "可购买数量不足",
			buyer:   buyer,
			amount:  6,
			wantErr: ErrInsufficientSupply,
		},
		{
			name:    "超过单次购买上限",
			cfg:     Config{MaxUnitsPerCall: 2},
			buyer:   buyer,
			amount:  3,
			wantErr: ErrTooManyUnits,
		},
		{
			name: "支付失败",
			mock: func(f *ledgerFixture) {
				f.payment.EXPECT().Transfer(gomock.Any(), buyer, escrowAccount, 3*unitPrice).
					Return(errors.New("余额不足"))
			},
			buyer:   buyer,
			amount:  3,
			wantErr: ErrPaymentFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newLedgerFixture(t, ctrl, tc.cfg)
			ctx := context.Background()
			_, err := f.svc.RecordMileage(ctx, alice, 300)
			require.NoError(t, err)
			_, err = f.svc.RecordMileage(ctx, bob, 200)
			require.NoError(t, err)
			if tc.mock != nil {
				tc.mock(f)
			}
			before := f.snapshot(t)

			_, err = f.svc.Purchase(ctx, tc.buyer, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, before, f.snapshot(t))
		})
	}
}

func TestLedgerService_Purchase_Compensate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	ctx := context.Background()
	_, err := f.svc.RecordMileage(ctx, alice, 300)
	require.NoError(t, err)
	// 队首记录被非法作废, 购买时才会发现
	require.NoError(t, f.repo.InvalidateCreditRecord(ctx, 0))
	before := f.snapshot(t)

	gomock.InOrder(
		f.payment.EXPECT().Transfer(gomock.Any(), buyer, escrowAccount, 2*unitPrice).Return(nil),
		f.payment.EXPECT().Transfer(gomock.Any(), escrowAccount, buyer, 2*unitPrice).Return(errors.New("网络错误")),
		f.payment.EXPECT().Transfer(gomock.Any(), escrowAccount, buyer, 2*unitPrice).Return(nil),
	)
	_, err = f.svc.Purchase(ctx, buyer, 2)
	assert.ErrorIs(t, err, ErrCorruptState)
	assert.Equal(t, before, f.snapshot(t))
}

func TestLedgerService_Withdraw(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	ctx := context.Background()

	// 没有待领取奖励时可以重复调用, 状态不变
	for i := 0; i < 3; i++ {
		before := f.snapshot(t)
		amount, err := f.svc.Withdraw(ctx, alice)
		assert.ErrorIs(t, err, ErrNoPendingReward)
		assert.Zero(t, amount)
		assert.Equal(t, before, f.snapshot(t))
	}

	_, err := f.svc.RecordMileage(ctx, alice, 300)
	require.NoError(t, err)
	f.payment.EXPECT().Transfer(gomock.Any(), buyer, escrowAccount, 2*unitPrice).Return(nil)
	_, err = f.svc.Purchase(ctx, buyer, 2)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		f.consumeEvent(t)
	}

	f.payment.EXPECT().Transfer(gomock.Any(), escrowAccount, alice, 2*unitPrice).Return(errors.New("托管账户余额不足"))
	amount, err := f.svc.Withdraw(ctx, alice)
	assert.ErrorIs(t, err, ErrPaymentFailed)
	assert.Zero(t, amount)
	pending, err := f.svc.PendingRewardOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 2*unitPrice, pending)

	f.payment.EXPECT().Transfer(gomock.Any(), escrowAccount, alice, 2*unitPrice).Return(nil)
	amount, err = f.svc.Withdraw(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 2*unitPrice, amount)
	pending, err = f.svc.PendingRewardOf(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, pending)

	evt := f.consumeEvent(t)
	assert.Equal(t, domain.EventRewardWithdrawn.ToString(), evt.Type)
	assert.Equal(t, alice.String(), evt.Holder)
	assert.Equal(t, 2*unitPrice, evt.Amount)

	_, err = f.svc.Withdraw(ctx, alice)
	assert.ErrorIs(t, err, ErrNoPendingReward)
}

func TestLedgerService_RelayEvents(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	ctx := context.Background()

	_, err := f.svc.RecordMileage(ctx, alice, 300)
	require.NoError(t, err)
	f.consumeEvent(t)
	res, err := f.svc.RelayEvents(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.RelayResult{}, res)

	// 模拟事务提交之后进程退出, 事件没有来得及发送
	require.NoError(t, f.repo.CreateLedgerEvents(ctx, []domain.LedgerEvent{
		{EventID: 1, Type: domain.EventRewardWithdrawn, Holder: alice, Amount: 10},
		{EventID: 2, Type: domain.EventRewardWithdrawn, Holder: bob, Amount: 20},
		{EventID: 3, Type: domain.EventRewardWithdrawn, Holder: alice, Amount: 30},
	}))
	// 前一批停在第一个事件, 从它之后继续
	res, err = f.svc.RelayEvents(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.RelayResult{Fetched: 1, Published: 1, LastID: 3}, res)
	evt := f.consumeEvent(t)
	assert.Equal(t, int64(2), evt.EventID)

	res, err = f.svc.RelayEvents(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.RelayResult{Fetched: 2, Published: 2, LastID: 4}, res)
	evt = f.consumeEvent(t)
	assert.Equal(t, int64(1), evt.EventID)
	evt = f.consumeEvent(t)
	assert.Equal(t, int64(3), evt.EventID)

	res, err = f.svc.RelayEvents(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.RelayResult{}, res)
}

type firstReadRepo struct {
	repository.LedgerRepository
	inTx  bool
	read  bool
	first *[]string
}

func (r *firstReadRepo) Transaction(ctx context.Context, fn func(tx repository.LedgerRepository) error) error {
	return r.LedgerRepository.Transaction(ctx, func(tx repository.LedgerRepository) error {
		return fn(&firstReadRepo{LedgerRepository: tx, inTx: true, first: r.first})
	})
}

func (r *firstReadRepo) mark(table string) {
	if r.inTx && !r.read {
		r.read = true
		*r.first = append(*r.first, table)
	}
}

func (r *firstReadRepo) QueueCursor(ctx context.Context) (domain.QueueCursor, error) {
	r.mark("queue_cursors")
	return r.LedgerRepository.QueueCursor(ctx)
}

func (r *firstReadRepo) HolderAccount(ctx context.Context, holder domain.Address) (domain.HolderAccount, error) {
	r.mark("holder_accounts")
	return r.LedgerRepository.HolderAccount(ctx, holder)
}

func (r *firstReadRepo) PendingReward(ctx context.Context, holder domain.Address) (domain.PendingReward, error) {
	r.mark("pending_rewards")
	return r.LedgerRepository.PendingReward(ctx, holder)
}

func (r *firstReadRepo) Vehicle(ctx context.Context, vin string) (domain.Vehicle, error) {
	r.mark("vehicle_records")
	return r.LedgerRepository.Vehicle(ctx, vin)
}

func (r *firstReadRepo) GlobalState(ctx context.Context) (domain.GlobalState, error) {
	r.mark("ledger_states")
	return r.LedgerRepository.GlobalState(ctx)
}

// 多个进程共享数据库时, 每个写事务都要先锁住游标行
func TestLedgerService_LockCursorFirst(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	var first []string
	f.svc.repo = &firstReadRepo{LedgerRepository: f.repo, first: &first}
	ctx := context.Background()

	_, err := f.svc.RecordMileage(ctx, alice, 300)
	require.NoError(t, err)
	_, err = f.svc.RecordMileage(ctx, alice, 300)
	assert.ErrorIs(t, err, ErrNonMonotonicReading)
	f.payment.EXPECT().Transfer(gomock.Any(), buyer, escrowAccount, 2*unitPrice).Return(nil)
	_, err = f.svc.Purchase(ctx, buyer, 2)
	require.NoError(t, err)
	f.payment.EXPECT().Transfer(gomock.Any(), escrowAccount, alice, 2*unitPrice).Return(nil)
	_, err = f.svc.Withdraw(ctx, alice)
	require.NoError(t, err)
	_, err = f.svc.Withdraw(ctx, alice)
	assert.ErrorIs(t, err, ErrNoPendingReward)
	_, err = f.svc.AuditConservation(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"queue_cursors", "queue_cursors", "queue_cursors",
		"queue_cursors", "queue_cursors", "queue_cursors",
	}, first)
}

func TestLedgerService_Concurrent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	f.payment.EXPECT().Transfer(gomock.Any(), gomock.Any(), escrowAccount, gomock.Any()).
		Return(nil).AnyTimes()
	ctx := context.Background()

	const (
		readings = 30
		buyers   = 4
		rounds   = 20
	)
	var (
		mu        sync.Mutex
		purchased uint64
		sellers   []domain.Address
	)
	var eg errgroup.Group
	for _, holder := range []domain.Address{alice, bob} {
		eg.Go(func() error {
			for i := uint64(1); i <= readings; i++ {
				if _, err := f.svc.RecordMileage(ctx, holder, i*domain.DistanceUnit); err != nil {
					return err
				}
			}
			return nil
		})
	}
	for i := 0; i < buyers; i++ {
		eg.Go(func() error {
			for j := 0; j < rounds; j++ {
				res, err := f.svc.Purchase(ctx, buyer, 1)
				if errors.Is(err, ErrInsufficientSupply) {
					continue
				}
				if err != nil {
					return err
				}
				mu.Lock()
				purchased += res.Amount
				sellers = append(sellers, res.Sellers[0].Seller)
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	f.assertConservation(t)
	snap := f.snapshot(t)
	assert.Equal(t, uint64(2*readings), snap.Cursor.MintCursor)
	assert.Equal(t, purchased, snap.Cursor.BurnCursor)
	assert.Equal(t, purchased, snap.State.TotalBurned)
	// 先发行的先被买走: 游标之前的记录全部作废, 之后的全部有效
	for _, r := range snap.Records {
		assert.Equal(t, r.Index >= snap.Cursor.BurnCursor, r.Valid, r.Index)
	}
	wantSellers := make(map[domain.Address]int)
	for _, r := range snap.Records[:purchased] {
		wantSellers[r.Holder]++
	}
	gotSellers := make(map[domain.Address]int)
	for _, seller := range sellers {
		gotSellers[seller]++
	}
	assert.Equal(t, wantSellers, gotSellers)
}

func TestLedgerService_AuditConservation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newLedgerFixture(t, ctrl, Config{})
	ctx := context.Background()

	_, err := f.svc.RecordMileage(ctx, alice, 1000)
	require.NoError(t, err)
	_, err = f.svc.RecordMileage(ctx, bob, 500)
	require.NoError(t, err)
	f.payment.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	for _, amount := range []uint64{3, 7, 2} {
		_, err = f.svc.Purchase(ctx, buyer, amount)
		require.NoError(t, err)
	}
	report, err := f.svc.AuditConservation(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Violations())
	assert.Equal(t, uint64(15), report.SumBalance)
	assert.Equal(t, uint64(12), report.SumBurned)
	assert.Equal(t, int64(3), report.HolderAccounts)
	assert.Equal(t, domain.QueueCursor{MintCursor: 15, BurnCursor: 12}, report.Cursor)

	// 人为破坏守恒
	require.NoError(t, f.repo.SaveHolderAccount(ctx, domain.HolderAccount{Holder: "ghost", Balance: 1}))
	report, err = f.svc.AuditConservation(ctx)
	require.NoError(t, err)
	assert.Contains(t, report.Violations(), "sum(balance) != totalMinted")
}
