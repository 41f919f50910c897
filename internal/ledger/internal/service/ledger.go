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
	"math"
	"math/bits"
	"sync"
	"time"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/event"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository"
	"github.com/ecodeclub/ecocredit/internal/pkg/snowflake"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// EscrowAccount 托管账户, 购买款先转入该账户, 持有人提现时从该账户转出
	EscrowAccount domain.Address `yaml:"escrowAccount"`
	// MaxUnitsPerCall 单次发行或购买的积分上限, 0 表示不限制
	MaxUnitsPerCall uint64 `yaml:"maxUnitsPerCall"`
	// Reporters 允许上报里程的地址
	Reporters []domain.Address `yaml:"reporters"`
}

//go:generate mockgen -source=./ledger.go -destination=../../mocks/ledger.mock.go -package=ledgermocks Service
type Service interface {
	// RecordMileage 按里程发行积分, rawReading 是车辆当前的里程表读数
	RecordMileage(ctx context.Context, holder domain.Address, rawReading uint64) (domain.MintResult, error)
	// ReportMileage 由里程上报方调用, reporter 不在允许列表中时返回 ErrAccessDenied
	ReportMileage(ctx context.Context, reporter, holder domain.Address, rawReading uint64) (domain.MintResult, error)
	// Purchase 按先发行先购买的顺序购买 amount 个积分
	Purchase(ctx context.Context, buyer domain.Address, amount uint64) (domain.PurchaseResult, error)
	// Withdraw 提取全部待领取奖励
	Withdraw(ctx context.Context, holder domain.Address) (uint64, error)

	AccountOf(ctx context.Context, holder domain.Address) (domain.HolderAccount, error)
	PendingRewardOf(ctx context.Context, holder domain.Address) (uint64, error)
	AvailableCount(ctx context.Context) (uint64, error)
	CreditRecordAt(ctx context.Context, idx uint64) (domain.CreditRecord, error)
	GlobalState(ctx context.Context) (domain.GlobalState, error)
	VehicleState(ctx context.Context, holder domain.Address) (domain.Vehicle, error)
	ListAccounts(ctx context.Context, offset, limit int) ([]domain.HolderAccount, int64, error)

	// AuditConservation 核对积分守恒
	AuditConservation(ctx context.Context) (domain.AuditReport, error)
	// RelayEvents 重新发送自增ID大于 afterID 的未发送事件
	// 发送失败的事件不会阻塞后面的事件, 调用方用返回的 LastID 继续下一批
	RelayEvents(ctx context.Context, afterID int64, limit int) (domain.RelayResult, error)
}

type ledgerService struct {
	// 所有写操作的全局顺序点
	mu sync.Mutex

	repo     repository.LedgerRepository
	registry VehicleRegistry
	prices   PriceSource
	payment  PaymentRail
	producer event.LedgerEventProducer
	idGen    snowflake.Generator
	cfg      Config
	now      func() time.Time
	logger   *elog.Component

	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
}

func NewLedgerService(repo repository.LedgerRepository,
	registry VehicleRegistry,
	prices PriceSource,
	payment PaymentRail,
	producer event.LedgerEventProducer,
	idGen snowflake.Generator,
	cfg Config) Service {
	return &ledgerService{
		repo:            repo,
		registry:        registry,
		prices:          prices,
		payment:         payment,
		producer:        producer,
		idGen:           idGen,
		cfg:             cfg,
		now:             time.Now,
		logger:          elog.DefaultLogger,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     time.Second,
		maxRetries:      3,
	}
}

func (s *ledgerService) RecordMileage(ctx context.Context, holder domain.Address, rawReading uint64) (domain.MintResult, error) {
	if holder.IsNull() {
		return domain.MintResult{}, fmt.Errorf("%w: 持有人地址为空", ErrInvalidInput)
	}
	vin, err := s.registry.VehicleOf(ctx, holder)
	if err != nil {
		return domain.MintResult{}, err
	}
	// 不足 100 的部分不推进已处理读数, 留到下一次
	rounded := rawReading / domain.DistanceUnit * domain.DistanceUnit

	s.mu.Lock()
	defer s.mu.Unlock()

	res := domain.MintResult{Holder: holder, VIN: vin}
	var evts []domain.LedgerEvent
	err = s.repo.Transaction(ctx, func(tx repository.LedgerRepository) error {
		if err := s.lockQueue(ctx, tx); err != nil {
			return err
		}
		v, err := tx.Vehicle(ctx, vin)
		if err != nil {
			return err
		}
		if rounded <= v.LastProcessedReading {
			return fmt.Errorf("%w: vin=%s, 读数 %d, 已处理 %d",
				ErrNonMonotonicReading, vin, rounded, v.LastProcessedReading)
		}
		res.Units = (rounded - v.LastProcessedReading) / domain.DistanceUnit
		// 超过单次上限的部分不发行, 已处理读数只推进到实际发行的里程, 剩余留到下一次
		if s.cfg.MaxUnitsPerCall > 0 && res.Units > s.cfg.MaxUnitsPerCall {
			res.Units = s.cfg.MaxUnitsPerCall
		}
		res.Distance = res.Units * domain.DistanceUnit
		res.Reading = v.LastProcessedReading + res.Distance
		now := s.now().UnixMilli()
		if res.Units > 0 {
			evts, err = s.mint(ctx, tx, holder, vin, res.Units, res.Distance, now)
			if err != nil {
				return err
			}
		}
		v.LastProcessedReading = res.Reading
		v.LastProcessedAt = now
		return tx.SaveVehicle(ctx, v)
	})
	if err != nil {
		s.logCorruptState(err, "发行积分", elog.String("holder", holder.String()))
		return domain.MintResult{}, err
	}
	mintedUnitsCounter.Add(float64(res.Units))
	s.publish(ctx, evts)
	return res, nil
}

// mint 每个积分单独入队, 各自拥有独立的下标和发行时间
func (s *ledgerService) mint(ctx context.Context, tx repository.LedgerRepository,
	holder domain.Address, vin string, units, distance uint64, now int64) ([]domain.LedgerEvent, error) {
	st, err := tx.GlobalState(ctx)
	if err != nil {
		return nil, err
	}
	if st.TotalMinted > math.MaxUint64-units {
		return nil, fmt.Errorf("%w: 累计发行数量溢出", ErrInvalidInput)
	}
	q := newCreditQueue(tx)
	for i := uint64(0); i < units; i++ {
		if _, err = q.enqueue(ctx, holder, now); err != nil {
			return nil, err
		}
	}
	acc, err := tx.HolderAccount(ctx, holder)
	if err != nil {
		return nil, err
	}
	acc.Balance += units
	acc.Minted += units
	if err = tx.SaveHolderAccount(ctx, acc); err != nil {
		return nil, err
	}
	st.TotalMinted += units
	if err = tx.SaveGlobalState(ctx, st); err != nil {
		return nil, err
	}
	evt, err := s.newEvent(domain.LedgerEvent{
		Type:     domain.EventUnitMinted,
		Holder:   holder,
		VIN:      vin,
		Amount:   units,
		Distance: distance,
		Ctime:    now,
	})
	if err != nil {
		return nil, err
	}
	evts := []domain.LedgerEvent{evt}
	return evts, tx.CreateLedgerEvents(ctx, evts)
}

func (s *ledgerService) ReportMileage(ctx context.Context, reporter, holder domain.Address, rawReading uint64) (domain.MintResult, error) {
	if !slice.Contains(s.cfg.Reporters, reporter) {
		return domain.MintResult{}, fmt.Errorf("%w: reporter=%s", ErrAccessDenied, reporter)
	}
	return s.RecordMileage(ctx, holder, rawReading)
}

func (s *ledgerService) Purchase(ctx context.Context, buyer domain.Address, amount uint64) (domain.PurchaseResult, error) {
	if amount == 0 {
		return domain.PurchaseResult{}, ErrInvalidAmount
	}
	if buyer.IsNull() {
		return domain.PurchaseResult{}, fmt.Errorf("%w: 买方地址为空", ErrInvalidInput)
	}
	if err := s.checkUnits(amount); err != nil {
		return domain.PurchaseResult{}, err
	}
	// 以购买时刻的价格为准
	price, err := s.prices.CurrentUnitPrice(ctx)
	if err != nil {
		return domain.PurchaseResult{}, fmt.Errorf("获取积分单价失败: %w", err)
	}
	if price.Amount == 0 {
		return domain.PurchaseResult{}, fmt.Errorf("%w: 积分单价为0", ErrInvalidInput)
	}
	hi, cost := bits.Mul64(amount, price.Amount)
	if hi != 0 {
		return domain.PurchaseResult{}, fmt.Errorf("%w: 购买总价溢出", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := domain.PurchaseResult{Buyer: buyer, Amount: amount, UnitPrice: price.Amount, Cost: cost}
	var (
		evts []domain.LedgerEvent
		paid bool
	)
	err = s.repo.Transaction(ctx, func(tx repository.LedgerRepository) error {
		q := newCreditQueue(tx)
		available, err := q.AvailableCount(ctx)
		if err != nil {
			return err
		}
		if available < amount {
			return fmt.Errorf("%w: 可购买 %d, 需要 %d", ErrInsufficientSupply, available, amount)
		}
		if err = s.payment.Transfer(ctx, buyer, s.cfg.EscrowAccount, cost); err != nil {
			return fmt.Errorf("%w: %w", ErrPaymentFailed, err)
		}
		paid = true
		res.Sellers, evts, err = s.burn(ctx, tx, buyer, amount, price)
		return err
	})
	if err != nil {
		s.logCorruptState(err, "购买积分", elog.String("buyer", buyer.String()))
		if paid {
			// 款项已经转入托管账户, 但是账本没有变更, 退回给买方
			s.compensate(ctx, "退还购买款", s.cfg.EscrowAccount, buyer, cost)
		}
		return domain.PurchaseResult{}, err
	}
	burnedUnitsCounter.Add(float64(amount))
	s.publish(ctx, evts)
	return res, nil
}

func (s *ledgerService) burn(ctx context.Context, tx repository.LedgerRepository,
	buyer domain.Address, amount uint64, price domain.UnitPrice) ([]domain.SellerShare, []domain.LedgerEvent, error) {
	q := newCreditQueue(tx)
	escrow := newRewardEscrow(tx)
	// 买方也可能是卖方, 同一个账户只读写一次
	accounts := make(map[domain.Address]*domain.HolderAccount, 2)
	order := make([]domain.Address, 0, 2)
	account := func(holder domain.Address) (*domain.HolderAccount, error) {
		if acc, ok := accounts[holder]; ok {
			return acc, nil
		}
		acc, err := tx.HolderAccount(ctx, holder)
		if err != nil {
			return nil, err
		}
		accounts[holder] = &acc
		order = append(order, holder)
		return &acc, nil
	}

	buyerAcc, err := account(buyer)
	if err != nil {
		return nil, nil, err
	}
	now := s.now().UnixMilli()
	shares := make([]domain.SellerShare, 0, 1)
	evts := make([]domain.LedgerEvent, 0, amount)
	for i := uint64(0); i < amount; i++ {
		seller, err := q.dequeueOldest(ctx)
		if errors.Is(err, ErrEmptyQueue) {
			return nil, nil, fmt.Errorf("%w: 发行队列在购买过程中耗尽", ErrCorruptState)
		}
		if err != nil {
			return nil, nil, err
		}
		sellerAcc, err := account(seller)
		if err != nil {
			return nil, nil, err
		}
		if sellerAcc.Balance == 0 {
			return nil, nil, fmt.Errorf("%w: 卖方 %s 的余额为0", ErrCorruptState, seller)
		}
		sellerAcc.Balance--
		if err = escrow.credit(ctx, seller, price.Amount); err != nil {
			return nil, nil, err
		}
		buyerAcc.Burned++

		if n := len(shares); n > 0 && shares[n-1].Seller == seller {
			shares[n-1].Units++
		} else {
			shares = append(shares, domain.SellerShare{Seller: seller, Units: 1})
		}
		evt, err := s.newEvent(domain.LedgerEvent{
			Type:         domain.EventUnitBurned,
			Holder:       buyer,
			Counterparty: seller,
			Amount:       1,
			Ctime:        now,
		})
		if err != nil {
			return nil, nil, err
		}
		evts = append(evts, evt)
	}
	// 买方按购买数量记账, 表示其退役的积分
	buyerAcc.Balance += amount

	for _, holder := range order {
		if err = tx.SaveHolderAccount(ctx, *accounts[holder]); err != nil {
			return nil, nil, err
		}
	}
	st, err := tx.GlobalState(ctx)
	if err != nil {
		return nil, nil, err
	}
	st.TotalBurned += amount
	if st.TotalBurned > st.TotalMinted {
		return nil, nil, fmt.Errorf("%w: 累计销毁 %d 超过累计发行 %d", ErrCorruptState, st.TotalBurned, st.TotalMinted)
	}
	st.UnitPrice = price.Amount
	st.LastPriceUpdateTime = price.UpdatedAt
	if err = tx.SaveGlobalState(ctx, st); err != nil {
		return nil, nil, err
	}
	return shares, evts, tx.CreateLedgerEvents(ctx, evts)
}

func (s *ledgerService) Withdraw(ctx context.Context, holder domain.Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		amount uint64
		paid   bool
		evts   []domain.LedgerEvent
	)
	err := s.repo.Transaction(ctx, func(tx repository.LedgerRepository) error {
		if err := s.lockQueue(ctx, tx); err != nil {
			return err
		}
		var err error
		amount, err = newRewardEscrow(tx).withdraw(ctx, holder, func(ctx context.Context, amt uint64) error {
			if err1 := s.payment.Transfer(ctx, s.cfg.EscrowAccount, holder, amt); err1 != nil {
				return fmt.Errorf("%w: %w", ErrPaymentFailed, err1)
			}
			paid = true
			return nil
		})
		if err != nil {
			return err
		}
		if amount == 0 {
			return ErrNoPendingReward
		}
		evt, err := s.newEvent(domain.LedgerEvent{
			Type:   domain.EventRewardWithdrawn,
			Holder: holder,
			Amount: amount,
			Ctime:  s.now().UnixMilli(),
		})
		if err != nil {
			return err
		}
		evts = []domain.LedgerEvent{evt}
		return tx.CreateLedgerEvents(ctx, evts)
	})
	if err != nil {
		if paid {
			// 已经付款但是待领取奖励没有清零, 把款项收回托管账户
			s.compensate(ctx, "收回提现款", holder, s.cfg.EscrowAccount, amount)
		}
		return 0, err
	}
	withdrawnRewardCounter.Add(float64(amount))
	s.publish(ctx, evts)
	return amount, nil
}

func (s *ledgerService) AccountOf(ctx context.Context, holder domain.Address) (domain.HolderAccount, error) {
	return s.repo.HolderAccount(ctx, holder)
}

func (s *ledgerService) PendingRewardOf(ctx context.Context, holder domain.Address) (uint64, error) {
	return newRewardEscrow(s.repo).PendingOf(ctx, holder)
}

func (s *ledgerService) AvailableCount(ctx context.Context) (uint64, error) {
	return newCreditQueue(s.repo).AvailableCount(ctx)
}

func (s *ledgerService) CreditRecordAt(ctx context.Context, idx uint64) (domain.CreditRecord, error) {
	return newCreditQueue(s.repo).RecordAt(ctx, idx)
}

func (s *ledgerService) GlobalState(ctx context.Context) (domain.GlobalState, error) {
	return s.repo.GlobalState(ctx)
}

func (s *ledgerService) VehicleState(ctx context.Context, holder domain.Address) (domain.Vehicle, error) {
	vin, err := s.registry.VehicleOf(ctx, holder)
	if err != nil {
		return domain.Vehicle{}, err
	}
	return s.repo.Vehicle(ctx, vin)
}

func (s *ledgerService) ListAccounts(ctx context.Context, offset, limit int) ([]domain.HolderAccount, int64, error) {
	var (
		eg    errgroup.Group
		accs  []domain.HolderAccount
		total int64
	)
	eg.Go(func() error {
		var err error
		accs, err = s.repo.ListHolderAccounts(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountHolderAccounts(ctx)
		return err
	})
	return accs, total, eg.Wait()
}

func (s *ledgerService) AuditConservation(ctx context.Context) (domain.AuditReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report domain.AuditReport
	err := s.repo.Transaction(ctx, func(tx repository.LedgerRepository) error {
		var err error
		if report.Cursor, err = tx.QueueCursor(ctx); err != nil {
			return err
		}
		if report.State, err = tx.GlobalState(ctx); err != nil {
			return err
		}
		sum, err := tx.SumHolderAccounts(ctx)
		if err != nil {
			return err
		}
		report.SumBalance, report.SumMinted, report.SumBurned = sum.Balance, sum.Minted, sum.Burned
		report.HolderAccounts, err = tx.CountHolderAccounts(ctx)
		return err
	})
	if err != nil {
		return domain.AuditReport{}, err
	}
	if vs := report.Violations(); len(vs) > 0 {
		failedOperationCounter.WithLabelValues("audit").Inc()
		s.logger.Error("积分守恒核对失败",
			elog.Any("violations", vs),
			elog.Any("report", report),
		)
	}
	return report, nil
}

func (s *ledgerService) RelayEvents(ctx context.Context, afterID int64, limit int) (domain.RelayResult, error) {
	evts, err := s.repo.FindUnpublishedLedgerEvents(ctx, afterID, limit)
	if err != nil {
		return domain.RelayResult{}, err
	}
	res := domain.RelayResult{Fetched: len(evts), LastID: afterID}
	if len(evts) > 0 {
		res.LastID = evts[len(evts)-1].ID
	}
	res.Published = s.publish(ctx, evts)
	return res, nil
}

// publish 在事务提交之后发送事件, 失败的事件由 RelayEvents 补发
func (s *ledgerService) publish(ctx context.Context, evts []domain.LedgerEvent) int {
	if len(evts) == 0 {
		return 0
	}
	published := make([]int64, 0, len(evts))
	for _, evt := range evts {
		err := s.producer.Produce(ctx, event.LedgerEvent{
			EventID:      evt.EventID,
			Type:         evt.Type.ToString(),
			Holder:       evt.Holder.String(),
			Counterparty: evt.Counterparty.String(),
			VIN:          evt.VIN,
			Amount:       evt.Amount,
			Distance:     evt.Distance,
			Ctime:        evt.Ctime,
		})
		if err != nil {
			s.logger.Warn("发送账本事件失败",
				elog.FieldErr(err),
				elog.Int64("eventId", evt.EventID),
			)
			continue
		}
		published = append(published, evt.EventID)
	}
	if err := s.repo.MarkLedgerEventsPublished(ctx, published); err != nil {
		s.logger.Warn("标记账本事件已发送失败", elog.FieldErr(err), elog.Any("eventIds", published))
	}
	return len(published)
}

// compensate 反向转账, 重试耗尽之后需要人工处理
func (s *ledgerService) compensate(ctx context.Context, action string, from, to domain.Address, amount uint64) {
	ctx = context.WithoutCancel(ctx)
	err := s.transferWithRetry(ctx, from, to, amount)
	if err != nil {
		failedOperationCounter.WithLabelValues("compensate").Inc()
		s.logger.Error(action+"失败, 需要人工处理",
			elog.FieldErr(err),
			elog.String("from", from.String()),
			elog.String("to", to.String()),
			elog.Any("amount", amount),
		)
	}
}

func (s *ledgerService) transferWithRetry(ctx context.Context, from, to domain.Address, amount uint64) error {
	strategy, _ := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	for {
		err := s.payment.Transfer(ctx, from, to, amount)
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("%w: %w", ErrExceedTheMaximumNumberOfRetries, err)
		}
		time.Sleep(next)
	}
}

// lockQueue 所有写事务先锁住队列游标, 多个进程共享同一个数据库时按游标行排成全序
func (s *ledgerService) lockQueue(ctx context.Context, tx repository.LedgerRepository) error {
	_, err := tx.QueueCursor(ctx)
	return err
}

func (s *ledgerService) checkUnits(units uint64) error {
	if s.cfg.MaxUnitsPerCall > 0 && units > s.cfg.MaxUnitsPerCall {
		return fmt.Errorf("%w: %d > %d", ErrTooManyUnits, units, s.cfg.MaxUnitsPerCall)
	}
	return nil
}

func (s *ledgerService) newEvent(evt domain.LedgerEvent) (domain.LedgerEvent, error) {
	id, err := s.idGen.Generate(snowflake.BizLedgerEvent)
	if err != nil {
		return domain.LedgerEvent{}, fmt.Errorf("生成事件ID失败: %w", err)
	}
	evt.EventID = id.Int64()
	return evt, nil
}

func (s *ledgerService) logCorruptState(err error, action string, fields ...elog.Field) {
	if !errors.Is(err, ErrCorruptState) {
		return
	}
	failedOperationCounter.WithLabelValues("corrupt_state").Inc()
	s.logger.Error(action+"时发现账本状态损坏", append(fields, elog.FieldErr(err))...)
}
