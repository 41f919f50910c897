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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ecocredit/internal/ledger"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/errs"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/integration/startup"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository/dao"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/web"
	"github.com/ecodeclub/ecocredit/internal/pkg/mqx"
	"github.com/ecodeclub/ecocredit/internal/price"
	"github.com/ecodeclub/ecocredit/internal/test"
	testioc "github.com/ecodeclub/ecocredit/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	alice    ledger.Address = "0xa11ce"
	bob      ledger.Address = "0xb0b"
	carol    ledger.Address = "0xca201"
	reporter ledger.Address = "0x0rac1e"
	escrow   ledger.Address = "0xe5c20w"
	setter                  = "0x5e77e4"

	aliceVIN = "1HGCM82633A004352"
	bobVIN   = "5YJ3E1EA7KF317000"
)

func TestLedgerModule(t *testing.T) {
	suite.Run(t, new(LedgerModuleTestSuite))
}

type LedgerModuleTestSuite struct {
	suite.Suite
	db *egorm.Component
	ms *startup.Modules
}

func (s *LedgerModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ms, err := startup.InitModules(price.Config{Setter: setter}, ledger.Config{
		EscrowAccount:   escrow,
		MaxUnitsPerCall: 1000,
		Reporters:       []ledger.Address{reporter},
	})
	require.NoError(s.T(), err)
	s.ms = ms
}

func (s *LedgerModuleTestSuite) TearDownSuite() {
	tables := []string{
		"credit_records", "queue_cursors", "holder_accounts", "pending_rewards",
		"vehicle_records", "ledger_states", "ledger_events",
		"vehicles", "unit_prices", "wallets", "transfer_logs",
	}
	for _, table := range tables {
		require.NoError(s.T(), s.db.Exec("DROP TABLE IF EXISTS `"+table+"`").Error)
	}
	_, err := testioc.InitCache().Delete(context.Background(), "ledger:purchase:"+carol.String()+":req-1")
	require.NoError(s.T(), err)
}

func (s *LedgerModuleTestSuite) newServer(address ledger.Address) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "3s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{"address": address.String()},
		}))
	})
	s.ms.Ledger.Hdl.PrivateRoutes(server.Engine)
	return server
}

func (s *LedgerModuleTestSuite) purchase(address ledger.Address, req web.PurchaseReq) test.Result[web.PurchaseResp] {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost, "/ledger/purchase", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PurchaseResp]()
	s.newServer(address).ServeHTTP(recorder, httpReq)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

// TestFullFlow 登记车辆, 发行, 购买, 提现, 对账
func (s *LedgerModuleTestSuite) TestFullFlow() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	svc := s.ms.Ledger.Svc

	_, err := s.ms.Vehicle.Svc.Register(ctx, alice.String(), aliceVIN)
	require.NoError(t, err)
	_, err = s.ms.Vehicle.Svc.Register(ctx, bob.String(), bobVIN)
	require.NoError(t, err)

	// 没有登记车辆
	_, err = svc.RecordMileage(ctx, carol, 500)
	assert.ErrorIs(t, err, ledger.ErrUnregisteredVehicle)

	res, err := svc.RecordMileage(ctx, alice, 350)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res.Units)
	assert.Equal(t, uint64(300), res.Reading)
	_, err = svc.RecordMileage(ctx, alice, 399)
	assert.ErrorIs(t, err, ledger.ErrNonMonotonicReading)
	res, err = svc.RecordMileage(ctx, bob, 250)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Units)

	// 通过消息队列上报里程
	producer, err := mqx.NewGeneralProducer[ledger.MileageEvent](testioc.InitMQ(), ledger.MileageEventName)
	require.NoError(t, err)
	require.NoError(t, producer.Produce(ctx, ledger.MileageEvent{
		Reporter: reporter.String(),
		Holder:   alice.String(),
		Reading:  520,
	}))
	require.Eventually(t, func() bool {
		acc, er := svc.AccountOf(ctx, alice)
		return er == nil && acc.Minted == 5
	}, 5*time.Second, 100*time.Millisecond)

	available, err := svc.AvailableCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), available)

	// 购买前必须先设置价格
	_, err = s.ms.Price.Svc.SetPrice(ctx, setter, 10)
	require.NoError(t, err)
	_, err = s.ms.Payment.Svc.TransferIn(ctx, carol.String(), 100)
	require.NoError(t, err)

	_, err = svc.Purchase(ctx, carol, 10)
	assert.ErrorIs(t, err, ledger.ErrInsufficientSupply)

	req := web.PurchaseReq{RequestID: "req-1", Amount: 4}
	got := s.purchase(carol, req)
	assert.Equal(t, test.Result[web.PurchaseResp]{
		Data: web.PurchaseResp{
			Amount:    4,
			UnitPrice: 10,
			Cost:      40,
			Sellers: []web.SellerShare{
				{Seller: alice.String(), Units: 3},
				{Seller: bob.String(), Units: 1},
			},
		},
	}, got)
	// 同一个请求重复提交
	got = s.purchase(carol, req)
	assert.Equal(t, errs.DuplicatedRequest.Code, got.Code)

	s.assertWallet(ctx, carol, 60)
	s.assertWallet(ctx, escrow, 40)

	pending, err := svc.PendingRewardOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), pending)
	pending, err = svc.PendingRewardOf(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), pending)

	amount, err := svc.Withdraw(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), amount)
	_, err = svc.Withdraw(ctx, alice)
	assert.ErrorIs(t, err, ledger.ErrNoPendingReward)
	s.assertWallet(ctx, alice, 30)
	s.assertWallet(ctx, escrow, 10)

	balances := map[ledger.Address]uint64{alice: 2, bob: 1, carol: 4}
	for holder, balance := range balances {
		acc, er := svc.AccountOf(ctx, holder)
		require.NoError(t, er)
		assert.Equal(t, balance, acc.Balance, holder)
	}

	report, err := svc.AuditConservation(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Violations())
	assert.Equal(t, uint64(3), report.Cursor.Available())
	assert.Equal(t, uint64(7), report.SumBalance)

	_, err = svc.RelayEvents(ctx, 0, 100)
	require.NoError(t, err)
	var unpublished int64
	require.NoError(t, s.db.WithContext(ctx).Model(&dao.LedgerEvent{}).
		Where("published = ?", false).Count(&unpublished).Error)
	assert.Zero(t, unpublished)
}

func (s *LedgerModuleTestSuite) assertWallet(ctx context.Context, address ledger.Address, want uint64) {
	balance, err := s.ms.Payment.Svc.BalanceOf(ctx, address.String())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), want, balance, address)
}
