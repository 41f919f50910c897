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

package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/ecocredit/internal/payment/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/repository"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/service"
	paymentmocks "github.com/ecodeclub/ecocredit/internal/payment/mocks"
	"github.com/ecodeclub/ecocredit/internal/pkg/sequencenumber"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSNGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGeneratorWith(func(_ time.Time) int64 { return 1700000000000 },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })
}

func TestService_Transfer(t *testing.T) {
	t.Parallel()
	const wantSN = "TR1700000000000nUfojcH2M5j2j3Tk5"
	testCases := []struct {
		name   string
		from   string
		to     string
		amount uint64
		mock   func(ctrl *gomock.Controller) repository.PaymentRepository

		wantTransfer domain.Transfer
		wantErr      error
	}{
		{
			name:   "转账成功",
			from:   "0xb0b",
			to:     "0xe5c",
			amount: 750,
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				repo := paymentmocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().Transfer(gomock.Any(), domain.Transfer{
					SN:     wantSN,
					From:   "0xb0b",
					To:     "0xe5c",
					Amount: 750,
					Type:   domain.TransferTypeInternal,
				}).Return(nil)
				return repo
			},
			wantTransfer: domain.Transfer{
				SN:     wantSN,
				From:   "0xb0b",
				To:     "0xe5c",
				Amount: 750,
				Type:   domain.TransferTypeInternal,
			},
		},
		{
			name:   "金额为0",
			from:   "0xb0b",
			to:     "0xe5c",
			amount: 0,
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				return paymentmocks.NewMockPaymentRepository(ctrl)
			},
		},
		{
			name:   "地址为空",
			from:   "",
			to:     "0xe5c",
			amount: 1,
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				return paymentmocks.NewMockPaymentRepository(ctrl)
			},
			wantErr: service.ErrInvalidAddress,
		},
		{
			name:   "余额不足",
			from:   "0xb0b",
			to:     "0xe5c",
			amount: 750,
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				repo := paymentmocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().Transfer(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: address=0xb0b", repository.ErrInsufficientFunds))
				return repo
			},
			wantErr: service.ErrInsufficientFunds,
		},
		{
			name:   "数据库错误",
			from:   "0xb0b",
			to:     "0xe5c",
			amount: 750,
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				repo := paymentmocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(errMockDB)
				return repo
			},
			wantErr: errMockDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := service.NewService(tc.mock(ctrl), newSNGenerator())
			res, err := svc.Transfer(context.Background(), tc.from, tc.to, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantTransfer, res)
		})
	}
}

var errMockDB = errors.New("mock db error")

func TestService_TransferIn(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := paymentmocks.NewMockPaymentRepository(ctrl)
	want := domain.Transfer{
		SN:     "TU1700000000000nUfojcH2M5j2j3Tk5",
		To:     "0xb0b",
		Amount: 10000,
		Type:   domain.TransferTypeTopUp,
	}
	repo.EXPECT().TransferIn(gomock.Any(), want).Return(nil)
	svc := service.NewService(repo, newSNGenerator())

	res, err := svc.TransferIn(context.Background(), "0xb0b", 10000)
	assert.NoError(t, err)
	assert.Equal(t, want, res)

	_, err = svc.TransferIn(context.Background(), "", 10000)
	assert.ErrorIs(t, err, service.ErrInvalidAddress)
}

func TestService_BalanceOf(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := paymentmocks.NewMockPaymentRepository(ctrl)
	repo.EXPECT().Wallet(gomock.Any(), "0xb0b").Return(domain.Wallet{Address: "0xb0b", Balance: 42}, nil)
	repo.EXPECT().Wallet(gomock.Any(), "0xnew").Return(domain.Wallet{Address: "0xnew"}, nil)
	svc := service.NewService(repo, newSNGenerator())

	balance, err := svc.BalanceOf(context.Background(), "0xb0b")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), balance)
	balance, err = svc.BalanceOf(context.Background(), "0xnew")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}
