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

	"github.com/ecodeclub/ecocredit/internal/payment/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/repository"
	"github.com/ecodeclub/ecocredit/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrInsufficientFunds = repository.ErrInsufficientFunds
	ErrInvalidAddress    = errors.New("地址非法")
)

const (
	transferSNPrefix = "TR"
	topUpSNPrefix    = "TU"
)

//go:generate mockgen -source=./payment.go -destination=../../mocks/payment.mock.go -package=paymentmocks Service
type Service interface {
	// Transfer 金额为 0 时什么也不做, 余额不足时返回 ErrInsufficientFunds 且不会部分转账
	Transfer(ctx context.Context, from, to string, amount uint64) (domain.Transfer, error)
	// TransferIn 充值
	TransferIn(ctx context.Context, to string, amount uint64) (domain.Transfer, error)
	BalanceOf(ctx context.Context, address string) (uint64, error)
	TransfersOf(ctx context.Context, address string, offset, limit int) ([]domain.Transfer, error)
}

type service struct {
	repo   repository.PaymentRepository
	snGen  *sequencenumber.Generator
	logger *elog.Component
}

func NewService(repo repository.PaymentRepository, snGen *sequencenumber.Generator) Service {
	return &service{
		repo:   repo,
		snGen:  snGen,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Transfer(ctx context.Context, from, to string, amount uint64) (domain.Transfer, error) {
	if from == "" || to == "" {
		return domain.Transfer{}, fmt.Errorf("%w: from=%q, to=%q", ErrInvalidAddress, from, to)
	}
	if amount == 0 {
		return domain.Transfer{}, nil
	}
	t := domain.Transfer{
		SN:     s.snGen.Generate(transferSNPrefix),
		From:   from,
		To:     to,
		Amount: amount,
		Type:   domain.TransferTypeInternal,
	}
	if err := s.repo.Transfer(ctx, t); err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			s.logger.Error("转账失败",
				elog.FieldErr(err),
				elog.String("sn", t.SN),
				elog.String("from", from),
				elog.String("to", to),
			)
		}
		return domain.Transfer{}, err
	}
	return t, nil
}

func (s *service) TransferIn(ctx context.Context, to string, amount uint64) (domain.Transfer, error) {
	if to == "" {
		return domain.Transfer{}, fmt.Errorf("%w: to 为空", ErrInvalidAddress)
	}
	if amount == 0 {
		return domain.Transfer{}, nil
	}
	t := domain.Transfer{
		SN:     s.snGen.Generate(topUpSNPrefix),
		To:     to,
		Amount: amount,
		Type:   domain.TransferTypeTopUp,
	}
	if err := s.repo.TransferIn(ctx, t); err != nil {
		return domain.Transfer{}, err
	}
	return t, nil
}

func (s *service) BalanceOf(ctx context.Context, address string) (uint64, error) {
	w, err := s.repo.Wallet(ctx, address)
	return w.Balance, err
}

func (s *service) TransfersOf(ctx context.Context, address string, offset, limit int) ([]domain.Transfer, error) {
	return s.repo.TransfersOf(ctx, address, offset, limit)
}
