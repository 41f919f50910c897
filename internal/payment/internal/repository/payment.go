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

	"github.com/ecodeclub/ecocredit/internal/payment/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrInsufficientFunds = dao.ErrInsufficientFunds

//go:generate mockgen -source=./payment.go -destination=../../mocks/payment_repository.mock.go -package=paymentmocks PaymentRepository
type PaymentRepository interface {
	Transfer(ctx context.Context, t domain.Transfer) error
	TransferIn(ctx context.Context, t domain.Transfer) error
	// Wallet 钱包不存在时返回余额为 0 的钱包
	Wallet(ctx context.Context, address string) (domain.Wallet, error)
	TransfersOf(ctx context.Context, address string, offset, limit int) ([]domain.Transfer, error)
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (p *paymentRepository) Transfer(ctx context.Context, t domain.Transfer) error {
	return p.dao.Transfer(ctx, p.toEntity(t))
}

func (p *paymentRepository) TransferIn(ctx context.Context, t domain.Transfer) error {
	return p.dao.TransferIn(ctx, p.toEntity(t))
}

func (p *paymentRepository) Wallet(ctx context.Context, address string) (domain.Wallet, error) {
	w, err := p.dao.FindWallet(ctx, address)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Wallet{Address: address}, nil
	}
	return domain.Wallet{Address: w.Address, Balance: w.Balance}, err
}

func (p *paymentRepository) TransfersOf(ctx context.Context, address string, offset, limit int) ([]domain.Transfer, error) {
	logs, err := p.dao.FindTransferLogs(ctx, address, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(idx int, src dao.TransferLog) domain.Transfer {
		return domain.Transfer{
			SN:     src.SN,
			From:   src.FromAddr,
			To:     src.ToAddr,
			Amount: src.Amount,
			Type:   domain.TransferType(src.Type),
			Ctime:  src.Ctime,
		}
	}), nil
}

func (p *paymentRepository) toEntity(t domain.Transfer) dao.TransferLog {
	return dao.TransferLog{
		SN:       t.SN,
		FromAddr: t.From,
		ToAddr:   t.To,
		Amount:   t.Amount,
		Type:     t.Type.ToUint8(),
	}
}
