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
	"fmt"
	"math"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository"
)

// rewardEscrow 持有人待领取奖励, 提现时先清零再付款, 付款失败则恢复
type rewardEscrow struct {
	repo repository.LedgerRepository
}

func newRewardEscrow(repo repository.LedgerRepository) rewardEscrow {
	return rewardEscrow{repo: repo}
}

func (e rewardEscrow) credit(ctx context.Context, holder domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	p, err := e.repo.PendingReward(ctx, holder)
	if err != nil {
		return err
	}
	if p.Amount > math.MaxUint64-amount {
		return fmt.Errorf("%w: 待领取奖励溢出, holder=%s", ErrInvalidInput, holder)
	}
	p.Amount += amount
	return e.repo.SavePendingReward(ctx, p)
}

// withdraw 待领取为 0 时直接返回 0, 不会调用 payout
func (e rewardEscrow) withdraw(ctx context.Context, holder domain.Address,
	payout func(ctx context.Context, amount uint64) error) (uint64, error) {
	p, err := e.repo.PendingReward(ctx, holder)
	if err != nil {
		return 0, err
	}
	amount := p.Amount
	if amount == 0 {
		return 0, nil
	}
	p.Amount = 0
	if err = e.repo.SavePendingReward(ctx, p); err != nil {
		return 0, err
	}
	if err = payout(ctx, amount); err != nil {
		p.Amount = amount
		if err2 := e.repo.SavePendingReward(ctx, p); err2 != nil {
			return 0, fmt.Errorf("%w: 恢复待领取奖励失败: %w", err, err2)
		}
		return 0, err
	}
	return amount, nil
}

func (e rewardEscrow) PendingOf(ctx context.Context, holder domain.Address) (uint64, error) {
	p, err := e.repo.PendingReward(ctx, holder)
	return p.Amount, err
}
