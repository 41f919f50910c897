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

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository"
)

// creditQueue 积分发行队列, 先发行的积分先被购买
// 写操作只在 ledgerService 的事务中调用
type creditQueue struct {
	repo repository.LedgerRepository
}

func newCreditQueue(repo repository.LedgerRepository) creditQueue {
	return creditQueue{repo: repo}
}

func (q creditQueue) enqueue(ctx context.Context, holder domain.Address, issuedAt int64) (uint64, error) {
	c, err := q.repo.QueueCursor(ctx)
	if err != nil {
		return 0, err
	}
	idx := c.MintCursor
	err = q.repo.CreateCreditRecord(ctx, domain.CreditRecord{
		Index:    idx,
		Holder:   holder,
		IssuedAt: issuedAt,
		Valid:    true,
	})
	if errors.Is(err, repository.ErrDuplicatedCreditIdx) {
		return 0, fmt.Errorf("%w: 发行下标 %d 已被占用", ErrCorruptState, idx)
	}
	if err != nil {
		return 0, err
	}
	c.MintCursor++
	return idx, q.repo.SaveQueueCursor(ctx, c)
}

func (q creditQueue) dequeueOldest(ctx context.Context) (domain.Address, error) {
	c, err := q.repo.QueueCursor(ctx)
	if err != nil {
		return domain.NullAddress, err
	}
	if c.BurnCursor > c.MintCursor {
		return domain.NullAddress, fmt.Errorf("%w: 销毁游标 %d 超过发行游标 %d", ErrCorruptState, c.BurnCursor, c.MintCursor)
	}
	if c.BurnCursor == c.MintCursor {
		return domain.NullAddress, ErrEmptyQueue
	}
	r, err := q.repo.FindCreditRecord(ctx, c.BurnCursor)
	if errors.Is(err, errCreditRecordNotFound) {
		return domain.NullAddress, fmt.Errorf("%w: 发行记录 %d 不存在", ErrCorruptState, c.BurnCursor)
	}
	if err != nil {
		return domain.NullAddress, err
	}
	if !r.Valid {
		return domain.NullAddress, fmt.Errorf("%w: 发行记录 %d 已作废", ErrCorruptState, c.BurnCursor)
	}
	err = q.repo.InvalidateCreditRecord(ctx, c.BurnCursor)
	if errors.Is(err, repository.ErrCreditRecordConsumed) {
		return domain.NullAddress, fmt.Errorf("%w: 发行记录 %d 已作废", ErrCorruptState, c.BurnCursor)
	}
	if err != nil {
		return domain.NullAddress, err
	}
	c.BurnCursor++
	return r.Holder, q.repo.SaveQueueCursor(ctx, c)
}

func (q creditQueue) AvailableCount(ctx context.Context) (uint64, error) {
	c, err := q.repo.QueueCursor(ctx)
	if err != nil {
		return 0, err
	}
	return c.Available(), nil
}

// RecordAt 未使用的下标返回零值记录, 调用方应当把不存在和已作废同等对待
func (q creditQueue) RecordAt(ctx context.Context, idx uint64) (domain.CreditRecord, error) {
	r, err := q.repo.FindCreditRecord(ctx, idx)
	if errors.Is(err, errCreditRecordNotFound) {
		return domain.CreditRecord{Index: idx}, nil
	}
	return r, err
}
