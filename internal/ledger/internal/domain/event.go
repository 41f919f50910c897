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

package domain

type EventType string

func (t EventType) ToString() string {
	return string(t)
}

const (
	EventUnitMinted      EventType = "unit_minted"
	EventUnitBurned      EventType = "unit_burned"
	EventRewardWithdrawn EventType = "reward_withdrawn"
)

// LedgerEvent 账本审计事件, 与状态变更在同一个事务中落库
type LedgerEvent struct {
	ID      int64
	EventID int64
	Type    EventType
	// 发行: 持有人; 销毁: 买方; 提现: 持有人
	Holder Address
	// 销毁: 卖方
	Counterparty Address
	VIN          string
	// 发行: 数量; 销毁: 1; 提现: 金额
	Amount   uint64
	Distance uint64
	Ctime    int64
}

// RelayResult 一批补发的结果, 下一批从 LastID 之后继续查询
type RelayResult struct {
	Fetched   int
	Published int
	// LastID 本批最后一个事件的自增ID
	LastID int64
}
