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

// DistanceUnit 每个积分对应的里程数
const DistanceUnit uint64 = 100

// HolderAccount 持有人统计
// Balance 是净归属数量: 发行时增加, 被买走时减少, 买方按购买数量增加
type HolderAccount struct {
	Holder  Address
	Balance uint64
	Minted  uint64
	Burned  uint64
}

type PendingReward struct {
	Holder Address
	Amount uint64
}

// GlobalState UnitPrice 和 LastPriceUpdateTime 记录最近一次购买时采用的价格
type GlobalState struct {
	UnitPrice           uint64
	LastPriceUpdateTime int64
	TotalMinted         uint64
	TotalBurned         uint64
}

func (s GlobalState) Available() uint64 {
	return s.TotalMinted - s.TotalBurned
}

type Vehicle struct {
	VIN                  string
	LastProcessedReading uint64
	LastProcessedAt      int64
}

type UnitPrice struct {
	Amount    uint64
	UpdatedAt int64
}

type MintResult struct {
	Holder Address
	VIN    string
	Units  uint64
	// Reading 本次处理之后的已处理读数, 超过单次上限时小于上报读数
	Reading  uint64
	Distance uint64
}

// SellerShare 连续被买走的同一卖家的积分
type SellerShare struct {
	Seller Address
	Units  uint64
}

type PurchaseResult struct {
	Buyer     Address
	Amount    uint64
	UnitPrice uint64
	Cost      uint64
	Sellers   []SellerShare
}

type AuditReport struct {
	State          GlobalState
	Cursor         QueueCursor
	SumBalance     uint64
	SumMinted      uint64
	SumBurned      uint64
	HolderAccounts int64
}

// Violations 返回所有不成立的守恒条件
func (r AuditReport) Violations() []string {
	var res []string
	if r.SumBalance != r.State.TotalMinted {
		res = append(res, "sum(balance) != totalMinted")
	}
	if r.SumMinted != r.State.TotalMinted {
		res = append(res, "sum(minted) != totalMinted")
	}
	if r.SumBurned != r.State.TotalBurned {
		res = append(res, "sum(burned) != totalBurned")
	}
	if r.State.TotalBurned > r.State.TotalMinted {
		res = append(res, "totalBurned > totalMinted")
	}
	if r.Cursor.BurnCursor > r.Cursor.MintCursor {
		res = append(res, "burnCursor > mintCursor")
	}
	if r.Cursor.Available() != r.State.Available() {
		res = append(res, "availableCount != totalMinted - totalBurned")
	}
	return res
}
