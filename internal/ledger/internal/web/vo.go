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

package web

import (
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
)

type PurchaseReq struct {
	// RequestID 客户端生成, 用于防止重复提交
	RequestID string `json:"requestID"`
	Amount    uint64 `json:"amount"`
}

type SellerShare struct {
	Seller string `json:"seller"`
	Units  uint64 `json:"units"`
}

type PurchaseResp struct {
	Amount    uint64        `json:"amount"`
	UnitPrice uint64        `json:"unitPrice"`
	Cost      uint64        `json:"cost"`
	Sellers   []SellerShare `json:"sellers"`
}

type WithdrawResp struct {
	Amount uint64 `json:"amount"`
}

type Vehicle struct {
	VIN                  string `json:"vin"`
	LastProcessedReading uint64 `json:"lastProcessedReading"`
	LastProcessedAt      int64  `json:"lastProcessedAt"`
}

type Account struct {
	Holder        string   `json:"holder"`
	Balance       uint64   `json:"balance"`
	Minted        uint64   `json:"minted"`
	Burned        uint64   `json:"burned"`
	PendingReward uint64   `json:"pendingReward,omitempty"`
	Vehicle       *Vehicle `json:"vehicle,omitempty"`
}

func newAccount(a domain.HolderAccount) Account {
	return Account{
		Holder:  a.Holder.String(),
		Balance: a.Balance,
		Minted:  a.Minted,
		Burned:  a.Burned,
	}
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type AccountList struct {
	List  []Account `json:"list,omitempty"`
	Total int64     `json:"total,omitempty"`
}

type Supply struct {
	UnitPrice           uint64 `json:"unitPrice"`
	LastPriceUpdateTime int64  `json:"lastPriceUpdateTime"`
	TotalMinted         uint64 `json:"totalMinted"`
	TotalBurned         uint64 `json:"totalBurned"`
	Available           uint64 `json:"available"`
}

type CreditRecordReq struct {
	Index uint64 `json:"index"`
}

type CreditRecord struct {
	Index    uint64 `json:"index"`
	Holder   string `json:"holder"`
	IssuedAt int64  `json:"issuedAt"`
	Valid    bool   `json:"valid"`
}

type MileageReportReq struct {
	Holder  string `json:"holder"`
	Reading uint64 `json:"reading"`
}

type MintResp struct {
	Holder   string `json:"holder"`
	VIN      string `json:"vin"`
	Units    uint64 `json:"units"`
	Reading  uint64 `json:"reading"`
	Distance uint64 `json:"distance"`
}

type AuditResp struct {
	TotalMinted uint64   `json:"totalMinted"`
	TotalBurned uint64   `json:"totalBurned"`
	Available   uint64   `json:"available"`
	SumBalance  uint64   `json:"sumBalance"`
	Holders     int64    `json:"holders"`
	Violations  []string `json:"violations,omitempty"`
}
