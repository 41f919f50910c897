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

package event

const (
	LedgerEventName  = "ledger_events"
	MileageEventName = "mileage_events"
)

// LedgerEvent 发行, 销毁和提现事件, EventID 全局唯一, 下游据此去重
type LedgerEvent struct {
	EventID      int64  `json:"eventId"`
	Type         string `json:"type"`
	Holder       string `json:"holder"`
	Counterparty string `json:"counterparty,omitempty"`
	VIN          string `json:"vin,omitempty"`
	Amount       uint64 `json:"amount"`
	Distance     uint64 `json:"distance,omitempty"`
	Ctime        int64  `json:"ctime"`
}

// MileageEvent 里程上报事件, Reporter 必须是配置中允许的上报方
type MileageEvent struct {
	Reporter string `json:"reporter"`
	Holder   string `json:"holder"`
	Reading  uint64 `json:"reading"`
}
