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

type TransferType uint8

func (t TransferType) ToUint8() uint8 {
	return uint8(t)
}

const (
	TransferTypeUnknown TransferType = iota
	// TransferTypeInternal 钱包之间转账
	TransferTypeInternal
	// TransferTypeTopUp 外部资金转入
	TransferTypeTopUp
)

type Wallet struct {
	Address string
	Balance uint64
}

type Transfer struct {
	SN     string
	From   string
	To     string
	Amount uint64
	Type   TransferType
	Ctime  int64
}
