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

// Address 持有人地址, 空字符串为空地址
type Address string

const NullAddress Address = ""

func (a Address) IsNull() bool {
	return a == NullAddress
}

func (a Address) String() string {
	return string(a)
}

// CreditRecord 一条积分发行记录, 只会被作废一次, 永不物理删除
type CreditRecord struct {
	Index  uint64
	Holder Address
	// UTC Unix毫秒数
	IssuedAt int64
	Valid    bool
}

// QueueCursor 发行游标与销毁游标, BurnCursor <= MintCursor
type QueueCursor struct {
	MintCursor uint64
	BurnCursor uint64
}

func (c QueueCursor) Available() uint64 {
	return c.MintCursor - c.BurnCursor
}
