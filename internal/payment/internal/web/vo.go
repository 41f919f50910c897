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

type Balance struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Transfer struct {
	SN     string `json:"sn"`
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	Type   uint8  `json:"type"`
	Ctime  int64  `json:"ctime"`
}

type TransferList struct {
	List []Transfer `json:"list,omitempty"`
}

type TopUpReq struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}
