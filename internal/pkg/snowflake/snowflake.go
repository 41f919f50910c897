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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Biz 业务编号, 不同业务的 ID 在同一个节点上互不干扰
type Biz uint

const (
	BizLedgerEvent Biz = iota
	BizPaymentTransfer
	BizPriceEvent

	bizCount
)

type Generator interface {
	Generate(biz Biz) (ID, error)
}

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Biz  | 5 Bit NodeID  |   12 Bit Sequence ID   |
// +---------------------------------------------------------------------------------------+
type BizGenerator struct {
	nodes syncx.Map[Biz, *snowflake.Node]
}

const maxNode uint = 31

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrUnknownBiz = errors.New("未知的业务编号")
)

func NewBizGenerator(nodeID uint) (*BizGenerator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	g := &BizGenerator{}
	for biz := Biz(0); biz < bizCount; biz++ {
		n, err := snowflake.NewNode(int64(uint(biz)<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(biz, n)
	}
	return g, nil
}

func (g *BizGenerator) Generate(biz Biz) (ID, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBiz, biz)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (f ID) Biz() Biz {
	return Biz(snowflake.ID(f).Node() >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
