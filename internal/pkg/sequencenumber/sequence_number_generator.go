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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// SNLength 序列号的固定长度
const SNLength = 32

type TimestampGenerateFunc func(time.Time) int64

type ShortUUIDGenerateFunc func() string

type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() }, func() string { return shortuuid.New() })
}

// Generate 业务前缀 + 毫秒时间戳 + shortuuid, 截断为 SNLength 位
// 前缀用来区分业务, 建议不超过 4 位
func (s *Generator) Generate(prefix string) string {
	timestamp := s.timestampGenFunc(time.Now())
	sn := fmt.Sprintf("%s%d%s", prefix, timestamp, s.shortUUIDGenFunc())
	if len(sn) > SNLength {
		sn = sn[:SNLength]
	}
	return sn
}
