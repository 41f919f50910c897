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

package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*RelayLedgerEventsJob)(nil)

// RelayLedgerEventsJob 补发事务提交后没能发送出去的账本事件
type RelayLedgerEventsJob struct {
	svc   service.Service
	limit int
	// 单次运行最多处理的批次, 避免一直占用
	maxBatches int
}

func NewRelayLedgerEventsJob(svc service.Service, limit, maxBatches int) *RelayLedgerEventsJob {
	return &RelayLedgerEventsJob{
		svc:        svc,
		limit:      limit,
		maxBatches: maxBatches,
	}
}

func (j *RelayLedgerEventsJob) Name() string {
	return "RelayLedgerEventsJob"
}

// Run 每次运行都从头开始, 本次运行内发送失败的事件被跳过, 留给下一次运行
func (j *RelayLedgerEventsJob) Run(ctx context.Context) error {
	var afterID int64
	for i := 0; i < j.maxBatches; i++ {
		res, err := j.svc.RelayEvents(ctx, afterID, j.limit)
		if err != nil {
			return fmt.Errorf("补发账本事件失败: %w", err)
		}
		if res.Fetched < j.limit {
			break
		}
		afterID = res.LastID
	}
	return nil
}
