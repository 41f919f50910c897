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
	"strings"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ConservationAuditJob)(nil)

type ConservationAuditJob struct {
	svc service.Service
}

func NewConservationAuditJob(svc service.Service) *ConservationAuditJob {
	return &ConservationAuditJob{svc: svc}
}

func (j *ConservationAuditJob) Name() string {
	return "ConservationAuditJob"
}

func (j *ConservationAuditJob) Run(ctx context.Context) error {
	report, err := j.svc.AuditConservation(ctx)
	if err != nil {
		return fmt.Errorf("核对积分守恒失败: %w", err)
	}
	if vs := report.Violations(); len(vs) > 0 {
		return fmt.Errorf("%w: %s", service.ErrCorruptState, strings.Join(vs, "; "))
	}
	return nil
}
