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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/ecocredit/internal/ledger"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cronJobDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
	Namespace: "ecocredit",
	Subsystem: "cron",
	Name:      "job_duration_seconds",
	Help:      "定时任务耗时",
	Objectives: map[float64]float64{
		0.5:  0.05,
		0.99: 0.001,
	},
}, []string{"job", "success"})

func initCronJobs(lm *ledger.Module) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.relayLedgerEvents").Build(ecron.WithJob(funcJobWrapper(lm.RelayLedgerEventsJob))),
		ecron.Load("cron.conservationAudit").Build(ecron.WithJob(funcJobWrapper(lm.ConservationAuditJob))),
	}
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行", elog.String("cronjob", name))
		err := job.Run(ctx)
		duration := time.Since(start)
		cronJobDuration.WithLabelValues(name, boolLabel(err == nil)).Observe(duration.Seconds())
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name),
				elog.FieldCost(duration))
			return err
		}
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldCost(duration))
		return nil
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
