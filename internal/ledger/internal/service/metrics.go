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

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mintedUnitsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecocredit",
		Subsystem: "ledger",
		Name:      "minted_units_total",
		Help:      "Total number of credit units minted",
	})
	burnedUnitsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecocredit",
		Subsystem: "ledger",
		Name:      "burned_units_total",
		Help:      "Total number of credit units purchased and retired",
	})
	withdrawnRewardCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ecocredit",
		Subsystem: "ledger",
		Name:      "withdrawn_reward_total",
		Help:      "Total amount of rewards paid out to holders",
	})
	failedOperationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecocredit",
		Subsystem: "ledger",
		Name:      "failed_operations_total",
		Help:      "Ledger operations that need manual attention",
	}, []string{"reason"})
)
