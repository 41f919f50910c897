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

package ledger

import (
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/consumer"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/event"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/job"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/web"
)

type (
	Handler              = web.Handler
	AdminHandler         = web.AdminHandler
	Service              = service.Service
	Config               = service.Config
	Address              = domain.Address
	LedgerEvent          = event.LedgerEvent
	MileageEvent         = event.MileageEvent
	MileageEventConsumer = consumer.MileageEventConsumer
	RelayLedgerEventsJob = job.RelayLedgerEventsJob
	ConservationAuditJob = job.ConservationAuditJob
)

const (
	LedgerEventName  = event.LedgerEventName
	MileageEventName = event.MileageEventName
)

var (
	ErrAccessDenied        = service.ErrAccessDenied
	ErrInvalidInput        = service.ErrInvalidInput
	ErrUnregisteredVehicle = service.ErrUnregisteredVehicle
	ErrNonMonotonicReading = service.ErrNonMonotonicReading
	ErrInsufficientSupply  = service.ErrInsufficientSupply
	ErrPaymentFailed       = service.ErrPaymentFailed
	ErrNoPendingReward     = service.ErrNoPendingReward
	ErrCorruptState        = service.ErrCorruptState
)

type Module struct {
	Svc                  Service
	Hdl                  *Handler
	AdminHdl             *AdminHandler
	MileageConsumer      *MileageEventConsumer
	RelayLedgerEventsJob *RelayLedgerEventsJob
	ConservationAuditJob *ConservationAuditJob
}
