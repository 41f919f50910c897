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
	"errors"
	"fmt"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/repository"
)

var (
	ErrAccessDenied        = errors.New("无权限")
	ErrInvalidInput        = errors.New("参数非法")
	ErrInvalidAmount       = fmt.Errorf("%w: 购买数量必须大于0", ErrInvalidInput)
	ErrTooManyUnits        = fmt.Errorf("%w: 单次处理的积分数量超过上限", ErrInvalidInput)
	ErrUnregisteredVehicle = errors.New("持有人没有登记车辆")
	ErrNonMonotonicReading = errors.New("里程读数没有增长")
	ErrInsufficientSupply  = errors.New("可购买的积分不足")
	ErrPaymentFailed       = errors.New("支付失败")
	ErrNoPendingReward     = errors.New("没有待领取的奖励")
	ErrCorruptState        = errors.New("账本状态损坏")
	ErrEmptyQueue          = errors.New("积分发行队列为空")

	ErrExceedTheMaximumNumberOfRetries = errors.New("超过最大重试次数")

	errCreditRecordNotFound = repository.ErrRecordNotFound
)
