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

import (
	"errors"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/errs"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	duplicatedRequestResult = ginx.Result{
		Code: errs.DuplicatedRequest.Code,
		Msg:  errs.DuplicatedRequest.Msg,
	}
)

var businessErrors = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrAccessDenied, code: errs.AccessDenied},
	{err: service.ErrInvalidInput, code: errs.InvalidInput},
	{err: service.ErrUnregisteredVehicle, code: errs.UnregisteredVehicle},
	{err: service.ErrNonMonotonicReading, code: errs.NonMonotonicReading},
	{err: service.ErrInsufficientSupply, code: errs.InsufficientSupply},
	{err: service.ErrPaymentFailed, code: errs.PaymentFailed},
	{err: service.ErrNoPendingReward, code: errs.NoPendingReward},
}

// errorResult 业务错误返回对应的错误码, 其余的都是系统错误
func errorResult(err error) (ginx.Result, error) {
	for _, be := range businessErrors {
		if errors.Is(err, be.err) {
			return ginx.Result{Code: be.code.Code, Msg: be.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
