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

package errs

var (
	SystemError = ErrorCode{Code: 520001, Msg: "系统错误"}

	InvalidInput        = ErrorCode{Code: 420001, Msg: "参数非法"}
	AccessDenied        = ErrorCode{Code: 420002, Msg: "无权限"}
	UnregisteredVehicle = ErrorCode{Code: 420003, Msg: "没有登记车辆"}
	NonMonotonicReading = ErrorCode{Code: 420004, Msg: "里程读数没有增长"}
	InsufficientSupply  = ErrorCode{Code: 420005, Msg: "可购买的积分不足"}
	PaymentFailed       = ErrorCode{Code: 420006, Msg: "支付失败"}
	NoPendingReward     = ErrorCode{Code: 420007, Msg: "没有待领取的奖励"}
	DuplicatedRequest   = ErrorCode{Code: 420008, Msg: "重复请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
