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

package domain

import "strings"

const VINLength = 17

type Vehicle struct {
	VIN   string
	Owner string
	Ctime int64
}

// NormalizeVIN 去掉首尾空白并转为大写
func NormalizeVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// ValidVIN 17 位数字或大写字母, 不包含 I, O, Q
func ValidVIN(vin string) bool {
	if len(vin) != VINLength {
		return false
	}
	for _, c := range vin {
		switch {
		case c == 'I' || c == 'O' || c == 'Q':
			return false
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
