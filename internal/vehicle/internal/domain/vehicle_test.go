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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidVIN(t *testing.T) {
	testCases := []struct {
		name string
		vin  string
		want bool
	}{
		{name: "合法", vin: "1HGCM82633A004352", want: true},
		{name: "太短", vin: "1HGCM82633A00435"},
		{name: "太长", vin: "1HGCM82633A0043521"},
		{name: "包含I", vin: "1HGCM82633I004352"},
		{name: "包含O", vin: "1HGCM82633O004352"},
		{name: "包含Q", vin: "1HGCM82633Q004352"},
		{name: "小写", vin: "1hgcm82633a004352"},
		{name: "特殊字符", vin: "1HGCM82633-004352"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidVIN(tc.vin))
		})
	}
}

func TestNormalizeVIN(t *testing.T) {
	assert.Equal(t, "1HGCM82633A004352", NormalizeVIN("  1hgcm82633a004352 "))
}
