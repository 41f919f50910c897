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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ecocredit/internal/test"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckAddressBuilder(t *testing.T) {
	testCases := []struct {
		name      string
		claims    session.Claims
		noSession bool
		wantCode  int
		wantAbort bool
	}{
		{
			name: "会话中有地址",
			claims: session.Claims{
				Uid:  1,
				Data: map[string]string{AddressClaim: "0xa11ce"},
			},
			wantCode: 200,
		},
		{
			name:      "会话中没有地址",
			claims:    session.Claims{Uid: 1},
			wantCode:  403,
			wantAbort: true,
		},
		{
			name:      "未登录",
			noSession: true,
			wantCode:  401,
			wantAbort: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/ledger/withdraw", nil)
			if !tc.noSession {
				c.Set(test.SessionKey, session.NewMemorySession(tc.claims))
			}
			builder := NewCheckAddressBuilder()
			builder.sp = &test.SessionProvider{}
			builder.Build()(c)
			assert.Equal(t, tc.wantCode, c.Writer.Status())
			assert.Equal(t, tc.wantAbort, c.IsAborted())
		})
	}
}
