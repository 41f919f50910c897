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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AddressClaim 登录时写入会话的钱包地址
const AddressClaim = "address"

// CheckAddressBuilder 要求会话中带有钱包地址
type CheckAddressBuilder struct {
	sp     session.Provider
	logger *elog.Component
}

func NewCheckAddressBuilder() *CheckAddressBuilder {
	return &CheckAddressBuilder{logger: elog.DefaultLogger}
}

func (b *CheckAddressBuilder) Build() gin.HandlerFunc {
	if b.sp == nil {
		b.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := b.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get(AddressClaim).StringOrDefault("") == "" {
			gctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Debug("会话中没有钱包地址", elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
