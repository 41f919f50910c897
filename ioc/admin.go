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
	"net/http"

	"github.com/ecodeclub/ecocredit/internal/ledger"
	"github.com/ecodeclub/ecocredit/internal/payment"
	"github.com/ecodeclub/ecocredit/internal/pkg/middleware"
	"github.com/ecodeclub/ecocredit/internal/price"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

// InitAdminServer 里程上报, 设置价格, 充值和对账接口
// 具体的调用方权限还会在各个模块内部按地址校验
func InitAdminServer(ledgerHdl *ledger.AdminHandler,
	priceHdl *price.AdminHandler,
	paymentHdl *payment.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.Use(corsMiddleware())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckAddressBuilder().Build())
	res.Use(AdminPermission())
	ledgerHdl.PrivateRoutes(res.Engine)
	priceHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	return res
}

func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("admin").StringOrDefault("") != "true" {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限",
				elog.String("address", sess.Claims().Get(middleware.AddressClaim).StringOrDefault("")))
			return
		}
	}
}
