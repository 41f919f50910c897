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
	"strings"

	"github.com/ecodeclub/ecocredit/internal/ledger"
	"github.com/ecodeclub/ecocredit/internal/payment"
	"github.com/ecodeclub/ecocredit/internal/pkg/middleware"
	"github.com/ecodeclub/ecocredit/internal/price"
	"github.com/ecodeclub/ecocredit/internal/vehicle"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	ledgerHdl *ledger.Handler,
	vehicleHdl *vehicle.Handler,
	priceHdl *price.Handler,
	paymentHdl *payment.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder("web").Build())
	res.Use(corsMiddleware())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	ledgerHdl.PublicRoutes(res.Engine)
	vehicleHdl.PublicRoutes(res.Engine)
	priceHdl.PublicRoutes(res.Engine)
	paymentHdl.PublicRoutes(res.Engine)
	// 登录校验, 并且会话中必须有钱包地址
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckAddressBuilder().Build())
	ledgerHdl.PrivateRoutes(res.Engine)
	vehicleHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	return res
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") ||
				strings.Contains(origin, "ecocredit")
		},
	})
}
