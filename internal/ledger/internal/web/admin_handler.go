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
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler 里程上报方使用的接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/ledger")
	g.POST("/mileage/report", ginx.BS[MileageReportReq](h.ReportMileage))
	g.POST("/audit", ginx.S(h.Audit))
}

func (h *AdminHandler) ReportMileage(ctx *ginx.Context, req MileageReportReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.ReportMileage(ctx.Request.Context(),
		holderOf(sess), domain.Address(req.Holder), req.Reading)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: MintResp{
			Holder:   res.Holder.String(),
			VIN:      res.VIN,
			Units:    res.Units,
			Reading:  res.Reading,
			Distance: res.Distance,
		},
	}, nil
}

func (h *AdminHandler) Audit(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	report, err := h.svc.AuditConservation(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AuditResp{
			TotalMinted: report.State.TotalMinted,
			TotalBurned: report.State.TotalBurned,
			Available:   report.Cursor.Available(),
			SumBalance:  report.SumBalance,
			Holders:     report.HolderAccounts,
			Violations:  report.Violations(),
		},
	}, nil
}
