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

	"github.com/ecodeclub/ecocredit/internal/payment/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/errs"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const maxPageLimit = 100

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/balance", ginx.S(h.Balance))
	g.POST("/transfers", ginx.BS[Page](h.Transfers))
}

func (h *Handler) Balance(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	address := addressOf(sess)
	if address == "" {
		return invalidInputResult, nil
	}
	balance, err := h.svc.BalanceOf(ctx.Request.Context(), address)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Balance{Address: address, Balance: balance}}, nil
}

func (h *Handler) Transfers(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	address := addressOf(sess)
	if address == "" || req.Offset < 0 {
		return invalidInputResult, nil
	}
	if req.Limit <= 0 || req.Limit > maxPageLimit {
		req.Limit = maxPageLimit
	}
	ts, err := h.svc.TransfersOf(ctx.Request.Context(), address, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TransferList{
			List: slice.Map(ts, func(idx int, src domain.Transfer) Transfer {
				return newTransfer(src)
			}),
		},
	}, nil
}

func newTransfer(t domain.Transfer) Transfer {
	return Transfer{
		SN:     t.SN,
		From:   t.From,
		To:     t.To,
		Amount: t.Amount,
		Type:   t.Type.ToUint8(),
		Ctime:  t.Ctime,
	}
}

func addressOf(sess session.Session) string {
	return sess.Claims().Get("address").StringOrDefault("")
}

// AdminHandler 运营人员给钱包充值
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/topup", ginx.B[TopUpReq](h.TopUp))
}

func (h *AdminHandler) TopUp(ctx *ginx.Context, req TopUpReq) (ginx.Result, error) {
	t, err := h.svc.TransferIn(ctx.Request.Context(), req.To, req.Amount)
	switch {
	case errors.Is(err, service.ErrInvalidAddress):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newTransfer(t)}, nil
}
