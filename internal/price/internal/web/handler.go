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

	"github.com/ecodeclub/ecocredit/internal/price/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/price/internal/errs"
	"github.com/ecodeclub/ecocredit/internal/price/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Price struct {
	Amount    uint64 `json:"amount"`
	UpdatedAt int64  `json:"updatedAt"`
}

type SetPriceReq struct {
	Amount uint64 `json:"amount"`
}

// Handler 查询当前价格
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/price/current", ginx.W(h.Current))
}

func (h *Handler) Current(ctx *ginx.Context) (ginx.Result, error) {
	p, err := h.svc.CurrentUnitPrice(ctx.Request.Context())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPrice(p)}, nil
}

// AdminHandler 价格设置方使用
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/price/set", ginx.BS[SetPriceReq](h.SetPrice))
}

func (h *AdminHandler) SetPrice(ctx *ginx.Context, req SetPriceReq, sess session.Session) (ginx.Result, error) {
	caller := sess.Claims().Get("address").StringOrDefault("")
	p, err := h.svc.SetPrice(ctx.Request.Context(), caller, req.Amount)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPrice(p)}, nil
}

func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrAccessDenied):
		return ginx.Result{Code: errs.AccessDenied.Code, Msg: errs.AccessDenied.Msg}, nil
	case errors.Is(err, service.ErrInvalidPrice):
		return ginx.Result{Code: errs.InvalidPrice.Code, Msg: errs.InvalidPrice.Msg}, nil
	case errors.Is(err, service.ErrPriceNotSet):
		return ginx.Result{Code: errs.PriceNotSet.Code, Msg: errs.PriceNotSet.Msg}, nil
	default:
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
}

func newPrice(p domain.Price) Price {
	return Price{Amount: p.Amount, UpdatedAt: p.UpdatedAt}
}
