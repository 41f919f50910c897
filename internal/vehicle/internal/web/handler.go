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

	"github.com/ecodeclub/ecocredit/internal/vehicle/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/vehicle/internal/errs"
	"github.com/ecodeclub/ecocredit/internal/vehicle/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/vehicle/owner", ginx.B[OwnerReq](h.Owner))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/vehicle")
	g.POST("/register", ginx.BS[RegisterReq](h.Register))
	g.POST("/mine", ginx.S(h.Mine))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq, sess session.Session) (ginx.Result, error) {
	owner := sess.Claims().Get("address").StringOrDefault("")
	v, err := h.svc.Register(ctx.Request.Context(), owner, req.VIN)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newVehicle(v)}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	v, err := h.svc.VehicleOf(ctx.Request.Context(), sess.Claims().Get("address").StringOrDefault(""))
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newVehicle(v)}, nil
}

func (h *Handler) Owner(ctx *ginx.Context, req OwnerReq) (ginx.Result, error) {
	owner, err := h.svc.OwnerOf(ctx.Request.Context(), req.VIN)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: Vehicle{VIN: domain.NormalizeVIN(req.VIN), Owner: owner}}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidOwner):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: errs.InvalidInput.Msg}, nil
	case errors.Is(err, service.ErrInvalidVIN):
		return ginx.Result{Code: errs.InvalidVIN.Code, Msg: errs.InvalidVIN.Msg}, nil
	case errors.Is(err, service.ErrDuplicatedVehicle):
		return ginx.Result{Code: errs.DuplicatedVehicle.Code, Msg: errs.DuplicatedVehicle.Msg}, nil
	case errors.Is(err, service.ErrVehicleNotFound):
		return ginx.Result{Code: errs.VehicleNotFound.Code, Msg: errs.VehicleNotFound.Msg}, nil
	default:
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
}

func newVehicle(v domain.Vehicle) Vehicle {
	return Vehicle{VIN: v.VIN, Owner: v.Owner, Ctime: v.Ctime}
}
