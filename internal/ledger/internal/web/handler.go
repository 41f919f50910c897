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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// 会话中保存持有人地址的字段
	addressClaim = "address"

	purchaseRequestExpiration = 10 * time.Minute
	maxPageLimit              = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	cache  ecache.Cache
	logger *elog.Component
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache, logger: elog.DefaultLogger}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/ledger")
	g.POST("/supply", ginx.W(h.Supply))
	g.POST("/record", ginx.B[CreditRecordReq](h.CreditRecord))
	g.POST("/holders", ginx.B[Page](h.ListAccounts))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/ledger")
	g.POST("/purchase", ginx.BS[PurchaseReq](h.Purchase))
	g.POST("/withdraw", ginx.S(h.Withdraw))
	g.POST("/account", ginx.S(h.Account))
}

func (h *Handler) Supply(ctx *ginx.Context) (ginx.Result, error) {
	st, err := h.svc.GlobalState(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	available, err := h.svc.AvailableCount(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Supply{
			UnitPrice:           st.UnitPrice,
			LastPriceUpdateTime: st.LastPriceUpdateTime,
			TotalMinted:         st.TotalMinted,
			TotalBurned:         st.TotalBurned,
			Available:           available,
		},
	}, nil
}

func (h *Handler) CreditRecord(ctx *ginx.Context, req CreditRecordReq) (ginx.Result, error) {
	r, err := h.svc.CreditRecordAt(ctx.Request.Context(), req.Index)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreditRecord{
			Index:    r.Index,
			Holder:   r.Holder.String(),
			IssuedAt: r.IssuedAt,
			Valid:    r.Valid,
		},
	}, nil
}

func (h *Handler) ListAccounts(ctx *ginx.Context, req Page) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxPageLimit {
		req.Limit = maxPageLimit
	}
	if req.Offset < 0 {
		return invalidInputResult, nil
	}
	accs, total, err := h.svc.ListAccounts(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AccountList{
			List: slice.Map(accs, func(idx int, src domain.HolderAccount) Account {
				return newAccount(src)
			}),
			Total: total,
		},
	}, nil
}

// Purchase 同一个 RequestID 在处理中或者成功之后再次提交会被拒绝
func (h *Handler) Purchase(ctx *ginx.Context, req PurchaseReq, sess session.Session) (ginx.Result, error) {
	buyer := holderOf(sess)
	if buyer.IsNull() || req.RequestID == "" {
		return invalidInputResult, nil
	}
	key := h.purchaseRequestKey(buyer, req.RequestID)
	ok, err := h.cache.SetNX(ctx.Request.Context(), key, req.RequestID, purchaseRequestExpiration)
	if err != nil {
		return systemErrorResult, fmt.Errorf("缓存请求ID失败: %w", err)
	}
	if !ok {
		return duplicatedRequestResult, nil
	}
	res, err := h.svc.Purchase(ctx.Request.Context(), buyer, req.Amount)
	if err != nil {
		// 失败之后允许客户端用同一个 RequestID 重试
		h.releaseRequest(ctx.Request.Context(), key)
		return errorResult(err)
	}
	return ginx.Result{
		Data: PurchaseResp{
			Amount:    res.Amount,
			UnitPrice: res.UnitPrice,
			Cost:      res.Cost,
			Sellers: slice.Map(res.Sellers, func(idx int, src domain.SellerShare) SellerShare {
				return SellerShare{Seller: src.Seller.String(), Units: src.Units}
			}),
		},
	}, nil
}

func (h *Handler) releaseRequest(ctx context.Context, key string) {
	if _, err := h.cache.Delete(ctx, key); err != nil {
		h.logger.Warn("释放购买请求ID失败", elog.FieldErr(err), elog.String("key", key))
	}
}

func (h *Handler) purchaseRequestKey(buyer domain.Address, requestID string) string {
	return fmt.Sprintf("ledger:purchase:%s:%s", buyer, requestID)
}

func (h *Handler) Withdraw(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	holder := holderOf(sess)
	if holder.IsNull() {
		return invalidInputResult, nil
	}
	amount, err := h.svc.Withdraw(ctx.Request.Context(), holder)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: WithdrawResp{Amount: amount}}, nil
}

func (h *Handler) Account(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	holder := holderOf(sess)
	if holder.IsNull() {
		return invalidInputResult, nil
	}
	acc, err := h.svc.AccountOf(ctx.Request.Context(), holder)
	if err != nil {
		return systemErrorResult, err
	}
	pending, err := h.svc.PendingRewardOf(ctx.Request.Context(), holder)
	if err != nil {
		return systemErrorResult, err
	}
	res := newAccount(acc)
	res.PendingReward = pending
	v, err := h.svc.VehicleState(ctx.Request.Context(), holder)
	switch {
	case err == nil:
		res.Vehicle = &Vehicle{
			VIN:                  v.VIN,
			LastProcessedReading: v.LastProcessedReading,
			LastProcessedAt:      v.LastProcessedAt,
		}
	case !errors.Is(err, service.ErrUnregisteredVehicle):
		return systemErrorResult, err
	}
	return ginx.Result{Data: res}, nil
}

func holderOf(sess session.Session) domain.Address {
	return domain.Address(sess.Claims().Get(addressClaim).StringOrDefault(""))
}
