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

package web_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ecocredit/internal/payment/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/errs"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/service"
	"github.com/ecodeclub/ecocredit/internal/payment/internal/web"
	paymentmocks "github.com/ecodeclub/ecocredit/internal/payment/mocks"
	"github.com/ecodeclub/ecocredit/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const alice = "0xa11ce"

func TestHandler_Balance(t *testing.T) {
	testCases := []struct {
		name     string
		address  string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantResp test.Result[web.Balance]
	}{
		{
			name:    "查询成功",
			address: alice,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().BalanceOf(gomock.Any(), alice).Return(uint64(120), nil)
				return svc
			},
			wantCode: 200,
			wantResp: test.Result[web.Balance]{
				Data: web.Balance{Address: alice, Balance: 120},
			},
		},
		{
			name: "会话中没有地址",
			mock: func(ctrl *gomock.Controller) service.Service {
				return paymentmocks.NewMockService(ctrl)
			},
			wantCode: 200,
			wantResp: test.Result[web.Balance]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
		{
			name:    "数据库错误",
			address: alice,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().BalanceOf(gomock.Any(), alice).Return(uint64(0), errors.New("mock db error"))
				return svc
			},
			wantCode: 500,
			wantResp: test.Result[web.Balance]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := web.NewHandler(tc.mock(ctrl))
			server := newServer(t, tc.address, hdl.PrivateRoutes)

			recorder := doPost[web.Balance](t, server, "/payment/balance", nil)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Transfers(t *testing.T) {
	testCases := []struct {
		name     string
		req      web.Page
		mock     func(ctrl *gomock.Controller) service.Service
		wantResp test.Result[web.TransferList]
	}{
		{
			name: "默认分页",
			req:  web.Page{},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().TransfersOf(gomock.Any(), alice, 0, 100).Return([]domain.Transfer{
					{SN: "TU1", To: alice, Amount: 100, Type: domain.TransferTypeTopUp, Ctime: 1},
					{SN: "TR2", From: alice, To: "0xe5c20w", Amount: 40, Type: domain.TransferTypeInternal, Ctime: 2},
				}, nil)
				return svc
			},
			wantResp: test.Result[web.TransferList]{
				Data: web.TransferList{List: []web.Transfer{
					{SN: "TU1", To: alice, Amount: 100, Type: 2, Ctime: 1},
					{SN: "TR2", From: alice, To: "0xe5c20w", Amount: 40, Type: 1, Ctime: 2},
				}},
			},
		},
		{
			name: "超过最大分页",
			req:  web.Page{Offset: 10, Limit: 1000},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().TransfersOf(gomock.Any(), alice, 10, 100).Return(nil, nil)
				return svc
			},
			wantResp: test.Result[web.TransferList]{},
		},
		{
			name: "偏移量为负数",
			req:  web.Page{Offset: -1},
			mock: func(ctrl *gomock.Controller) service.Service {
				return paymentmocks.NewMockService(ctrl)
			},
			wantResp: test.Result[web.TransferList]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := web.NewHandler(tc.mock(ctrl))
			server := newServer(t, alice, hdl.PrivateRoutes)

			recorder := doPost[web.TransferList](t, server, "/payment/transfers", tc.req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestAdminHandler_TopUp(t *testing.T) {
	testCases := []struct {
		name     string
		req      web.TopUpReq
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantResp test.Result[web.Transfer]
	}{
		{
			name: "充值成功",
			req:  web.TopUpReq{To: alice, Amount: 100},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().TransferIn(gomock.Any(), alice, uint64(100)).Return(domain.Transfer{
					SN: "TU1", To: alice, Amount: 100, Type: domain.TransferTypeTopUp, Ctime: 1,
				}, nil)
				return svc
			},
			wantCode: 200,
			wantResp: test.Result[web.Transfer]{
				Data: web.Transfer{SN: "TU1", To: alice, Amount: 100, Type: 2, Ctime: 1},
			},
		},
		{
			name: "地址为空",
			req:  web.TopUpReq{Amount: 100},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().TransferIn(gomock.Any(), "", uint64(100)).Return(domain.Transfer{}, service.ErrInvalidAddress)
				return svc
			},
			wantCode: 200,
			wantResp: test.Result[web.Transfer]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := web.NewAdminHandler(tc.mock(ctrl))
			server := newServer(t, "0xad", hdl.PrivateRoutes)

			recorder := doPost[web.Transfer](t, server, "/payment/topup", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func newServer(t *testing.T, address string, register func(server *gin.Engine)) *egin.Component {
	t.Helper()
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{"address": address},
		}))
	})
	register(server.Engine)
	return server
}

func doPost[T any](t *testing.T, server *egin.Component, path string, body any) *test.JSONResponseRecorder[T] {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	return recorder
}
