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

package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// SessionKey 测试中把会话直接放到 gin.Context 里面
const SessionKey = "_session"

var ErrNoSession = errors.New("上下文中没有会话")

// 初始化一下 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(SessionKey)
	if !ok {
		return nil, ErrNoSession
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}
