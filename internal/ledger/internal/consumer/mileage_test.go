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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/event"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	ledgermocks "github.com/ecodeclub/ecocredit/internal/ledger/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMileageEventConsumer_Consume(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		value   func(t *testing.T) []byte
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr bool
	}{
		{
			name: "上报成功",
			value: func(t *testing.T) []byte {
				data, err := json.Marshal(event.MileageEvent{Reporter: "oracle", Holder: "alice", Reading: 450})
				require.NoError(t, err)
				return data
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ledgermocks.NewMockService(ctrl)
				svc.EXPECT().ReportMileage(gomock.Any(), domain.Address("oracle"), domain.Address("alice"), uint64(450)).
					Return(domain.MintResult{Holder: "alice", Units: 4}, nil)
				return svc
			},
		},
		{
			name: "业务错误不影响后续消费",
			value: func(t *testing.T) []byte {
				data, err := json.Marshal(event.MileageEvent{Reporter: "unknown", Holder: "alice", Reading: 450})
				require.NoError(t, err)
				return data
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ledgermocks.NewMockService(ctrl)
				svc.EXPECT().ReportMileage(gomock.Any(), domain.Address("unknown"), domain.Address("alice"), uint64(450)).
					Return(domain.MintResult{}, service.ErrAccessDenied)
				return svc
			},
		},
		{
			name: "读数回退",
			value: func(t *testing.T) []byte {
				data, err := json.Marshal(event.MileageEvent{Reporter: "oracle", Holder: "alice", Reading: 300})
				require.NoError(t, err)
				return data
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ledgermocks.NewMockService(ctrl)
				svc.EXPECT().ReportMileage(gomock.Any(), domain.Address("oracle"), domain.Address("alice"), uint64(300)).
					Return(domain.MintResult{}, fmt.Errorf("%w: vin=1HGCM82633A004352", service.ErrNonMonotonicReading))
				return svc
			},
		},
		{
			name: "数据库错误",
			value: func(t *testing.T) []byte {
				data, err := json.Marshal(event.MileageEvent{Reporter: "oracle", Holder: "alice", Reading: 450})
				require.NoError(t, err)
				return data
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ledgermocks.NewMockService(ctrl)
				svc.EXPECT().ReportMileage(gomock.Any(), domain.Address("oracle"), domain.Address("alice"), uint64(450)).
					Return(domain.MintResult{}, errors.New("mock db error"))
				return svc
			},
			wantErr: true,
		},
		{
			name: "消息格式错误",
			value: func(t *testing.T) []byte {
				return []byte("not json")
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				return ledgermocks.NewMockService(ctrl)
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), event.MileageEventName, 1))
			c, err := NewMileageEventConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			producer, err := q.Producer(event.MileageEventName)
			require.NoError(t, err)
			_, err = producer.Produce(context.Background(), &mq.Message{Value: tc.value(t)})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			err = c.Consume(ctx)
			assert.Equal(t, tc.wantErr, err != nil)
			require.NoError(t, c.Stop(ctx))
		})
	}
}
