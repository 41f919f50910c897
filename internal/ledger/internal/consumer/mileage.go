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
	"errors"
	"fmt"

	"github.com/ecodeclub/ecocredit/internal/ledger/internal/domain"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/event"
	"github.com/ecodeclub/ecocredit/internal/ledger/internal/service"
	"github.com/ecodeclub/ecocredit/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type MileageEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewMileageEventConsumer(svc service.Service, q mq.MQ) (*MileageEventConsumer, error) {
	const groupID = "ledger"
	consumer, err := q.Consumer(event.MileageEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &MileageEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *MileageEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if err != nil {
				c.logger.Error("消费里程事件失败", elog.FieldErr(err))
			}
		}
	}()
}

// Consume 业务错误只记录日志, 其余错误返回给调用方按错误级别记录
func (c *MileageEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	evt, err := mqx.Unmarshal[event.MileageEvent](msg)
	if err != nil {
		return err
	}
	res, err := c.svc.ReportMileage(ctx,
		domain.Address(evt.Reporter), domain.Address(evt.Holder), evt.Reading)
	if isRejected(err) {
		c.logger.Warn("里程事件被拒绝",
			elog.FieldErr(err),
			elog.Any("event", evt),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("处理里程事件失败, holder=%s, reading=%d: %w", evt.Holder, evt.Reading, err)
	}
	c.logger.Debug("处理里程事件",
		elog.String("holder", evt.Holder),
		elog.Any("units", res.Units),
	)
	return nil
}

// isRejected 事件本身不合法, 重新处理也不会成功
func isRejected(err error) bool {
	return errors.Is(err, service.ErrInvalidInput) ||
		errors.Is(err, service.ErrAccessDenied) ||
		errors.Is(err, service.ErrUnregisteredVehicle) ||
		errors.Is(err, service.ErrNonMonotonicReading)
}

func (c *MileageEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
