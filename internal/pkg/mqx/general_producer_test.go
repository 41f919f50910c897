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

package mqx

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Holder string `json:"holder"`
	Amount uint64 `json:"amount"`
}

func TestGeneralProducer(t *testing.T) {
	const topic = "test_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	consumer, err := q.Consumer(topic, "test")
	require.NoError(t, err)

	p, err := NewGeneralProducer[testEvent](q, topic)
	require.NoError(t, err)
	assert.Equal(t, topic, p.Topic())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	want := testEvent{Holder: "0xa11ce", Amount: 3}
	require.NoError(t, p.Produce(ctx, want))
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	got, err := Unmarshal[testEvent](msg)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Unmarshal[testEvent](&mq.Message{Value: []byte("not json")})
	assert.Error(t, err)
}
