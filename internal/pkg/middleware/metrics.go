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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder 同一个 server 只能创建一次, 重复注册指标会 panic
func NewMetricsBuilder(server string) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	constLabels := prometheus.Labels{"server": server}
	return &MetricsBuilder{
		summaryVec: promauto.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:   "ecocredit",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP 请求耗时",
			ConstLabels: constLabels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		counterVec: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "ecocredit",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "HTTP 请求数",
			ConstLabels: constLabels,
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 没有匹配到路由, 避免路径过多
			path = "unknown"
		}
		code := strconv.Itoa(ctx.Writer.Status())
		b.summaryVec.WithLabelValues(ctx.Request.Method, path, code).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(ctx.Request.Method, path, code).Inc()
	}
}
