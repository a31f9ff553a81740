// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records every timed run in a private prometheus registry.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	elements *prometheus.CounterVec
}

// NewMetrics returns Metrics with its collectors registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortbench",
			Name:      "run_duration_seconds",
			Help:      "Time taken by one timed run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 10),
		}, []string{"series"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortbench",
			Name:      "elements_total",
			Help:      "Number of input elements processed by timed runs.",
		}, []string{"series"}),
	}
	m.registry.MustRegister(m.duration, m.elements)
	return m
}

// Observe records a run over size elements of the named series.
func (m *Metrics) Observe(series string, size int, elapsed time.Duration) {
	m.duration.WithLabelValues(series).Observe(elapsed.Seconds())
	m.elements.WithLabelValues(series).Add(float64(size))
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the registry to path in the text exposition format
// read by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
