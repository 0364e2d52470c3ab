/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics holds the Prometheus instruments of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cpeconfig"

// Registry holds all metrics for the application.
type Registry struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	ACSCallsTotal   *prometheus.CounterVec
	ACSCallDuration *prometheus.HistogramVec
	ACSCircuitOpen  prometheus.Gauge
	ParameterWrites *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec
	OperatorLookups *prometheus.CounterVec
	InferredBridges prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a registry with Go and process collectors attached.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r.initHTTPMetrics()
	r.initACSMetrics()

	return r
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	r.HTTPRequestsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
}

func (r *Registry) initACSMetrics() {
	r.ACSCallsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acs_calls_total",
			Help:      "Total number of ACS calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	r.ACSCallDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "acs_call_duration_seconds",
			Help:      "ACS call latency in seconds, retries included",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	r.ACSCircuitOpen = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "acs_circuit_open",
			Help:      "Whether the ACS circuit breaker rejected the last call (1=yes, 0=no)",
		},
	)

	r.ParameterWrites = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parameter_writes_total",
			Help:      "Parameter writes submitted to the ACS",
		},
		[]string{"kind"},
	)

	r.EventsPublished = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_total",
			Help:      "Audit events by outcome",
		},
		[]string{"outcome"},
	)

	r.OperatorLookups = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operator_lookups_total",
			Help:      "Operator metadata lookups by outcome",
		},
		[]string{"outcome"},
	)

	r.InferredBridges = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summary_inferred_bridges_total",
			Help:      "Bridge WAN connections synthesized for devices reporting none",
		},
	)
}

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveACSCall implements acs.Observer.
func (r *Registry) ObserveACSCall(operation, outcome string, elapsed time.Duration) {
	r.ACSCallsTotal.WithLabelValues(operation, outcome).Inc()
	r.ACSCallDuration.WithLabelValues(operation).Observe(elapsed.Seconds())

	if outcome == "circuit_open" {
		r.ACSCircuitOpen.Set(1)
	} else {
		r.ACSCircuitOpen.Set(0)
	}
}

// RecordWrites counts the writes of one submitted batch.
func (r *Registry) RecordWrites(kind string, n int) {
	r.ParameterWrites.WithLabelValues(kind).Add(float64(n))
}

// RecordEvent counts one audit event publish attempt.
func (r *Registry) RecordEvent(outcome string) {
	r.EventsPublished.WithLabelValues(outcome).Inc()
}

// RecordOperatorLookup counts one metadata lookup.
func (r *Registry) RecordOperatorLookup(outcome string) {
	r.OperatorLookups.WithLabelValues(outcome).Inc()
}

// RecordInferredBridges counts synthesized bridge connections.
func (r *Registry) RecordInferredBridges(n int) {
	r.InferredBridges.Add(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
