// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the gateway.
//
// A nil *Metrics is valid and records nothing, so components can be built
// without metrics in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "user_gateway"

// Metrics groups every collector exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	upstreamAttempts *prometheus.CounterVec   // by outcome (response, connection_failure, timeout, unknown)
	upstreamCalls    *prometheus.CounterVec   // by result (success or error kind)
	upstreamDuration *prometheus.HistogramVec // single attempt latency by outcome

	httpRequests *prometheus.CounterVec   // by method, route and status
	httpDuration *prometheus.HistogramVec // by method and route
}

// NewMetrics creates the collectors and registers them, together with the
// Go runtime and process collectors, on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		upstreamAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "attempts_total",
			Help:      "Total number of GET attempts sent to the upstream microservice",
		}, []string{"outcome"}),

		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "calls_total",
			Help:      "Total number of upstream calls by final result",
		}, []string{"result"}),

		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "attempt_duration_seconds",
			Help:      "Duration of a single upstream attempt in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Inbound HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.upstreamAttempts,
		m.upstreamCalls,
		m.upstreamDuration,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveUpstreamAttempt records one upstream attempt and its duration.
func (m *Metrics) ObserveUpstreamAttempt(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamAttempts.WithLabelValues(outcome).Inc()
	m.upstreamDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// IncUpstreamCall records the final result of an upstream call.
func (m *Metrics) IncUpstreamCall(result string) {
	if m == nil {
		return
	}
	m.upstreamCalls.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest records one inbound request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler returns the exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
