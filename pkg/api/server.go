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

// Package api provides the HTTP API server for cpeconfig
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/carverauto/cpeconfig/pkg/events"
	"github.com/carverauto/cpeconfig/pkg/extractor"
	srHttp "github.com/carverauto/cpeconfig/pkg/http"
	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/metrics"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/mutation"
	"github.com/carverauto/cpeconfig/pkg/operator"
)

// APIServer serves the device endpoints.
type APIServer struct {
	router       *mux.Router
	devices      DeviceClient
	store        MetadataStore
	auditor      Auditor
	metrics      *metrics.Registry
	builder      *mutation.Builder
	extractor    *extractor.Extractor
	breakerState func() string
	corsConfig   models.CORSConfig
	apiKey       string
	logger       logger.Logger
	now          func() time.Time
}

// NewAPIServer creates a new API server instance with the given configuration
func NewAPIServer(config models.CORSConfig, options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		router:     mux.NewRouter(),
		store:      operator.NopStore{},
		auditor:    events.NopPublisher{},
		corsConfig: config,
		now:        time.Now,
	}

	for _, o := range options {
		o(s)
	}

	s.logger = logger.Nop(s.logger)
	s.builder = mutation.NewBuilder(s.logger)
	s.extractor = extractor.New(extractor.WithLogger(s.logger), extractor.WithClock(s.now))

	s.setupRoutes()

	return s
}

// WithDeviceClient sets the ACS client.
func WithDeviceClient(c DeviceClient) func(server *APIServer) {
	return func(server *APIServer) {
		server.devices = c
	}
}

// WithMetadataStore sets the operator metadata store.
func WithMetadataStore(m MetadataStore) func(server *APIServer) {
	return func(server *APIServer) {
		if m != nil {
			server.store = m
		}
	}
}

// WithAuditor sets the mutation auditor.
func WithAuditor(a Auditor) func(server *APIServer) {
	return func(server *APIServer) {
		if a != nil {
			server.auditor = a
		}
	}
}

// WithMetrics enables request instrumentation and the /metrics endpoint.
func WithMetrics(r *metrics.Registry) func(server *APIServer) {
	return func(server *APIServer) {
		server.metrics = r
	}
}

// WithAPIKey requires key on every /api route. An empty key disables the check.
func WithAPIKey(key string) func(server *APIServer) {
	return func(server *APIServer) {
		server.apiKey = key
	}
}

// WithBreakerState reports the ACS circuit breaker state on /healthz.
func WithBreakerState(fn func() string) func(server *APIServer) {
	return func(server *APIServer) {
		server.breakerState = fn
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) func(server *APIServer) {
	return func(server *APIServer) {
		server.logger = log
	}
}

// WithClock overrides the time source used to judge device liveness.
func WithClock(now func() time.Time) func(server *APIServer) {
	return func(server *APIServer) {
		server.now = now
	}
}

// Handler returns the root handler.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

// setupRoutes configures the HTTP routes for the API server.
func (s *APIServer) setupRoutes() {
	s.setupMiddleware()

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	s.setupProtectedRoutes()

	// Preflight requests are answered by CommonMiddleware.
	s.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})
}

// setupMiddleware installs request ids, CORS and instrumentation.
func (s *APIServer) setupMiddleware() {
	s.router.Use(srHttp.RequestIDMiddleware)
	s.router.Use(srHttp.TracingMiddleware(routeTemplate))
	s.router.Use(func(next http.Handler) http.Handler {
		return srHttp.CommonMiddleware(next, s.corsConfig, s.logger)
	})

	if s.metrics != nil {
		s.router.Use(s.instrument)
	}
}

func (s *APIServer) setupProtectedRoutes() {
	protected := s.router.PathPrefix("/api").Subrouter()

	protected.Use(srHttp.APIKeyMiddlewareWithOptions(srHttp.APIKeyOptions{
		APIKey:          s.apiKey,
		LogUnauthorized: true,
		Logger:          s.logger,
	}))

	protected.HandleFunc("/devices/{id}/summary", s.getDeviceSummary).Methods(http.MethodGet)
	protected.HandleFunc("/devices/{id}/wifi", s.setWifi).Methods(http.MethodPost)
	protected.HandleFunc("/devices/{id}/reboot", s.rebootDevice).Methods(http.MethodPost)
	protected.HandleFunc("/devices/{id}/parameters", s.getParameters).Methods(http.MethodGet)
	protected.HandleFunc("/devices/{id}/parameters", s.setParameters).Methods(http.MethodPost)
	protected.HandleFunc("/devices/{id}/refresh", s.refreshParameters).Methods(http.MethodPost)
}

func (s *APIServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := models.HealthResponse{Status: "ok"}

	if s.breakerState != nil {
		resp.ACSBreaker = s.breakerState()
	}

	s.encodeJSONResponse(w, http.StatusOK, resp)
}

// statusRecorder captures the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request counts and latency by route template.
func (s *APIServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routeTemplate(r)

		s.metrics.HTTPRequestsInFlight.Inc()
		defer s.metrics.HTTPRequestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		s.metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(rec.status), time.Since(start))
	})
}

// routeTemplate names a request by its mux path template.
func routeTemplate(r *http.Request) string {
	if cur := mux.CurrentRoute(r); cur != nil {
		if tpl, err := cur.GetPathTemplate(); err == nil {
			return tpl
		}
	}

	return "unmatched"
}

// encodeJSONResponse writes v with the given status.
func (s *APIServer) encodeJSONResponse(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeSuccess wraps data in the success envelope.
func (s *APIServer) writeSuccess(w http.ResponseWriter, data interface{}) {
	s.encodeJSONResponse(w, http.StatusOK, models.APIResponse{Success: true, Data: data})
}
