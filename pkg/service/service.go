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

package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/carverauto/cpeconfig/pkg/acs"
	"github.com/carverauto/cpeconfig/pkg/api"
	"github.com/carverauto/cpeconfig/pkg/config"
	"github.com/carverauto/cpeconfig/pkg/events"
	"github.com/carverauto/cpeconfig/pkg/lifecycle"
	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/metrics"
	"github.com/carverauto/cpeconfig/pkg/operator"
)

// Service owns the long-lived clients of the process.
type Service struct {
	cfg     *Config
	logger  logger.Logger
	metrics *metrics.Registry
	client  *acs.Client
	server  *api.APIServer
	closers []func()
}

// New connects every configured backend. Optional backends (operator
// database, NATS) are skipped when their section is absent. On error,
// anything already opened is closed.
func New(ctx context.Context, cfg *Config, log logger.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		cfg:     cfg,
		logger:  logger.Nop(log),
		metrics: metrics.NewRegistry(),
	}

	s.logConfig()

	client, err := acs.NewClient(cfg.ACS,
		acs.WithObserver(s.metrics),
		acs.WithLogger(logger.Component(s.logger, "acs")),
	)
	if err != nil {
		return nil, fmt.Errorf("acs client: %w", err)
	}

	s.client = client

	var store api.MetadataStore = operator.NopStore{}

	if cfg.Operator.Enabled() {
		pool, err := operator.NewPool(ctx, cfg.Operator, logger.Component(s.logger, "operator"))
		if err != nil {
			return nil, fmt.Errorf("operator database: %w", err)
		}

		s.closers = append(s.closers, pool.Close)
		store = operator.NewPGStore(pool, cfg.Operator.Query, logger.Component(s.logger, "operator"))
	}

	var auditor api.Auditor = events.NopPublisher{}

	if cfg.Events.Enabled() {
		pub, closeFn, err := events.Connect(ctx, cfg.Events, logger.Component(s.logger, "events"))
		if err != nil {
			s.Close()

			return nil, fmt.Errorf("events: %w", err)
		}

		s.closers = append(s.closers, closeFn)
		auditor = pub
	}

	s.server = api.NewAPIServer(cfg.CORS,
		api.WithDeviceClient(client),
		api.WithMetadataStore(store),
		api.WithAuditor(auditor),
		api.WithMetrics(s.metrics),
		api.WithAPIKey(cfg.APIKey),
		api.WithBreakerState(func() string { return client.Breaker().State().String() }),
		api.WithLogger(logger.Component(s.logger, "api")),
	)

	return s, nil
}

func (s *Service) logConfig() {
	sanitized, err := config.Sanitize(s.cfg)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to sanitize configuration")
		return
	}

	s.logger.Info().RawJSON("config", sanitized).Msg("Loaded configuration")
}

// Handler returns the API handler.
func (s *Service) Handler() http.Handler {
	return s.server.Handler()
}

// Run serves the API until ctx is canceled. A non-nil ln replaces the
// configured listen address.
func (s *Service) Run(ctx context.Context, ln net.Listener) error {
	err := lifecycle.RunHTTPServer(ctx, &lifecycle.ServerOptions{
		ListenAddr:      s.cfg.ListenAddr,
		Listener:        ln,
		Handler:         s.server.Handler(),
		ShutdownTimeout: time.Duration(s.cfg.ShutdownTimeout),
		Logger:          s.logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Close releases backends in reverse order of opening.
func (s *Service) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}

	s.closers = nil
}
