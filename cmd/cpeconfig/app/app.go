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

// Package app boots the cpeconfig service.
package app

import (
	"context"

	"github.com/carverauto/cpeconfig/pkg/config"
	"github.com/carverauto/cpeconfig/pkg/lifecycle"
	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/service"
	"github.com/carverauto/cpeconfig/pkg/version"
)

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

// Run loads configuration, starts the service and blocks until ctx is
// canceled.
func Run(ctx context.Context, opts Options) error {
	var cfg service.Config

	if err := config.NewConfig(nil).LoadAndValidate(ctx, opts.ConfigPath, &cfg); err != nil {
		return err
	}

	mainLogger, err := lifecycle.CreateComponentLogger("cpeconfig", cfg.Logging)
	if err != nil {
		return err
	}

	tp, err := logger.InitializeTracing(ctx, logger.TracingConfig{
		ServiceName:    "cpeconfig",
		ServiceVersion: version.GetVersion(),
		Logger:         mainLogger,
		OTel:           cfg.Logging.OTel,
	})
	if err != nil {
		return err
	}

	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			mainLogger.Error().Err(err).Msg("Error shutting down tracer provider")
		}
	}()

	svc, err := service.New(ctx, &cfg, mainLogger)
	if err != nil {
		return err
	}
	defer svc.Close()

	mainLogger.Info().Str("listen_addr", cfg.ListenAddr).Msg("Starting cpeconfig")

	return svc.Run(ctx, nil)
}
