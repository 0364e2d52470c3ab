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

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/carverauto/cpeconfig/pkg/logger"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// ServerOptions configures RunHTTPServer.
type ServerOptions struct {
	ListenAddr      string
	Handler         http.Handler
	ShutdownTimeout time.Duration
	Logger          logger.Logger

	// Listener overrides ListenAddr when set.
	Listener net.Listener
}

// RunHTTPServer serves until ctx is cancelled, then drains in-flight
// requests for at most ShutdownTimeout.
func RunHTTPServer(ctx context.Context, opts *ServerOptions) error {
	log := logger.Nop(opts.Logger)

	srv := &http.Server{
		Addr:         opts.ListenAddr,
		Handler:      opts.Handler,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		var err error

		if opts.Listener != nil {
			log.Info().Str("addr", opts.Listener.Addr().String()).Msg("HTTP server listening")
			err = srv.Serve(opts.Listener)
		} else {
			log.Info().Str("addr", opts.ListenAddr).Msg("HTTP server listening")
			err = srv.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info().Msg("Shutting down HTTP server")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}
