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

// Package http holds the middleware shared by HTTP endpoints.
package http

import (
	"context"
	"crypto/subtle"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/models"
)

const (
	// HeaderAPIKey carries the static API key.
	HeaderAPIKey = "X-API-Key"
	// HeaderRequestID carries the request id, echoed or generated.
	HeaderRequestID = "X-Request-ID"
)

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID returns the id RequestIDMiddleware stored in ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// CommonMiddleware applies CORS headers and logs each request.
func CommonMiddleware(next http.Handler, cors models.CORSConfig, log logger.Logger) http.Handler {
	log = logger.Nop(log)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if origin := r.Header.Get("Origin"); origin != "" && originAllowed(cors.AllowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if cors.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("request_id", RequestID(r.Context())).
			Dur("elapsed", time.Since(start)).
			Msg("HTTP request")
	})
}

func originAllowed(allowed []string, origin string) bool {
	return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}

// RequestIDMiddleware accepts a caller supplied X-Request-ID or generates
// one, stores it in the request context and echoes it in the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}

		w.Header().Set(HeaderRequestID, id)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// APIKeyOptions configures APIKeyMiddlewareWithOptions.
type APIKeyOptions struct {
	// APIKey is the expected key. Empty disables the check.
	APIKey string
	// ExcludePaths are served without a key.
	ExcludePaths []string
	// LogUnauthorized logs rejected requests.
	LogUnauthorized bool
	Logger          logger.Logger
}

// APIKeyMiddleware requires X-API-Key (or the api_key query parameter) to
// equal apiKey.
func APIKeyMiddleware(apiKey string) func(next http.Handler) http.Handler {
	return APIKeyMiddlewareWithOptions(APIKeyOptions{APIKey: apiKey})
}

// APIKeyMiddlewareWithOptions is APIKeyMiddleware with path exclusions and
// logging.
func APIKeyMiddlewareWithOptions(opts APIKeyOptions) func(next http.Handler) http.Handler {
	log := logger.Nop(opts.Logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if opts.APIKey == "" || slices.Contains(opts.ExcludePaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			requestKey := r.Header.Get(HeaderAPIKey)
			if requestKey == "" {
				requestKey = r.URL.Query().Get("api_key")
			}

			if subtle.ConstantTimeCompare([]byte(requestKey), []byte(opts.APIKey)) != 1 {
				if opts.LogUnauthorized {
					log.Warn().
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Str("remote_addr", r.RemoteAddr).
						Bool("key_present", requestKey != "").
						Msg("Unauthorized API access attempt")
				}

				http.Error(w, "Unauthorized", http.StatusUnauthorized)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
