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

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carverauto/cpeconfig/pkg/acs"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/mutation"
)

var (
	errValidation   = errors.New("validation failed")
	errInvalidBody  = errors.New("invalid request body")
	errMissingPaths = errors.New("at least one path query parameter is required")
	errNoDeviceAPI  = errors.New("no ACS client configured")
)

const maxBodyBytes = 1 << 20

// statusFor maps an error from a handler dependency to an HTTP status.
// Unclassified ACS failures are reported as a bad gateway.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errValidation),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errMissingPaths),
		errors.Is(err, acs.ErrEmptyDeviceID),
		errors.Is(err, acs.ErrNoWrites),
		errors.Is(err, mutation.ErrNoParameters),
		errors.Is(err, mutation.ErrEmptyPath),
		errors.Is(err, mutation.ErrObjectPath),
		errors.Is(err, mutation.ErrUnknownType):
		return http.StatusBadRequest
	case errors.Is(err, acs.ErrDeviceNotFound):
		return http.StatusNotFound
	case errors.Is(err, acs.ErrCircuitOpen), errors.Is(err, errNoDeviceAPI):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
