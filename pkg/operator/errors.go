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

package operator

import "errors"

var (
	ErrNotFound        = errors.New("no operator metadata for device")
	ErrMissingQuery    = errors.New("operator metadata query is required")
	ErrQueryParameter  = errors.New("operator metadata query must reference $1")
	ErrMissingDatabase = errors.New("operator database name is required")
	errTLSFiles        = errors.New("operator tls: cert_file, key_file, and ca_file are required")
	errTLSAppendCA     = errors.New("operator tls: unable to append CA certificate")
)
