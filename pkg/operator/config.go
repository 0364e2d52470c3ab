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

import (
	"strings"

	"github.com/carverauto/cpeconfig/pkg/models"
)

// Config locates the operator database and the query that returns one row
// of metadata columns for a device id bound to $1.
type Config struct {
	Host               string            `json:"host"`
	Port               int               `json:"port"`
	Database           string            `json:"database"`
	Username           string            `json:"username"`
	Password           string            `json:"password" sensitive:"true"`
	SSLMode            string            `json:"ssl_mode"`
	ApplicationName    string            `json:"application_name"`
	MaxConnections     int32             `json:"max_connections"`
	MinConnections     int32             `json:"min_connections"`
	MaxConnLifetime    models.Duration   `json:"max_conn_lifetime"`
	HealthCheckPeriod  models.Duration   `json:"health_check_period"`
	StatementTimeout   models.Duration   `json:"statement_timeout"`
	ExtraRuntimeParams map[string]string `json:"extra_runtime_params,omitempty"`
	CertDir            string            `json:"cert_dir,omitempty"`
	TLS                *TLSConfig        `json:"tls,omitempty"`
	Query              string            `json:"query"`
}

// TLSConfig holds client certificate paths, relative to CertDir when not
// absolute.
type TLSConfig struct {
	CertFile string `json:"cert_file"`
	KeyFile  string `json:"key_file"`
	CAFile   string `json:"ca_file"`
}

// Enabled reports whether a database is configured.
func (c *Config) Enabled() bool {
	return c != nil && c.Host != ""
}

// Validate implements config.Validator. An empty host disables the store.
func (c *Config) Validate() error {
	if !c.Enabled() {
		return nil
	}

	if c.Database == "" {
		return ErrMissingDatabase
	}

	if strings.TrimSpace(c.Query) == "" {
		return ErrMissingQuery
	}

	if !strings.Contains(c.Query, "$1") {
		return ErrQueryParameter
	}

	return nil
}
