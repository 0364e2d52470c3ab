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

package events

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/carverauto/cpeconfig/pkg/models"
)

const (
	defaultSubject = "events.cpeconfig.mutation"
	defaultTimeout = 5 * time.Second
)

// Config locates the NATS JetStream stream audit events go to. An empty
// URL disables publishing.
type Config struct {
	URL        string          `json:"url"`
	Stream     string          `json:"stream"`
	Subject    string          `json:"subject"`
	Domain     string          `json:"domain,omitempty"`
	CredsFile  string          `json:"creds_file,omitempty"`
	Timeout    models.Duration `json:"timeout"`
	TLS        *TLSConfig      `json:"tls,omitempty"`
	ServerName string          `json:"server_name,omitempty"`
}

// TLSConfig holds mTLS material for the NATS connection.
type TLSConfig struct {
	CertFile string `json:"cert_file"`
	KeyFile  string `json:"key_file"`
	CAFile   string `json:"ca_file"`
}

// Enabled reports whether a NATS server is configured.
func (c *Config) Enabled() bool {
	return c != nil && c.URL != ""
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if !c.Enabled() {
		return nil
	}

	if c.Stream == "" {
		return ErrMissingStream
	}

	if c.Subject == "" {
		c.Subject = defaultSubject
	}

	if c.Timeout <= 0 {
		c.Timeout = models.Duration(defaultTimeout)
	}

	if c.TLS != nil && (c.TLS.CertFile == "" || c.TLS.KeyFile == "" || c.TLS.CAFile == "") {
		return ErrTLSFiles
	}

	return nil
}

func (c *Config) tlsConfig() (*tls.Config, error) {
	if c.TLS == nil {
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(c.TLS.CertFile, c.TLS.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load client certificate: %w", err)
	}

	caCert, err := os.ReadFile(c.TLS.CAFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caCert) {
		return nil, ErrCAParsingFailed
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caPool,
		ServerName:   c.ServerName,
		MinVersion:   tls.VersionTLS13,
	}, nil
}
