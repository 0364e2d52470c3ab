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

// Package service wires the ACS client, operator store, audit publisher,
// metrics, and HTTP API into one process.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/cpeconfig/pkg/acs"
	"github.com/carverauto/cpeconfig/pkg/events"
	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/operator"
)

const (
	defaultListenAddr      = ":8080"
	defaultShutdownTimeout = 10 * time.Second
)

var errMissingACS = errors.New("acs section is required")

// Config is the process configuration.
type Config struct {
	ListenAddr      string            `json:"listen_addr"`
	APIKey          string            `json:"api_key" sensitive:"true"`
	CORS            models.CORSConfig `json:"cors"`
	Logging         *logger.Config    `json:"logging,omitempty"`
	ACS             *acs.Config       `json:"acs"`
	Operator        *operator.Config  `json:"operator,omitempty"`
	Events          *events.Config    `json:"events,omitempty"`
	ShutdownTimeout models.Duration   `json:"shutdown_timeout"`
}

// Validate implements config.Validator and fills defaults.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = models.Duration(defaultShutdownTimeout)
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	if c.ACS == nil {
		return errMissingACS
	}

	if err := c.ACS.Validate(); err != nil {
		return fmt.Errorf("acs: %w", err)
	}

	if err := c.Operator.Validate(); err != nil {
		return fmt.Errorf("operator: %w", err)
	}

	if err := c.Events.Validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}

	return nil
}
