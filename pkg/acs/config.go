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

package acs

import (
	"fmt"
	"net/url"
	"time"

	"github.com/carverauto/cpeconfig/pkg/models"
)

const (
	defaultTimeout         = 15 * time.Second
	defaultTaskTimeout     = 3 * time.Second
	defaultRetryMaxElapsed = 10 * time.Second
)

// Config describes how to reach the ACS northbound interface.
type Config struct {
	URL             string          `json:"url"`
	Username        string          `json:"username,omitempty"`
	Password        string          `json:"password,omitempty" sensitive:"true"`
	Timeout         models.Duration `json:"timeout"`
	TaskTimeout     models.Duration `json:"task_timeout"`
	RetryMaxElapsed models.Duration `json:"retry_max_elapsed"`
	Breaker         BreakerConfig   `json:"circuit_breaker"`
}

// BreakerConfig holds configuration for the circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the number of failures before opening the circuit.
	FailureThreshold int `json:"failure_threshold"`
	// SuccessThreshold is the number of half-open successes needed to close it.
	SuccessThreshold int `json:"success_threshold"`
	// Timeout is how long the circuit stays open before probing.
	Timeout models.Duration `json:"timeout"`
	// ResetTimeout clears the failure count of a closed circuit.
	ResetTimeout models.Duration `json:"reset_timeout"`
}

// DefaultBreakerConfig returns the breaker settings used when none are set.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          models.Duration(30 * time.Second),
		ResetTimeout:     models.Duration(60 * time.Second),
	}
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	d := DefaultBreakerConfig()

	if c.FailureThreshold <= 0 {
		c.FailureThreshold = d.FailureThreshold
	}

	if c.SuccessThreshold <= 0 {
		c.SuccessThreshold = d.SuccessThreshold
	}

	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}

	if c.ResetTimeout <= 0 {
		c.ResetTimeout = d.ResetTimeout
	}

	return c
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrMissingURL
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidURL, c.URL)
	}

	if c.Timeout <= 0 {
		c.Timeout = models.Duration(defaultTimeout)
	}

	if c.TaskTimeout <= 0 {
		c.TaskTimeout = models.Duration(defaultTaskTimeout)
	}

	if c.RetryMaxElapsed <= 0 {
		c.RetryMaxElapsed = models.Duration(defaultRetryMaxElapsed)
	}

	c.Breaker = c.Breaker.withDefaults()

	return nil
}
