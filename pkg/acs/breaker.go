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
	"sync"
	"time"

	"github.com/carverauto/cpeconfig/pkg/logger"
)

// BreakerState is the current state of a CircuitBreaker.
type BreakerState int

const (
	// StateClosed lets requests through.
	StateClosed BreakerState = iota
	// StateOpen rejects requests until Timeout elapses.
	StateOpen
	// StateHalfOpen lets requests through to probe recovery.
	StateHalfOpen
)

// String returns a string representation of the breaker state.
func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker stops calling the ACS after repeated failures. Only
// transport errors and 5xx responses count as failures; a missing device
// is a valid answer.
type CircuitBreaker struct {
	config        BreakerConfig
	state         BreakerState
	failureCount  int
	successCount  int
	lastFailTime  time.Time
	lastResetTime time.Time
	now           func() time.Time
	mu            sync.Mutex
	logger        logger.Logger
	name          string
}

// NewCircuitBreaker creates a closed breaker.
func NewCircuitBreaker(name string, config BreakerConfig, log logger.Logger) *CircuitBreaker {
	return newCircuitBreaker(name, config, log, time.Now)
}

func newCircuitBreaker(name string, config BreakerConfig, log logger.Logger, now func() time.Time) *CircuitBreaker {
	return &CircuitBreaker{
		config:        config.withDefaults(),
		state:         StateClosed,
		lastResetTime: now(),
		now:           now,
		logger:        logger.Nop(log),
		name:          name,
	}
}

// Execute runs fn unless the circuit is open. The error fn returns is
// recorded and passed back unchanged.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if !cb.allowRequest() {
		return fmt.Errorf("%w: %s", ErrCircuitOpen, cb.name)
	}

	err := fn()
	cb.recordResult(err)

	return err
}

func (cb *CircuitBreaker) allowRequest() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()

	switch cb.state {
	case StateClosed:
		if now.Sub(cb.lastResetTime) >= cb.config.ResetTimeout.Std() {
			cb.failureCount = 0
			cb.lastResetTime = now
		}

		return true
	case StateOpen:
		if now.Sub(cb.lastFailTime) < cb.config.Timeout.Std() {
			return false
		}

		cb.state = StateHalfOpen
		cb.successCount = 0
		cb.logger.Info().
			Str("circuit_breaker", cb.name).
			Msg("Circuit breaker transitioning to half-open")

		return true
	case StateHalfOpen:
		return true
	default:
		return false
	}
}

func (cb *CircuitBreaker) recordResult(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.onFailure()
		return
	}

	cb.onSuccess()
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailTime = cb.now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.state = StateOpen
			cb.logger.Warn().
				Str("circuit_breaker", cb.name).
				Int("failure_count", cb.failureCount).
				Msg("Circuit breaker opened due to failures")
		}
	case StateHalfOpen:
		cb.state = StateOpen
		cb.logger.Warn().
			Str("circuit_breaker", cb.name).
			Msg("Circuit breaker reopened after failed attempt in half-open state")
	case StateOpen:
	}
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.failureCount = 0
			cb.lastResetTime = cb.now()
			cb.logger.Info().
				Str("circuit_breaker", cb.name).
				Msg("Circuit breaker closed after successful recovery")
		}
	case StateClosed:
		cb.failureCount = 0
		cb.lastResetTime = cb.now()
	case StateOpen:
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}
