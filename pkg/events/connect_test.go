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
	"context"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestFixture = errors.New("permission denied")

type fakeStream struct {
	jetstream.Stream
	info *jetstream.StreamInfo
}

func (s *fakeStream) CachedInfo() *jetstream.StreamInfo {
	return s.info
}

type fakeStreamManager struct {
	stream  jetstream.Stream
	err     error
	updated *jetstream.StreamConfig
}

func (m *fakeStreamManager) Stream(context.Context, string) (jetstream.Stream, error) {
	if m.err != nil {
		return nil, m.err
	}

	return m.stream, nil
}

func (m *fakeStreamManager) CreateOrUpdateStream(_ context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error) {
	m.updated = &cfg

	return &fakeStream{info: &jetstream.StreamInfo{Config: cfg}}, nil
}

func TestEnsureStream(t *testing.T) {
	t.Run("creates missing stream", func(t *testing.T) {
		m := &fakeStreamManager{err: jetstream.ErrStreamNotFound}

		require.NoError(t, ensureStream(context.Background(), m, "AUDIT", defaultSubject))
		require.NotNil(t, m.updated)
		assert.Equal(t, "AUDIT", m.updated.Name)
		assert.Equal(t, []string{defaultSubject}, m.updated.Subjects)
	})

	t.Run("leaves covering stream alone", func(t *testing.T) {
		m := &fakeStreamManager{stream: &fakeStream{info: &jetstream.StreamInfo{
			Config: jetstream.StreamConfig{Name: "AUDIT", Subjects: []string{"events.>"}},
		}}}

		require.NoError(t, ensureStream(context.Background(), m, "AUDIT", defaultSubject))
		assert.Nil(t, m.updated)
	})

	t.Run("adds subject to existing stream", func(t *testing.T) {
		m := &fakeStreamManager{stream: &fakeStream{info: &jetstream.StreamInfo{
			Config: jetstream.StreamConfig{Name: "AUDIT", Subjects: []string{"logs.syslog.*"}, MaxMsgs: 100},
		}}}

		require.NoError(t, ensureStream(context.Background(), m, "AUDIT", defaultSubject))
		require.NotNil(t, m.updated)
		assert.Equal(t, []string{"logs.syslog.*", defaultSubject}, m.updated.Subjects)
		assert.Equal(t, int64(100), m.updated.MaxMsgs)
	})

	t.Run("propagates other errors", func(t *testing.T) {
		m := &fakeStreamManager{err: errTestFixture}

		require.ErrorIs(t, ensureStream(context.Background(), m, "AUDIT", defaultSubject), errTestFixture)
		assert.Nil(t, m.updated)
	})
}

func TestEnsureSubjectList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		subjects []string
		want     []string
	}{
		{"adds subject when list empty", nil, []string{defaultSubject}},
		{"keeps list when wildcard matches", []string{"events.cpeconfig.*"}, []string{"events.cpeconfig.*"}},
		{"keeps list when greater wildcard matches", []string{"events.>"}, []string{"events.>"}},
		{"appends when unmatched", []string{"logs.syslog.*"}, []string{"logs.syslog.*", defaultSubject}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ensureSubjectList(append([]string(nil), tc.subjects...), defaultSubject))
		})
	}
}

func TestMatchesSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		subject  string
		expected bool
	}{
		{"exact match", "events.cpeconfig.mutation", "events.cpeconfig.mutation", true},
		{"single wildcard", "events.*.mutation", "events.cpeconfig.mutation", true},
		{"greater wildcard", "events.>", "events.cpeconfig.mutation", true},
		{"greater wildcard needs a token", "events.>", "events", false},
		{"no match length", "events.*", "events.cpeconfig.mutation", false},
		{"pattern longer than subject", "events.cpeconfig.mutation.x", "events.cpeconfig.mutation", false},
		{"no match tokens", "logs.syslog.*", "events.cpeconfig.mutation", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, matchesSubject(tc.pattern, tc.subject))
		})
	}
}

func TestIsStreamMissingErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"jetstream no stream response", jetstream.ErrNoStreamResponse, true},
		{"jetstream stream not found", jetstream.ErrStreamNotFound, true},
		{"nats no stream response", nats.ErrNoStreamResponse, true},
		{"nats stream not found", nats.ErrStreamNotFound, true},
		{"nats no responders", nats.ErrNoResponders, true},
		{"other error", errTestFixture, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, isStreamMissingErr(tc.err))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	var nilCfg *Config
	require.NoError(t, nilCfg.Validate())

	cfg := &Config{URL: "nats://localhost:4222"}
	require.ErrorIs(t, cfg.Validate(), ErrMissingStream)

	cfg.Stream = "AUDIT"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultSubject, cfg.Subject)
	assert.Equal(t, defaultTimeout, cfg.Timeout.Std())

	cfg.TLS = &TLSConfig{CertFile: "c.pem"}
	require.ErrorIs(t, cfg.Validate(), ErrTLSFiles)
}

func TestConnectOptions_TLSFailure(t *testing.T) {
	cfg := &Config{URL: "nats://localhost:4222", TLS: &TLSConfig{CertFile: "missing.pem", KeyFile: "missing-key.pem", CAFile: "ca.pem"}}

	_, err := connectOptions(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build NATS TLS config")
}
