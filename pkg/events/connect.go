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
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/cpeconfig/pkg/logger"
)

// Connect dials NATS, makes sure the stream captures cfg.Subject and
// returns a publisher plus a function that drains the connection.
func Connect(ctx context.Context, cfg *Config, log logger.Logger) (*Publisher, func(), error) {
	log = logger.Nop(log)

	opts, err := connectOptions(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	var js jetstream.JetStream

	if cfg.Domain != "" {
		js, err = jetstream.NewWithDomain(nc, cfg.Domain)
	} else {
		js, err = jetstream.New(nc)
	}

	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if err := ensureStream(ctx, js, cfg.Stream, cfg.Subject); err != nil {
		nc.Close()
		return nil, nil, err
	}

	log.Info().
		Str("url", nc.ConnectedUrl()).
		Str("stream", cfg.Stream).
		Str("subject", cfg.Subject).
		Msg("Connected to NATS for audit events")

	closer := func() {
		if err := nc.Drain(); err != nil {
			log.Warn().Err(err).Msg("Failed to drain NATS connection")
		}
	}

	return NewPublisher(js, cfg.Subject, cfg.Timeout.Std(), log), closer, nil
}

func connectOptions(cfg *Config, log logger.Logger) ([]nats.Option, error) {
	opts := []nats.Option{
		nats.Name("cpeconfig"),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	if cfg.CredsFile != "" {
		opts = append(opts, nats.UserCredentials(cfg.CredsFile))
	}

	tlsConf, err := cfg.tlsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build NATS TLS config: %w", err)
	}

	if tlsConf != nil {
		opts = append(opts, nats.Secure(tlsConf))
	}

	return opts, nil
}

// StreamManager is the subset of jetstream.JetStream used to provision the
// audit stream.
type StreamManager interface {
	Stream(ctx context.Context, stream string) (jetstream.Stream, error)
	CreateOrUpdateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
}

func ensureStream(ctx context.Context, js StreamManager, name, subject string) error {
	stream, err := js.Stream(ctx, name)
	if err != nil && !isStreamMissingErr(err) {
		return fmt.Errorf("failed to get stream %s: %w", name, err)
	}

	streamConfig := jetstream.StreamConfig{Name: name}

	if err == nil {
		streamConfig = stream.CachedInfo().Config
		if containsSubject(streamConfig.Subjects, subject) {
			return nil
		}
	}

	streamConfig.Subjects = ensureSubjectList(streamConfig.Subjects, subject)

	if _, err := js.CreateOrUpdateStream(ctx, streamConfig); err != nil {
		return fmt.Errorf("failed to create or update stream %s: %w", name, err)
	}

	return nil
}

func isStreamMissingErr(err error) bool {
	return errors.Is(err, jetstream.ErrStreamNotFound) ||
		errors.Is(err, jetstream.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrStreamNotFound) ||
		errors.Is(err, nats.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrNoResponders)
}

func ensureSubjectList(subjects []string, subject string) []string {
	if containsSubject(subjects, subject) {
		return subjects
	}

	return append(subjects, subject)
}

func containsSubject(subjects []string, subject string) bool {
	for _, s := range subjects {
		if matchesSubject(s, subject) {
			return true
		}
	}

	return false
}

// matchesSubject applies NATS wildcard rules: "*" matches one token, ">"
// matches the rest.
func matchesSubject(pattern, subject string) bool {
	pt := strings.Split(pattern, ".")
	st := strings.Split(subject, ".")

	for i, tok := range pt {
		if tok == ">" {
			return i < len(st)
		}

		if i >= len(st) {
			return false
		}

		if tok != "*" && tok != st[i] {
			return false
		}
	}

	return len(pt) == len(st)
}
