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

// Package events publishes audit records of device mutations as
// CloudEvents on NATS JetStream.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/models"
)

const (
	eventSource = "cpeconfig/api"
	eventType   = "com.carverauto.cpeconfig.device.mutation"
)

// CloudEvent represents a CloudEvents v1.0 compliant event.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject,omitempty"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}

// Mutation is the audit record of one task submission. Credentials never
// appear in it.
type Mutation struct {
	DeviceID   string                  `json:"device_id"`
	RequestID  string                  `json:"request_id,omitempty"`
	Task       string                  `json:"task"`
	Status     models.TaskStatus       `json:"status,omitempty"`
	TaskID     string                  `json:"task_id,omitempty"`
	HTTPStatus int                     `json:"http_status,omitempty"`
	Writes     []models.ParameterWrite `json:"writes,omitempty"`
	Request    map[string]interface{}  `json:"request,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// NewMutation builds a redacted audit record. request may be nil or any
// struct; sensitive fields are masked. err is the submission error, if any.
func NewMutation(requestID string, request interface{}, writes []models.ParameterWrite, res models.TaskResult, err error) Mutation {
	m := Mutation{
		DeviceID:   res.DeviceID,
		RequestID:  requestID,
		Task:       res.Task,
		Status:     res.Status,
		TaskID:     res.TaskID,
		HTTPStatus: res.HTTPStatus,
		Writes:     RedactWrites(writes),
	}

	if request != nil {
		if filtered, ferr := models.FilterSensitiveFields(request); ferr == nil {
			m.Request = filtered
		}
	}

	if err != nil {
		m.Error = err.Error()
	}

	return m
}

// RedactWrites returns a copy of writes with credential values masked.
func RedactWrites(writes []models.ParameterWrite) []models.ParameterWrite {
	if len(writes) == 0 {
		return nil
	}

	out := make([]models.ParameterWrite, len(writes))
	copy(out, writes)

	for i := range out {
		if catalog.IsSecret(out[i].Path) && out[i].Value != "" {
			out[i].Value = models.Redacted
		}
	}

	return out
}

// JetStream is the subset of jetstream.JetStream the publisher uses.
type JetStream interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// Publisher writes mutations to a JetStream subject.
type Publisher struct {
	js      JetStream
	subject string
	timeout time.Duration
	now     func() time.Time
	log     logger.Logger
}

// NewPublisher creates a Publisher for subject.
func NewPublisher(js JetStream, subject string, timeout time.Duration, log logger.Logger) *Publisher {
	if subject == "" {
		subject = defaultSubject
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Publisher{
		js:      js,
		subject: subject,
		timeout: timeout,
		now:     time.Now,
		log:     logger.Nop(log),
	}
}

// PublishMutation publishes m wrapped in a CloudEvent. The event id doubles
// as the JetStream message id for deduplication.
func (p *Publisher) PublishMutation(ctx context.Context, m Mutation) error {
	now := p.now().UTC()

	event := CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          eventSource,
		Type:            eventType,
		DataContentType: "application/json",
		Subject:         p.subject,
		Time:            &now,
		Data:            m,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal mutation event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ack, err := p.js.Publish(ctx, event.Subject, eventBytes, jetstream.WithMsgID(event.ID))
	if err != nil {
		return fmt.Errorf("failed to publish mutation event: %w", err)
	}

	p.log.Debug().
		Str("event_id", event.ID).
		Str("subject", event.Subject).
		Uint64("seq", ack.Sequence).
		Str("device_id", m.DeviceID).
		Msg("Published mutation event")

	return nil
}

// NopPublisher drops every event.
type NopPublisher struct{}

// PublishMutation does nothing.
func (NopPublisher) PublishMutation(context.Context, Mutation) error {
	return nil
}
