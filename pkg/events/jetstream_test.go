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
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/models"
)

func TestConnect_PublishesToEmbeddedJetStream(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	jsServer := runJetStreamServer(t)
	t.Cleanup(jsServer.Shutdown)

	cfg := &Config{
		URL:    jsServer.ClientURL(),
		Stream: "CPECONFIG_AUDIT",
	}
	require.NoError(t, cfg.Validate())

	publisher, closer, err := Connect(ctx, cfg, logger.NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(closer)

	m := NewMutation("req-1", nil, []models.ParameterWrite{
		{Path: "InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.SSID", Value: "home", Type: "xsd:string"},
		{Path: "InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.KeyPassphrase", Value: "Sup3rSecret!", Type: "xsd:string"},
	}, models.TaskResult{DeviceID: "dev-1", Task: "setParameterValues", Status: models.TaskApplied, HTTPStatus: 200}, nil)

	require.NoError(t, publisher.PublishMutation(ctx, m))

	nc, err := nats.Connect(jsServer.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	stream, err := js.Stream(ctx, cfg.Stream)
	require.NoError(t, err)
	assert.Contains(t, stream.CachedInfo().Config.Subjects, defaultSubject)

	msg, err := stream.GetLastMsgForSubject(ctx, defaultSubject)
	require.NoError(t, err)

	body := string(msg.Data)
	assert.Equal(t, eventType, gjson.Get(body, "type").String())
	assert.Equal(t, "dev-1", gjson.Get(body, "data.device_id").String())
	assert.Equal(t, "req-1", gjson.Get(body, "data.request_id").String())
	assert.Equal(t, "home", gjson.Get(body, "data.writes.0.1").String())
	assert.Equal(t, models.Redacted, gjson.Get(body, "data.writes.1.1").String())
	assert.NotContains(t, body, "Sup3rSecret!")
}

func TestConnect_ReusesExistingStream(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	jsServer := runJetStreamServer(t)
	t.Cleanup(jsServer.Shutdown)

	nc, err := nats.Connect(jsServer.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     "EVENTS",
		Subjects: []string{"events.other"},
	})
	require.NoError(t, err)

	cfg := &Config{
		URL:     jsServer.ClientURL(),
		Stream:  "EVENTS",
		Subject: "events.cpeconfig.audit",
	}
	require.NoError(t, cfg.Validate())

	publisher, closer, err := Connect(ctx, cfg, logger.NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(closer)

	require.NoError(t, publisher.PublishMutation(ctx, Mutation{DeviceID: "dev-2", Task: "reboot"}))

	stream, err := js.Stream(ctx, "EVENTS")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"events.other", "events.cpeconfig.audit"}, stream.CachedInfo().Config.Subjects)

	msg, err := stream.GetLastMsgForSubject(ctx, "events.cpeconfig.audit")
	require.NoError(t, err)
	assert.Equal(t, "dev-2", gjson.GetBytes(msg.Data, "data.device_id").String())
}

func TestConnect_Unreachable(t *testing.T) {
	cfg := &Config{URL: "nats://127.0.0.1:1", Stream: "CPECONFIG_AUDIT"}
	require.NoError(t, cfg.Validate())

	_, _, err := Connect(context.Background(), cfg, logger.NewTestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func runJetStreamServer(t *testing.T) *server.Server {
	t.Helper()

	opts := &server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
	}

	srv, err := server.NewServer(opts)
	require.NoError(t, err)

	go srv.Start()

	if !srv.ReadyForConnections(10 * time.Second) {
		srv.Shutdown()
		t.Fatalf("embedded NATS server not ready for connections")
	}

	require.Eventually(t, srv.JetStreamEnabled, 5*time.Second, 50*time.Millisecond, "embedded NATS server not ready for JetStream")

	return srv
}
