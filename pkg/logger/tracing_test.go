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

package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitializeTracing_NoExporter(t *testing.T) {
	tp, err := InitializeTracing(context.Background(), TracingConfig{Logger: NewTestLogger()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
}

func TestInitializeTracing_EndpointRequired(t *testing.T) {
	_, err := InitializeTracing(context.Background(), TracingConfig{OTel: &OTelConfig{Enabled: true}})
	require.ErrorIs(t, err, ErrOTelEndpointRequired)
}

func TestSetupTLSConfig(t *testing.T) {
	cfg, err := setupTLSConfig(&TLSConfig{})
	require.NoError(t, err)
	assert.Empty(t, cfg.Certificates)

	_, err = setupTLSConfig(&TLSConfig{CAFile: filepath.Join(t.TempDir(), "missing.pem")})
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.pem")
	require.NoError(t, os.WriteFile(bad, []byte("not a cert"), 0o600))

	_, err = setupTLSConfig(&TLSConfig{CAFile: bad})
	require.ErrorIs(t, err, errFailedToParseCACert)
}
