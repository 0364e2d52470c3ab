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

package service

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/carverauto/cpeconfig/pkg/acs"
	"github.com/carverauto/cpeconfig/pkg/events"
	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/operator"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "missing acs", cfg: Config{}, wantErr: "acs section is required"},
		{name: "bad acs url", cfg: Config{ACS: &acs.Config{URL: "ftp://acs"}}, wantErr: "acs:"},
		{
			name:    "operator without query",
			cfg:     Config{ACS: &acs.Config{URL: "http://acs:7557"}, Operator: &operator.Config{Host: "db", Database: "ops"}},
			wantErr: "operator:",
		},
		{
			name:    "events without stream",
			cfg:     Config{ACS: &acs.Config{URL: "http://acs:7557"}, Events: &events.Config{URL: "nats://nats:4222"}},
			wantErr: "events:",
		},
		{name: "minimal", cfg: Config{ACS: &acs.Config{URL: "http://acs:7557"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, defaultListenAddr, tt.cfg.ListenAddr)
			assert.Equal(t, models.Duration(defaultShutdownTimeout), tt.cfg.ShutdownTimeout)
			assert.NotNil(t, tt.cfg.Logging)
		})
	}
}

func newACS(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/devices/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		_, _ = w.Write([]byte(`[{
			"_id": "dev-1",
			"Device": {"DeviceInfo": {"SerialNumber": {"_value": "SN1", "_type": "xsd:string"}}}
		}]`))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestServiceServesSummary(t *testing.T) {
	acsSrv := newACS(t)

	svc, err := New(context.Background(), &Config{
		APIKey: "k",
		ACS:    &acs.Config{URL: acsSrv.URL},
	}, logger.NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	req := httptest.NewRequest(http.MethodGet, "/api/devices/dev-1/summary", nil)
	req.Header.Set("X-API-Key", "k")

	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "SN1", gjson.Get(rec.Body.String(), "data.summary.serial_number").String())
	assert.Equal(t, "TR-181", gjson.Get(rec.Body.String(), "data.summary.data_model").String())

	rec = httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "closed", gjson.Get(rec.Body.String(), "acs_breaker").String())

	rec = httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `cpeconfig_acs_calls_total{operation="get_device",outcome="ok"} 1`)
}

func TestServiceRunStopsOnCancel(t *testing.T) {
	acsSrv := newACS(t)

	svc, err := New(context.Background(), &Config{ACS: &acs.Config{URL: acsSrv.URL}}, nil)
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- svc.Run(ctx, ln)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}

		_ = resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("service did not stop")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(context.Background(), &Config{}, nil)
	require.ErrorIs(t, err, errMissingACS)
}
