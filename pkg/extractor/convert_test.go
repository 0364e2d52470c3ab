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

package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carverauto/cpeconfig/pkg/models"
)

func TestRXPower(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"14000", "100.00"},
		{" 14000 ", "100.00"},
		{"1850", "-21.50"},
		{"50", "50"},
		{"100", "100"},
		{"-21.5", "-21.5"},
		{"n/a", "n/a"},
		{"Inf", "Inf"},
		{"-Inf", "-Inf"},
		{"NaN", "NaN"},
		{"0x1p10", "0x1p10"},
		{"1e400", "1e400"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RXPower(tt.raw), tt.raw)
	}
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"12800", "50.0"},
		{"11520", "45.0"},
		{"45", "45"},
		{"1000", "1000"},
		{"hot", "hot"},
		{"+Inf", "+Inf"},
		{"0X1P20", "0X1P20"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Temperature(tt.raw), tt.raw)
	}
}

func TestReconstructMAC(t *testing.T) {
	tests := []struct {
		name   string
		oui    string
		serial string
		want   string
		ok     bool
	}{
		{"hex tail", "F86CE1", "ZTEGABC123", "F8:6C:E1:AB:C1:23", true},
		{"lowercase", "f86ce1", "48575443abc123", "F8:6C:E1:AB:C1:23", true},
		{"exactly six", "F86CE1", "ABC123", "F8:6C:E1:AB:C1:23", true},
		{"non-hex tail", "F86CE1", "ZTEGC8XYZQ12", "", false},
		{"short serial", "F86CE1", "A1", "", false},
		{"bad oui", "ZZ6CE1", "ABC123", "", false},
		{"short oui", "F86C", "ABC123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReconstructMAC(tt.oui, tt.serial)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastInform string
		status     string
		rendered   string
	}{
		{"recent", "2025-06-01T11:58:00.000Z", models.StatusOnline, "2025-06-01T11:58:00Z"},
		{"offset", "2025-06-01T13:57:00+02:00", models.StatusOnline, "2025-06-01T11:57:00Z"},
		{"just outside window", "2025-06-01T11:55:00Z", models.StatusOffline, "2025-06-01T11:55:00Z"},
		{"stale", "2025-05-01 08:00:00", models.StatusOffline, "2025-05-01T08:00:00Z"},
		{"garbage", "not a date", models.StatusOffline, models.NA},
		{"missing", models.NA, models.StatusOffline, models.NA},
		{"empty", "", models.StatusOffline, models.NA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, rendered := Status(tt.lastInform, now)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.rendered, rendered)
		})
	}
}

func TestHostFromURL(t *testing.T) {
	host, ok := HostFromURL("http://100.64.1.10:7547/tr069")
	assert.True(t, ok)
	assert.Equal(t, "100.64.1.10", host)

	host, ok = HostFromURL("http://[2001:db8::1]:7547/")
	assert.True(t, ok)
	assert.Equal(t, "2001:db8::1", host)

	_, ok = HostFromURL("")
	assert.False(t, ok)

	_, ok = HostFromURL(models.NA)
	assert.False(t, ok)

	_, ok = HostFromURL("http://%zz")
	assert.False(t, ok)
}

func TestDescribeBinding(t *testing.T) {
	tests := []struct {
		ref  string
		want string
		ok   bool
	}{
		{"all", AllPorts, true},
		{" ANY ", AllPorts, true},
		{"InternetGatewayDevice.LANDevice.1.WLANConfiguration.1,InternetGatewayDevice.LANDevice.1.LANEthernetInterfaceConfig.2", "WLAN1, LAN2", true},
		{"LAN1,LAN2,SSID1", "WLAN1, LAN1, LAN2", true},
		{"Device.WiFi.SSID.3,Device.Ethernet.Interface.4", "WLAN3, LAN4", true},
		{"LAN1,LAN1", "LAN1", true},
		{"eth0", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := DescribeBinding(tt.ref)
		assert.Equal(t, tt.ok, ok, tt.ref)
		assert.Equal(t, tt.want, got, tt.ref)
	}
}
