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
	"encoding/hex"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/carverauto/cpeconfig/pkg/models"
)

const (
	// OnlineWindow is how recent the last inform must be for a device to
	// count as online.
	OnlineWindow = 300 * time.Second

	rxPowerRawThreshold     = 100
	temperatureRawThreshold = 1000
)

// RXPower converts vendor fixed-point optical power to dBm. Values above
// 100 are encoded as (dBm+40)*100; anything else, including non-numeric
// text, is returned unchanged.
func RXPower(raw string) string {
	v, ok := parseNumber(raw)
	if !ok || v <= rxPowerRawThreshold {
		return raw
	}

	return strconv.FormatFloat(v/100-40, 'f', 2, 64)
}

// Temperature converts vendor 1/256 degree fixed point to Celsius. Values
// at or below 1000 are assumed to be Celsius already.
func Temperature(raw string) string {
	v, ok := parseNumber(raw)
	if !ok || v <= temperatureRawThreshold {
		return raw
	}

	return strconv.FormatFloat(v/256, 'f', 1, 64)
}

// parseNumber accepts finite decimal numbers only. Hex floats, Inf and NaN
// are left to pass through as text.
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)

	unsigned := strings.TrimLeft(raw, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// ReconstructMAC derives a MAC from the manufacturer OUI and the last six
// characters of the serial number. Both parts must be hex.
func ReconstructMAC(oui, serial string) (string, bool) {
	oui = strings.TrimSpace(oui)
	serial = strings.TrimSpace(serial)

	if len(oui) != 6 || len(serial) < 6 {
		return "", false
	}

	tail := serial[len(serial)-6:]
	if !isHex(oui) || !isHex(tail) {
		return "", false
	}

	s := strings.ToUpper(oui + tail)

	octets := make([]string, 0, 6)
	for i := 0; i < len(s); i += 2 {
		octets = append(octets, s[i:i+2])
	}

	return strings.Join(octets, ":"), true
}

func isHex(s string) bool {
	_, err := hex.DecodeString(s)

	return err == nil
}

// Status reports online/offline and the normalized last-inform time.
// Unparsable timestamps report offline with NA.
func Status(lastInform string, now time.Time) (status, rendered string) {
	lastInform = strings.TrimSpace(lastInform)
	if !present(lastInform) {
		return models.StatusOffline, models.NA
	}

	t, err := dateparse.ParseIn(lastInform, time.UTC)
	if err != nil {
		return models.StatusOffline, models.NA
	}

	rendered = t.UTC().Format(time.RFC3339)

	if now.Sub(t) < OnlineWindow {
		return models.StatusOnline, rendered
	}

	return models.StatusOffline, rendered
}

// HostFromURL returns the host part of a connection request URL.
func HostFromURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	host := u.Hostname()

	return host, host != ""
}
