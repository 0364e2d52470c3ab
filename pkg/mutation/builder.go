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

// Package mutation composes resolved parameter paths and encoded values
// into ordered setParameterValues batches.
package mutation

import (
	"strings"

	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/resolver"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

// Builder builds parameter write batches. The zero value is usable.
type Builder struct {
	log logger.Logger
}

// NewBuilder returns a Builder that logs batch composition at debug level.
func NewBuilder(log logger.Logger) *Builder {
	return &Builder{log: log}
}

// BuildWifiWrite is Builder.BuildWifiWrite without logging.
func BuildWifiWrite(ssid, password string, wlanIndex int, mode catalog.SecurityMode, snap *snapshot.Snapshot) []models.ParameterWrite {
	return (&Builder{}).BuildWifiWrite(ssid, password, wlanIndex, mode, snap)
}

// BuildWifiWrite returns the writes that set the SSID and security of one
// WLAN. Writes are ordered SSID, security mode, passphrase, auth mode,
// encryption mode. A nil snapshot targets every plausible path.
//
// With mode None every passphrase path is cleared. With any other mode and
// an empty password only SSID and security mode are written.
func (b *Builder) BuildWifiWrite(
	ssid, password string, wlanIndex int, mode catalog.SecurityMode, snap *snapshot.Snapshot,
) []models.ParameterWrite {
	if wlanIndex < 1 {
		wlanIndex = 1
	}

	hints := resolver.DetectHints(snap)
	resolve := func(s catalog.Setting) []string {
		return resolver.ResolveSetting(s, wlanIndex, hints, snap)
	}

	writes := make([]models.ParameterWrite, 0, 8)

	for _, p := range resolve(catalog.SSID()) {
		writes = append(writes, stringWrite(p, ssid))
	}

	for _, p := range resolve(catalog.Security()) {
		if v, ok := securityValue(p, mode); ok {
			writes = append(writes, stringWrite(p, v))
		}
	}

	switch {
	case mode.IsOpen():
		for _, p := range resolve(catalog.Passphrase()) {
			writes = append(writes, stringWrite(p, ""))
		}
	case password != "":
		for _, p := range resolve(catalog.Passphrase()) {
			writes = append(writes, stringWrite(p, password))
		}

		for _, s := range []catalog.Setting{catalog.AuthMode(), catalog.EncryptionMode()} {
			for _, p := range resolve(s) {
				writes = append(writes, stringWrite(p, s.Encode(mode)))
			}
		}
	}

	if b.log != nil {
		b.log.Debug().
			Int("wlan_index", wlanIndex).
			Str("security_mode", string(mode)).
			Bool("tr098", hints.TR098).
			Bool("tr181", hints.TR181).
			Bool("snapshot", snap != nil).
			Int("writes", len(writes)).
			Msg("Built WiFi write batch")
	}

	return writes
}

// securityValue picks the encoding table by the parameter name in path.
func securityValue(path string, mode catalog.SecurityMode) (string, bool) {
	switch {
	case strings.Contains(path, "BeaconType"):
		return catalog.BeaconType(mode), true
	case strings.Contains(path, "ModeEnabled"):
		return catalog.ModeEnabled(mode), true
	default:
		return "", false
	}
}

func stringWrite(path, value string) models.ParameterWrite {
	return models.ParameterWrite{Path: path, Value: value, Type: models.XSDString}
}
