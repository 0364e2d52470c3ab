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

// Package extractor flattens a device snapshot into a vendor-neutral
// DeviceSummary. Every field is read through an ordered chain of paths and
// falls back to models.NA.
package extractor

import (
	"time"

	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/logger"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

// Extractor builds summaries. It holds no per-call state.
type Extractor struct {
	now func() time.Time
	log logger.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the time source used for online detection.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(e *Extractor) {
		e.log = log
	}
}

func New(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}

	for _, o := range opts {
		o(e)
	}

	e.log = logger.Nop(e.log)

	return e
}

// Extract summarizes snap using the wall clock.
func Extract(snap *snapshot.Snapshot) models.DeviceSummary {
	return New().Extract(snap)
}

// Extract summarizes snap. A nil snapshot yields a summary with every
// field unavailable.
func (e *Extractor) Extract(snap *snapshot.Snapshot) models.DeviceSummary {
	out := models.NewDeviceSummary()
	if snap == nil {
		return out
	}

	out.SerialNumber = first(snap, catalog.SerialNumber())
	out.Manufacturer = first(snap, catalog.Manufacturer())
	out.OUI = first(snap, catalog.OUI())
	out.ProductClass = first(snap, catalog.ProductClass())
	out.HardwareVersion = first(snap, catalog.HardwareVersion())
	out.SoftwareVersion = first(snap, catalog.SoftwareVersion())
	out.Uptime = first(snap, catalog.UpTime())
	out.ID = deviceID(snap, out)

	if d := snap.Dialect(); d != "" {
		out.DataModel = d
	}

	out.MACAddress = first(snap, catalog.MACAddress())
	if !present(out.MACAddress) {
		if mac, ok := ReconstructMAC(out.OUI, out.SerialNumber); ok {
			out.MACAddress = mac
		}
	}

	out.Status, out.LastInform = Status(first(snap, catalog.LastInform()), e.now())

	out.ManagementURL = first(snap, catalog.ConnectionRequestURL())

	if host, ok := HostFromURL(out.ManagementURL); ok {
		out.IPAddress = host
	} else {
		out.IPAddress = first(snap, catalog.FallbackIPAddress())
	}

	out.WiFiSSID = first(snap, catalog.WiFiSSID())
	out.WiFiPassphrase = first(snap, catalog.WiFiPassphrase())

	if rx := first(snap, catalog.OpticalRXPower()); present(rx) {
		out.RXPower = RXPower(rx)
	}

	if temp := first(snap, catalog.Temperature()); present(temp) {
		out.Temperature = Temperature(temp)
	}

	out.WANConnections = wanConnections(snap, device{
		ip:     out.IPAddress,
		mac:    out.MACAddress,
		uptime: out.Uptime,
		online: out.Status == models.StatusOnline,
	})

	e.log.Debug().
		Str("device_id", out.ID).
		Str("data_model", out.DataModel).
		Str("status", out.Status).
		Int("wan_connections", len(out.WANConnections)).
		Msg("Extracted device summary")

	return out
}

// deviceID uses the ACS document id, else composes the conventional
// OUI-ProductClass-Serial form.
func deviceID(snap *snapshot.Snapshot, s models.DeviceSummary) string {
	if id := first(snap, catalog.DeviceID()); present(id) {
		return id
	}

	if !present(s.OUI) || !present(s.SerialNumber) {
		return models.NA
	}

	if present(s.ProductClass) {
		return s.OUI + "-" + s.ProductClass + "-" + s.SerialNumber
	}

	return s.OUI + "-" + s.SerialNumber
}
