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

// Package catalog holds the static knowledge of TR-098 and TR-181 parameter
// paths for each configurable setting, plus the value encoding tables.
package catalog

import (
	"strconv"
	"strings"
)

// Dialect identifies a TR-069 data model generation.
type Dialect uint8

const (
	TR098 Dialect = iota + 1
	TR181
)

func (d Dialect) String() string {
	switch d {
	case TR098:
		return "TR-098"
	case TR181:
		return "TR-181"
	default:
		return "unknown"
	}
}

// IndexPlaceholder is substituted with the WLAN instance number.
const IndexPlaceholder = "{i}"

// MaxWLANIndex bounds instance enumeration for WLAN, LAN and WAN objects.
const MaxWLANIndex = 8

// Path is a dialect-tagged parameter path template.
type Path struct {
	Template string
	Dialect  Dialect
}

// Expand substitutes the instance number into the template.
func (p Path) Expand(index int) string {
	return Expand(p.Template, index)
}

// Expand substitutes index into any template carrying IndexPlaceholder.
func Expand(template string, index int) string {
	return strings.ReplaceAll(template, IndexPlaceholder, strconv.Itoa(index))
}

// Setting describes one configurable concept. Candidate order is
// significant: it is the order writes are emitted when several match.
type Setting struct {
	Name       string
	Candidates []Path
	Fallback   []Path
	Encode     Encoder
}

// Encoder maps a security mode to the wire value a path expects.
type Encoder func(SecurityMode) string

const (
	SettingSSID       = "ssid"
	SettingSecurity   = "security_mode"
	SettingPassphrase = "passphrase"
	SettingAuthMode   = "auth_mode"
	SettingEncryption = "encryption_mode"
)

const (
	wlan098 = "InternetGatewayDevice.LANDevice.1.WLANConfiguration.{i}."
	ssid181 = "Device.WiFi.SSID.{i}."
	ap181   = "Device.WiFi.AccessPoint.{i}.Security."
)

func tr098(suffix string) Path { return Path{Template: wlan098 + suffix, Dialect: TR098} }
func tr181(prefix, suffix string) Path {
	return Path{Template: prefix + suffix, Dialect: TR181}
}

// SSID returns the SSID setting.
func SSID() Setting {
	return Setting{
		Name:       SettingSSID,
		Candidates: []Path{tr098("SSID"), tr181(ssid181, "SSID")},
		Fallback:   []Path{tr098("SSID"), tr181(ssid181, "SSID")},
	}
}

// Security returns the security-mode setting (BeaconType / ModeEnabled).
func Security() Setting {
	return Setting{
		Name:       SettingSecurity,
		Candidates: []Path{tr098("BeaconType"), tr181(ap181, "ModeEnabled")},
		Fallback:   []Path{tr098("BeaconType"), tr181(ap181, "ModeEnabled")},
	}
}

// Passphrase returns the pre-shared key setting.
func Passphrase() Setting {
	return Setting{
		Name: SettingPassphrase,
		Candidates: []Path{
			tr098("KeyPassphrase"),
			tr098("PreSharedKey.1.KeyPassphrase"),
			tr098("PreSharedKey.1.PreSharedKey"),
			tr181(ap181, "KeyPassphrase"),
			tr181(ap181, "PreSharedKey"),
		},
		Fallback: []Path{tr098("KeyPassphrase"), tr181(ap181, "KeyPassphrase")},
	}
}

// AuthMode returns the WPA authentication-mode setting. TR-181 folds this
// into ModeEnabled, so only TR-098 paths exist.
func AuthMode() Setting {
	return Setting{
		Name:       SettingAuthMode,
		Candidates: []Path{tr098("WPAAuthenticationMode"), tr098("IEEE11iAuthenticationMode")},
		Fallback:   []Path{tr098("WPAAuthenticationMode")},
		Encode:     func(SecurityMode) string { return AuthPSK },
	}
}

// EncryptionMode returns the WPA cipher setting.
func EncryptionMode() Setting {
	return Setting{
		Name:       SettingEncryption,
		Candidates: []Path{tr098("WPAEncryptionModes"), tr098("IEEE11iEncryptionModes")},
		Fallback:   []Path{tr098("WPAEncryptionModes")},
		Encode:     Encryption,
	}
}

// Settings returns every WiFi setting in emission order.
func Settings() []Setting {
	return []Setting{SSID(), Security(), Passphrase(), AuthMode(), EncryptionMode()}
}

// Lookup finds a setting by name.
func Lookup(name string) (Setting, bool) {
	for _, s := range Settings() {
		if s.Name == name {
			return s, true
		}
	}

	return Setting{}, false
}

var secretLeaves = map[string]struct{}{
	"KeyPassphrase": {},
	"PreSharedKey":  {},
	"WEPKey":        {},
	"Password":      {},
}

// IsSecret reports whether the parameter at path holds a credential.
func IsSecret(path string) bool {
	leaf := path
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		leaf = path[i+1:]
	}

	_, ok := secretLeaves[leaf]

	return ok
}
