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

package catalog

// SecurityMode is the abstract WiFi security selection accepted by the API.
type SecurityMode string

const (
	SecurityWPA2PSK       SecurityMode = "WPA2PSK"
	SecurityWPAPSK        SecurityMode = "WPAPSK"
	SecurityWPA2PSKWPAPSK SecurityMode = "WPA2PSKWPAPSK"
	SecurityNone          SecurityMode = "None"
)

// Wire values shared by several settings.
const (
	AuthPSK        = "PSKAuthentication"
	EncryptionAES  = "AESEncryption"
	EncryptionTKIP = "TKIPEncryption"

	defaultBeaconType  = "11i"
	defaultModeEnabled = "WPA2-PSK"
)

var beaconTypes = map[SecurityMode]string{
	SecurityWPA2PSK:       "11i",
	SecurityWPAPSK:        "WPA",
	SecurityWPA2PSKWPAPSK: "WPAand11i",
	SecurityNone:          "Basic",
}

var modesEnabled = map[SecurityMode]string{
	SecurityWPA2PSK:       "WPA2-PSK",
	SecurityWPAPSK:        "WPA-PSK",
	SecurityWPA2PSKWPAPSK: "WPA-WPA2-PSK",
	SecurityNone:          "None",
}

// KnownSecurityModes lists the accepted modes in a stable order.
func KnownSecurityModes() []SecurityMode {
	return []SecurityMode{SecurityWPA2PSK, SecurityWPAPSK, SecurityWPA2PSKWPAPSK, SecurityNone}
}

// IsKnown reports whether m is one of KnownSecurityModes.
func (m SecurityMode) IsKnown() bool {
	_, ok := beaconTypes[m]
	return ok
}

// IsOpen reports whether m disables encryption.
func (m SecurityMode) IsOpen() bool {
	return m == SecurityNone
}

// BeaconType encodes m for TR-098 WLANConfiguration.BeaconType.
func BeaconType(m SecurityMode) string {
	if v, ok := beaconTypes[m]; ok {
		return v
	}

	return defaultBeaconType
}

// ModeEnabled encodes m for TR-181 AccessPoint.Security.ModeEnabled.
func ModeEnabled(m SecurityMode) string {
	if v, ok := modesEnabled[m]; ok {
		return v
	}

	return defaultModeEnabled
}

// Encryption picks the cipher for m. Only plain WPA uses TKIP; every other
// mode, including unrecognized ones, is treated as WPA2 family.
func Encryption(m SecurityMode) string {
	if m == SecurityWPAPSK {
		return EncryptionTKIP
	}

	return EncryptionAES
}
