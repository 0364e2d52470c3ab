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

package models

// NA marks a field the device did not report.
const NA = "N/A"

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// WANType is the kind of a WAN connection.
type WANType string

const (
	WANTypePPPoE  WANType = "PPPoE"
	WANTypeIP     WANType = "IP"
	WANTypeBridge WANType = "Bridge"
)

// WANConnection describes one discovered or inferred WAN connection.
type WANConnection struct {
	Index          int     `json:"index"`
	Type           WANType `json:"type"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	ExternalIP     string  `json:"external_ip"`
	Gateway        string  `json:"gateway"`
	SubnetMask     string  `json:"subnet_mask"`
	DNSServers     string  `json:"dns_servers"`
	MACAddress     string  `json:"mac_address"`
	Username       string  `json:"username"`
	HasCredentials bool    `json:"has_credentials"`
	Uptime         string  `json:"uptime"`
	LastError      string  `json:"last_error"`
	MRU            string  `json:"mru"`
	VLAN           string  `json:"vlan"`
	ServiceList    string  `json:"service_list"`
	Binding        string  `json:"binding"`
	Inferred       bool    `json:"inferred"`
}

// NewWANConnection returns a connection with every text field set to NA.
func NewWANConnection(index int, t WANType) WANConnection {
	return WANConnection{
		Index:       index,
		Type:        t,
		Name:        NA,
		Status:      NA,
		ExternalIP:  NA,
		Gateway:     NA,
		SubnetMask:  NA,
		DNSServers:  NA,
		MACAddress:  NA,
		Username:    NA,
		Uptime:      NA,
		LastError:   NA,
		MRU:         NA,
		VLAN:        NA,
		ServiceList: NA,
		Binding:     NA,
	}
}

// DeviceSummary is the flattened, vendor-neutral view of a device.
type DeviceSummary struct {
	ID              string `json:"id"`
	SerialNumber    string `json:"serial_number"`
	MACAddress      string `json:"mac_address"`
	Manufacturer    string `json:"manufacturer"`
	OUI             string `json:"oui"`
	ProductClass    string `json:"product_class"`
	HardwareVersion string `json:"hardware_version"`
	SoftwareVersion string `json:"software_version"`
	DataModel       string `json:"data_model"`

	Status     string `json:"status"`
	LastInform string `json:"last_inform"`

	ManagementURL string `json:"management_url"`
	IPAddress     string `json:"ip_address"`
	Uptime        string `json:"uptime"`

	WiFiSSID       string `json:"wifi_ssid"`
	WiFiPassphrase string `json:"wifi_passphrase" sensitive:"true"`

	RXPower     string `json:"rx_power_dbm"`
	Temperature string `json:"temperature_c"`

	WANConnections []WANConnection `json:"wan_connections"`
}

// NewDeviceSummary returns a summary with every field unavailable.
func NewDeviceSummary() DeviceSummary {
	return DeviceSummary{
		ID:              NA,
		SerialNumber:    NA,
		MACAddress:      NA,
		Manufacturer:    NA,
		OUI:             NA,
		ProductClass:    NA,
		HardwareVersion: NA,
		SoftwareVersion: NA,
		DataModel:       NA,
		Status:          StatusOffline,
		LastInform:      NA,
		ManagementURL:   NA,
		IPAddress:       NA,
		Uptime:          NA,
		WiFiSSID:        NA,
		WiFiPassphrase:  NA,
		RXPower:         NA,
		Temperature:     NA,
		WANConnections:  []WANConnection{},
	}
}

// OperatorMetadata annotates a device with operator-side records. Keys
// are the column names returned by the configured lookup query.
type OperatorMetadata map[string]string

// DeviceView is the summary endpoint payload.
type DeviceView struct {
	Summary  DeviceSummary    `json:"summary"`
	Operator OperatorMetadata `json:"operator,omitempty"`
}
