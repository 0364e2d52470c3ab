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

// Chain is an ordered list of paths, first populated value wins.
type Chain []string

const (
	igdInfo = "InternetGatewayDevice.DeviceInfo."
	devInfo = "Device.DeviceInfo."
	igdWAN  = "InternetGatewayDevice.WANDevice.1."
	igdConn = igdWAN + "WANConnectionDevice.1."
)

// Identity chains. The _deviceId subtree is filled in by the ACS from the
// Inform envelope and wins over the data model copies.
func DeviceID() Chain { return Chain{"_id"} }

func SerialNumber() Chain {
	return Chain{"_deviceId._SerialNumber", igdInfo + "SerialNumber", devInfo + "SerialNumber"}
}

func Manufacturer() Chain {
	return Chain{"_deviceId._Manufacturer", igdInfo + "Manufacturer", devInfo + "Manufacturer"}
}

func OUI() Chain {
	return Chain{"_deviceId._OUI", igdInfo + "ManufacturerOUI", devInfo + "ManufacturerOUI"}
}

func ProductClass() Chain {
	return Chain{"_deviceId._ProductClass", igdInfo + "ProductClass", devInfo + "ProductClass"}
}

func HardwareVersion() Chain {
	return Chain{igdInfo + "HardwareVersion", devInfo + "HardwareVersion"}
}

func SoftwareVersion() Chain {
	return Chain{igdInfo + "SoftwareVersion", devInfo + "SoftwareVersion"}
}

func UpTime() Chain {
	return Chain{igdInfo + "UpTime", devInfo + "UpTime"}
}

func MACAddress() Chain {
	return Chain{
		igdConn + "WANIPConnection.1.MACAddress",
		igdConn + "WANPPPConnection.1.MACAddress",
		"InternetGatewayDevice.LANDevice.1.LANEthernetInterfaceConfig.1.MACAddress",
		"Device.Ethernet.Interface.1.MACAddress",
		"Device.Ethernet.Link.1.MACAddress",
	}
}

func LastInform() Chain { return Chain{"_lastInform"} }

func ConnectionRequestURL() Chain {
	return Chain{
		"InternetGatewayDevice.ManagementServer.ConnectionRequestURL",
		"Device.ManagementServer.ConnectionRequestURL",
	}
}

// FallbackIPAddress is consulted when the connection request URL carries
// no usable host.
func FallbackIPAddress() Chain {
	return Chain{
		igdConn + "WANIPConnection.1.ExternalIPAddress",
		igdConn + "WANPPPConnection.1.ExternalIPAddress",
		"Device.IP.Interface.1.IPv4Address.1.IPAddress",
	}
}

func WiFiSSID() Chain {
	return Chain{
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.SSID",
		"Device.WiFi.SSID.1.SSID",
	}
}

func WiFiPassphrase() Chain {
	return Chain{
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.KeyPassphrase",
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.PreSharedKey.1.KeyPassphrase",
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.PreSharedKey.1.PreSharedKey",
		"Device.WiFi.AccessPoint.1.Security.KeyPassphrase",
	}
}

// Vendor PON extensions. The misspelled "Interafce" is what the firmware
// actually reports.
func OpticalRXPower() Chain {
	return Chain{
		igdWAN + "X_GponInterafceConfig.RXPower",
		igdWAN + "X_CT-COM_GponInterfaceConfig.RXPower",
		igdWAN + "X_CT-COM_EponInterfaceConfig.RXPower",
		igdWAN + "X_ZTE-COM_WANPONInterfaceConfig.RXPower",
		igdWAN + "X_CU_WANEPONInterfaceConfig.OpticalTransceiver.RXPower",
	}
}

func Temperature() Chain {
	return Chain{
		igdWAN + "X_GponInterafceConfig.TransceiverTemperature",
		igdWAN + "X_CT-COM_GponInterfaceConfig.TransceiverTemperature",
		igdWAN + "X_CT-COM_EponInterfaceConfig.TransceiverTemperature",
		igdWAN + "X_ZTE-COM_WANPONInterfaceConfig.TransceiverTemperature",
		devInfo + "TemperatureStatus.TemperatureSensor.1.Value",
	}
}

// WAN connection objects, instance {i} of WANConnectionDevice.
const (
	WANConnectionDevice = igdWAN + "WANConnectionDevice.{i}."
	WANPPPConnection    = WANConnectionDevice + "WANPPPConnection.1"
	WANIPConnection     = WANConnectionDevice + "WANIPConnection.1"
)

// Vendor fields on a WAN connection object.
func WANServiceList() Chain {
	return Chain{"X_CT-COM_ServiceList", "X_HW_SERVICELIST", "X_ZTE-COM_ServiceList", "X_CU_ServiceList"}
}

func WANVLAN() Chain {
	return Chain{"X_CT-COM_VLANIDMark", "X_HW_VLAN", "X_ZTE-COM_VLANID", "X_CU_VLAN"}
}

func WANLanBinding() Chain {
	return Chain{"X_CT-COM_LanInterface", "X_ZTE-COM_LanInterface", "X_CU_LanInterface", "X_HW_LANBIND"}
}

// LAN side interface tables, instance {i}.
const (
	WLAN098 = "InternetGatewayDevice.LANDevice.1.WLANConfiguration.{i}"
	LAN098  = "InternetGatewayDevice.LANDevice.1.LANEthernetInterfaceConfig.{i}"
	WLAN181 = "Device.WiFi.SSID.{i}"
	LAN181  = "Device.Ethernet.Interface.{i}"
)

// InterfaceVLAN lists the vendor VLAN fields found on LAN side interfaces.
func InterfaceVLAN() Chain {
	return Chain{"X_CT-COM_VLAN", "X_ZTE-COM_VLANID", "X_HW_VLANID", "VLANID"}
}
