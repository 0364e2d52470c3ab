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
	"fmt"
	"strings"

	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

const (
	wanStatusConnected    = "Connected"
	wanStatusDisconnected = "Disconnected"
	wanStatusUnknown      = "Unknown"
)

type wanProbe struct {
	template string
	kind     models.WANType
	gateway  string
}

// PPP is probed before IP for each connection device.
var wanProbes = []wanProbe{
	{template: catalog.WANPPPConnection, kind: models.WANTypePPPoE, gateway: "RemoteIPAddress"},
	{template: catalog.WANIPConnection, kind: models.WANTypeIP, gateway: "DefaultGateway"},
}

// Fields whose presence marks a WAN connection object as real.
var wanMarkers = []string{snapshot.AttrObject, "ConnectionStatus", "Enable", "Name"}

// device carries the device level values bridges fall back to.
type device struct {
	ip     string
	mac    string
	uptime string
	online bool
}

// wanConnections discovers WAN connections, or synthesizes one bridge per
// VLAN of active LAN side interfaces when the device reports none.
func wanConnections(snap *snapshot.Snapshot, dev device) []models.WANConnection {
	ifaces := activeInterfaces(snap)

	out := make([]models.WANConnection, 0, 2)
	found := false

	for i := 1; i <= catalog.MaxWLANIndex; i++ {
		for _, probe := range wanProbes {
			node, ok := snap.Lookup(catalog.Expand(probe.template, i))
			if !ok || !hasWANMarker(node) {
				continue
			}

			found = true

			if conn, ok := buildConnection(node, i, probe, ifaces); ok {
				out = append(out, conn)
			}
		}
	}

	if found {
		return out
	}

	return synthesizeBridges(ifaces, dev)
}

func hasWANMarker(node *snapshot.Node) bool {
	if !node.IsObject() {
		return false
	}

	for _, key := range wanMarkers {
		if _, ok := node.Child(key); ok {
			return true
		}
	}

	return false
}

func buildConnection(node *snapshot.Node, index int, probe wanProbe, ifaces []lanInterface) (models.WANConnection, bool) {
	kind := probe.kind
	if ct, ok := Path("ConnectionType")(node); ok && strings.Contains(strings.ToLower(ct), "bridged") {
		kind = models.WANTypeBridge
	}

	conn := models.NewWANConnection(index, kind)
	conn.Status = connectionStatus(node)

	name, hasName := Path("Name")(node)
	ip, hasIP := Path("ExternalIPAddress")(node)
	services, hasServices := Coalesce(node, Chain(catalog.WANServiceList())...)

	if !hasName && !hasIP && !hasServices {
		return models.WANConnection{}, false
	}

	switch {
	case hasName:
		conn.Name = name
	case hasServices:
		conn.Name = fmt.Sprintf("%s_%s", services, kind)
	default:
		conn.Name = fmt.Sprintf("WAN%d_%s", index, kind)
	}

	if hasIP {
		conn.ExternalIP = ip
	}

	if hasServices {
		conn.ServiceList = services
	}

	conn.Gateway = first(node, catalog.Chain{probe.gateway})
	conn.SubnetMask = first(node, catalog.Chain{"SubnetMask"})
	conn.DNSServers = first(node, catalog.Chain{"DNSServers"})
	conn.MACAddress = first(node, catalog.Chain{"MACAddress"})
	conn.Uptime = first(node, catalog.Chain{"Uptime"})
	conn.LastError = first(node, catalog.Chain{"LastConnectionError"})
	conn.MRU = first(node, catalog.Chain{"MaxMRUSize", "CurrentMRUSize", "MaxMTUSize"})
	conn.VLAN = first(node, catalog.WANVLAN())

	if user, ok := Path("Username")(node); ok {
		conn.Username = user
		conn.HasCredentials = true
	}

	conn.Binding = connectionBinding(node, conn.VLAN, ifaces)

	return conn, true
}

// connectionStatus prefers the reported status, then infers one from the
// Enable flag.
func connectionStatus(node *snapshot.Node) string {
	if s, ok := Path("ConnectionStatus")(node); ok {
		return s
	}

	if e, ok := node.Child("Enable"); ok && !e.IsNull() {
		if e.Truthy() {
			return wanStatusConnected
		}

		return wanStatusDisconnected
	}

	return wanStatusUnknown
}

func connectionBinding(node *snapshot.Node, vlan string, ifaces []lanInterface) string {
	if ref, ok := Coalesce(node, Chain(catalog.WANLanBinding())...); ok {
		if desc, ok := DescribeBinding(ref); ok {
			return desc
		}
	}

	if !present(vlan) {
		vlan = ""
	}

	if desc, ok := bindingFromInterfaces(ifaces, vlan); ok {
		return desc
	}

	return models.NA
}

func synthesizeBridges(ifaces []lanInterface, dev device) []models.WANConnection {
	groups := groupByVLAN(ifaces)
	out := make([]models.WANConnection, 0, len(groups))

	for i, g := range groups {
		conn := models.NewWANConnection(i+1, models.WANTypeBridge)
		conn.Inferred = true

		if g.VLAN != "" {
			conn.VLAN = g.VLAN
			conn.Name = "Bridge_VLAN" + g.VLAN
		} else {
			conn.Name = "Bridge"
		}

		if dev.online {
			conn.Status = wanStatusConnected
		} else {
			conn.Status = wanStatusDisconnected
		}

		conn.ExternalIP = dev.ip
		conn.MACAddress = dev.mac
		conn.Uptime = dev.uptime

		labels := make([]string, 0, len(g.Interfaces))
		for _, it := range g.Interfaces {
			labels = append(labels, it.Label)
		}

		conn.Binding = strings.Join(labels, ", ")
		out = append(out, conn)
	}

	return out
}
