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
	"strconv"
	"strings"

	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

type interfaceKind uint8

const (
	kindWLAN interfaceKind = iota + 1
	kindLAN
)

// lanInterface is an active LAN side interface.
type lanInterface struct {
	Label string
	VLAN  string
}

type interfaceTable struct {
	template string
	kind     interfaceKind
}

// TR-098 tables come first so their labels win when both dialects report
// the same instance.
var interfaceTables = []interfaceTable{
	{template: catalog.WLAN098, kind: kindWLAN},
	{template: catalog.WLAN181, kind: kindWLAN},
	{template: catalog.LAN098, kind: kindLAN},
	{template: catalog.LAN181, kind: kindLAN},
}

// activeInterfaces enumerates instances 1..MaxWLANIndex of every table
// and keeps those that look in use.
func activeInterfaces(snap *snapshot.Snapshot) []lanInterface {
	var out []lanInterface

	seen := make(map[string]struct{})

	for _, table := range interfaceTables {
		for i := 1; i <= catalog.MaxWLANIndex; i++ {
			node, ok := snap.Lookup(catalog.Expand(table.template, i))
			if !ok || !node.IsObject() {
				continue
			}

			if !isActive(node, table.kind) {
				continue
			}

			label := labelFor(table.kind, i)
			if _, dup := seen[label]; dup {
				continue
			}

			seen[label] = struct{}{}

			vlan, _ := Coalesce(node, Chain(catalog.InterfaceVLAN())...)
			out = append(out, lanInterface{Label: label, VLAN: vlan})
		}
	}

	return out
}

// A WLAN is active when enabled or up and carrying an SSID. An Ethernet
// port is active when enabled or not reporting NoLink. A missing status
// counts as not NoLink.
func isActive(node *snapshot.Node, kind interfaceKind) bool {
	enabled := false
	if e, ok := node.Child("Enable"); ok {
		enabled = e.Truthy()
	}

	status, _ := Path("Status")(node)

	switch kind {
	case kindWLAN:
		ssid, _ := Path("SSID")(node)
		return (enabled || strings.EqualFold(status, "Up")) && ssid != ""
	case kindLAN:
		return enabled || !strings.EqualFold(status, "NoLink")
	default:
		return false
	}
}

func labelFor(kind interfaceKind, index int) string {
	if kind == kindWLAN {
		return "WLAN" + strconv.Itoa(index)
	}

	return "LAN" + strconv.Itoa(index)
}

// bindingFromInterfaces labels the interfaces feeding a connection. When
// both the connection and some interfaces carry a VLAN, only matching
// interfaces are listed.
func bindingFromInterfaces(ifaces []lanInterface, vlan string) (string, bool) {
	candidates := ifaces

	if vlan != "" && anyVLAN(ifaces) {
		candidates = nil

		for _, it := range ifaces {
			if it.VLAN == vlan {
				candidates = append(candidates, it)
			}
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	labels := make([]string, 0, len(candidates))
	for _, it := range candidates {
		labels = append(labels, it.Label)
	}

	return strings.Join(labels, ", "), true
}

func anyVLAN(ifaces []lanInterface) bool {
	for _, it := range ifaces {
		if it.VLAN != "" {
			return true
		}
	}

	return false
}

// vlanGroup is a set of interfaces sharing one VLAN.
type vlanGroup struct {
	VLAN       string
	Interfaces []lanInterface
}

// groupByVLAN groups interfaces in first-seen VLAN order. Interfaces
// without a VLAN share the "" group.
func groupByVLAN(ifaces []lanInterface) []vlanGroup {
	var groups []vlanGroup

	index := make(map[string]int)

	for _, it := range ifaces {
		i, ok := index[it.VLAN]
		if !ok {
			i = len(groups)
			index[it.VLAN] = i
			groups = append(groups, vlanGroup{VLAN: it.VLAN})
		}

		groups[i].Interfaces = append(groups[i].Interfaces, it)
	}

	return groups
}
