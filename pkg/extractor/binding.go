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
	"regexp"
	"strings"
)

// AllPorts describes a connection bound to every LAN side interface.
const AllPorts = "All ports"

// bindingRule maps a pattern in an interface reference to a label. A
// terminal rule stops evaluation and is the whole description.
type bindingRule struct {
	pattern  *regexp.Regexp
	label    string
	terminal bool
}

// Evaluated in order. Labels of non-terminal rules accumulate.
var bindingRules = []bindingRule{
	{pattern: regexp.MustCompile(`(?i)^\s*(all|any|\*)\s*$`), label: AllPorts, terminal: true},
	{pattern: regexp.MustCompile(`WLANConfiguration\.(\d+)`), label: "WLAN%s"},
	{pattern: regexp.MustCompile(`(?i)\bSSID[._-]?(\d+)\b`), label: "WLAN%s"},
	{pattern: regexp.MustCompile(`LANEthernetInterfaceConfig\.(\d+)`), label: "LAN%s"},
	{pattern: regexp.MustCompile(`Ethernet\.Interface\.(\d+)`), label: "LAN%s"},
	{pattern: regexp.MustCompile(`(?i)\bLAN[._-]?(\d+)\b`), label: "LAN%s"},
}

// DescribeBinding turns a vendor interface reference such as
// "InternetGatewayDevice.LANDevice.1.WLANConfiguration.1,LAN2" into a
// label list. It reports false when no rule matches.
func DescribeBinding(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}

	var labels []string

	seen := make(map[string]struct{})

	for _, rule := range bindingRules {
		if rule.terminal {
			if rule.pattern.MatchString(ref) {
				return rule.label, true
			}

			continue
		}

		for _, m := range rule.pattern.FindAllStringSubmatch(ref, -1) {
			label := fmt.Sprintf(rule.label, m[1])
			if _, dup := seen[label]; dup {
				continue
			}

			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}

	if len(labels) == 0 {
		return "", false
	}

	return strings.Join(labels, ", "), true
}
