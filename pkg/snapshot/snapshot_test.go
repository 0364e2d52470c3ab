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

package snapshot

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "_id": "F86CE1-HG8245-ABC123",
  "_lastInform": "2025-11-03T15:00:00.000Z",
  "InternetGatewayDevice": {
    "_object": true,
    "LANDevice": {
      "1": {
        "WLANConfiguration": {
          "1": {
            "_object": true,
            "SSID": {"_value": "home-net", "_type": "xsd:string", "_timestamp": "2025-11-03T15:00:00Z"},
            "KeyPassphrase": {"_value": "", "_type": "xsd:string"},
            "BeaconType": {"_type": "xsd:string", "_timestamp": "2025-11-03T15:00:00Z"},
            "VendorRaw": "bare-value",
            "Nulled": null,
            "Writable": {"_writable": true, "_timestamp": "2025-11-03T15:00:00Z"}
          }
        }
      }
    }
  },
  "_tags": ["lab", "fiber"]
}`

func mustParse(t *testing.T, doc string) *Snapshot {
	t.Helper()

	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	return s
}

func TestParse_RejectsInvalidDocuments(t *testing.T) {
	_, err := Parse([]byte(`{"broken":`))
	require.ErrorIs(t, err, ErrInvalidDocument)

	_, err = Parse([]byte(`[1,2,3]`))
	require.ErrorIs(t, err, ErrNotObject)
}

func TestExists(t *testing.T) {
	s := mustParse(t, sampleDoc)
	base := "InternetGatewayDevice.LANDevice.1.WLANConfiguration.1."

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"value wrapper", base + "SSID", true},
		{"empty string value", base + "KeyPassphrase", true},
		{"object marker", "InternetGatewayDevice.LANDevice.1.WLANConfiguration.1", true},
		{"object name with trailing dot", "InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.", true},
		{"only type and timestamp", base + "BeaconType", false},
		{"bare scalar", base + "VendorRaw", true},
		{"null leaf", base + "Nulled", false},
		{"lenient attribute scan", base + "Writable", true},
		{"missing segment", base + "WEPKey", false},
		{"missing intermediate", "InternetGatewayDevice.LANDevice.2.WLANConfiguration.1.SSID", false},
		{"descend into scalar", "_id.foo", false},
		{"empty path", "", false},
		{"other dialect", "Device.WiFi.SSID.1.SSID", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Exists(s, tt.path))
		})
	}
}

func TestExists_NilSnapshot(t *testing.T) {
	var s *Snapshot

	assert.False(t, s.Exists("InternetGatewayDevice"))
	assert.False(t, s.HasRoot(RootTR098))

	_, ok := s.Value("_id")
	assert.False(t, ok)
}

func TestValue(t *testing.T) {
	s := mustParse(t, sampleDoc)

	v, ok := s.Value("InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.SSID")
	require.True(t, ok)
	assert.Equal(t, "home-net", v)

	v, ok = s.Value("InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.VendorRaw")
	require.True(t, ok)
	assert.Equal(t, "bare-value", v)

	_, ok = s.Value("InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.BeaconType")
	assert.False(t, ok)

	v, ok = s.Value("_tags.1")
	require.True(t, ok)
	assert.Equal(t, "fiber", v)

	node, ok := s.Lookup("InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.SSID")
	require.True(t, ok)
	assert.Equal(t, "xsd:string", node.ParamType())
}

func TestNumbersKeepTheirSourceText(t *testing.T) {
	s := mustParse(t, `{"a":{"_value":14000},"b":{"_value":-21.50},"c":{"_value":true}}`)

	v, _ := s.Value("a")
	assert.Equal(t, "14000", v)

	v, _ = s.Value("b")
	assert.Equal(t, "-21.50", v)

	node, _ := s.Lookup("c")
	assert.True(t, node.Truthy())
}

func TestKeysPreserveDocumentOrder(t *testing.T) {
	s := mustParse(t, `{"z":1,"a":2,"m":3}`)
	assert.Equal(t, []string{"z", "a", "m"}, s.Root().Keys())
}

func TestHasRoot(t *testing.T) {
	s := mustParse(t, `{"Device":{"_object":true}}`)

	assert.True(t, s.HasRoot(RootTR181))
	assert.False(t, s.HasRoot(RootTR098))
	assert.Equal(t, "TR-181", s.Dialect())

	both := mustParse(t, `{"InternetGatewayDevice":{},"Device":{}}`)
	assert.Equal(t, "TR-098+TR-181", both.Dialect())

	var absent *Snapshot
	assert.Equal(t, "", absent.Dialect())
}

func TestNodeRelativeLookup(t *testing.T) {
	s := mustParse(t, `{"A":{"B":{"C":{"_value":"v"},"D":{"_type":"xsd:string"}}}}`)

	b, ok := s.Lookup("A.B")
	require.True(t, ok)

	v, ok := b.Value("C")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	assert.True(t, b.Exists("C"))
	assert.False(t, b.Exists("D"))
	assert.False(t, b.Exists("E.F"))

	var nilNode *Node
	_, ok = nilNode.Lookup("C")
	assert.False(t, ok)
}

func TestExistsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	s := mustParse(t, sampleDoc)

	properties.Property("absent snapshot never reports a path", prop.ForAll(
		func(segments []string) bool {
			var absent *Snapshot
			return !absent.Exists(strings.Join(segments, "."))
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("an unknown segment anywhere hides the path", prop.ForAll(
		func(segment string, position int) bool {
			parts := strings.Split("InternetGatewayDevice.LANDevice.1.WLANConfiguration.1.SSID", ".")
			parts[position%len(parts)] = "x" + segment

			return !s.Exists(strings.Join(parts, "."))
		},
		gen.AlphaString(),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
