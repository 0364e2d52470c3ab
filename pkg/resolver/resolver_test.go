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

package resolver

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

const poolSize = 8

func poolPath(i int) string {
	return fmt.Sprintf("Root.P%d", i)
}

// buildSnapshot populates Root.P<i> for every index in present.
func buildSnapshot(present []int) *snapshot.Snapshot {
	root := snapshot.NewObject()
	parent := snapshot.NewObject()
	root.Set("Root", parent)

	for _, i := range present {
		leaf := snapshot.NewObject()
		leaf.Set(snapshot.AttrValue, snapshot.NewScalar(snapshot.ScalarString, "v"))
		parent.Set(fmt.Sprintf("P%d", i), leaf)
	}

	return snapshot.New(root)
}

func toPaths(idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, poolPath(i))
	}

	return out
}

func expectedUnion(candidates, fallback []string) []string {
	seen := map[string]bool{}
	out := []string{}

	for _, p := range append(append([]string{}, candidates...), fallback...) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	return out
}

func TestResolve_NoSnapshotReturnsUnion(t *testing.T) {
	got := Resolve([]string{"a", "b", "a"}, []string{"b", "c"}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestResolve_FiltersToExistingCandidates(t *testing.T) {
	s := buildSnapshot([]int{2, 0})

	got := Resolve(toPaths([]int{0, 1, 2}), toPaths([]int{5}), s)
	assert.Equal(t, toPaths([]int{0, 2}), got)
}

func TestResolve_FallsBackWhenNothingExists(t *testing.T) {
	s := buildSnapshot(nil)

	got := Resolve(toPaths([]int{0, 1}), toPaths([]int{3, 3, 4}), s)
	assert.Equal(t, toPaths([]int{3, 4}), got)
}

func TestResolve_EmptyFallback(t *testing.T) {
	got := Resolve([]string{"x"}, nil, buildSnapshot(nil))
	assert.Empty(t, got)
}

func TestDetectHints(t *testing.T) {
	assert.Equal(t, Hints{TR098: true, TR181: true}, DetectHints(nil))

	s, err := snapshot.Parse([]byte(`{"Device":{"_object":true}}`))
	require.NoError(t, err)
	assert.Equal(t, Hints{TR181: true}, DetectHints(s))

	s, err = snapshot.Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, Hints{}, DetectHints(s))
}

func TestAllowsFallback(t *testing.T) {
	tests := []struct {
		hints      Hints
		tr098, tr181 bool
	}{
		{Hints{}, true, false},
		{Hints{TR098: true}, true, false},
		{Hints{TR181: true}, false, true},
		{Hints{TR098: true, TR181: true}, true, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.tr098, tt.hints.AllowsFallback(catalog.TR098), "%+v", tt.hints)
		assert.Equal(t, tt.tr181, tt.hints.AllowsFallback(catalog.TR181), "%+v", tt.hints)
	}
}

func TestResolveSetting_TR181OnlyDevice(t *testing.T) {
	s, err := snapshot.Parse([]byte(`{"Device":{"WiFi":{"SSID":{"1":{"SSID":{"_value":"x"}}}}}}`))
	require.NoError(t, err)

	hints := DetectHints(s)

	got := ResolveSetting(catalog.SSID(), 1, hints, s)
	assert.Equal(t, []string{"Device.WiFi.SSID.1.SSID"}, got)

	// No TR-181 auth path exists and TR-098 fallbacks are gated off.
	assert.Empty(t, ResolveSetting(catalog.AuthMode(), 1, hints, s))
}

func TestResolveSetting_BothDialectsPreferTR098Order(t *testing.T) {
	s, err := snapshot.Parse([]byte(`{
		"InternetGatewayDevice":{"LANDevice":{"1":{"WLANConfiguration":{"2":{"SSID":{"_value":"a"}}}}}},
		"Device":{"WiFi":{"SSID":{"2":{"SSID":{"_value":"b"}}}}}
	}`))
	require.NoError(t, err)

	got := ResolveSetting(catalog.SSID(), 2, DetectHints(s), s)
	assert.Equal(t, []string{
		"InternetGatewayDevice.LANDevice.1.WLANConfiguration.2.SSID",
		"Device.WiFi.SSID.2.SSID",
	}, got)
}

func TestResolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)
	index := gen.IntRange(0, poolSize-1)

	properties.Property("absent snapshot yields the deduplicated union", prop.ForAll(
		func(c, f []int) bool {
			candidates, fallback := toPaths(c), toPaths(f)
			return reflect.DeepEqual(Resolve(candidates, fallback, nil), expectedUnion(candidates, fallback))
		},
		gen.SliceOf(index), gen.SliceOf(index),
	))

	properties.Property("existing candidates are kept in order and fallback is unused", prop.ForAll(
		func(c, f, present []int) bool {
			candidates, fallback := toPaths(c), toPaths(f)
			s := buildSnapshot(present)

			want := []string{}
			for _, p := range candidates {
				if s.Exists(p) {
					want = append(want, p)
				}
			}

			got := Resolve(candidates, fallback, s)
			if len(want) == 0 {
				return reflect.DeepEqual(got, expectedUnion(nil, fallback))
			}

			return reflect.DeepEqual(got, expectedUnion(want, nil))
		},
		gen.SliceOf(index), gen.SliceOf(index), gen.SliceOf(index),
	))

	properties.Property("resolution is deterministic", prop.ForAll(
		func(c, f, present []int) bool {
			s := buildSnapshot(present)
			return reflect.DeepEqual(
				Resolve(toPaths(c), toPaths(f), s),
				Resolve(toPaths(c), toPaths(f), s))
		},
		gen.SliceOf(index), gen.SliceOf(index), gen.SliceOf(index),
	))

	properties.TestingRun(t)
}
