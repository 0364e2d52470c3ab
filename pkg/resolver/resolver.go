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

// Package resolver decides which concrete parameter paths a write should
// target for a device, given what its snapshot reports.
package resolver

import (
	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

// Hints records which data model roots a snapshot advertises.
type Hints struct {
	TR098 bool
	TR181 bool
}

// DetectHints inspects the top-level keys. Without a snapshot both
// dialects are assumed.
func DetectHints(s *snapshot.Snapshot) Hints {
	if s == nil {
		return Hints{TR098: true, TR181: true}
	}

	return Hints{
		TR098: s.HasRoot(snapshot.RootTR098),
		TR181: s.HasRoot(snapshot.RootTR181),
	}
}

// AllowsFallback reports whether fallback paths of dialect d may be
// offered. TR-098 remains the default when neither root is present.
func (h Hints) AllowsFallback(d catalog.Dialect) bool {
	switch d {
	case catalog.TR098:
		return h.TR098 || !h.TR181
	case catalog.TR181:
		return h.TR181
	default:
		return false
	}
}

// Resolve returns the ordered paths to write.
//
// Without a snapshot every plausible path is returned (candidates, then
// the remaining fallbacks). With a snapshot only candidates that exist are
// kept, in candidate order; when none exist the fallback list is used so a
// write is still attempted.
func Resolve(candidates, fallback []string, s *snapshot.Snapshot) []string {
	if s == nil {
		return dedupe(candidates, fallback)
	}

	present := make([]string, 0, len(candidates))

	for _, p := range candidates {
		if s.Exists(p) {
			present = append(present, p)
		}
	}

	if len(present) > 0 {
		return dedupe(present)
	}

	return dedupe(fallback)
}

// ResolveSetting expands a catalog setting for one WLAN instance and
// resolves it. Fallback paths are gated by the dialect hints.
func ResolveSetting(setting catalog.Setting, index int, hints Hints, s *snapshot.Snapshot) []string {
	candidates := make([]string, 0, len(setting.Candidates))
	for _, p := range setting.Candidates {
		candidates = append(candidates, p.Expand(index))
	}

	fallback := make([]string, 0, len(setting.Fallback))

	for _, p := range setting.Fallback {
		if hints.AllowsFallback(p.Dialect) {
			fallback = append(fallback, p.Expand(index))
		}
	}

	return Resolve(candidates, fallback, s)
}

func dedupe(lists ...[]string) []string {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	out := make([]string, 0, total)
	seen := make(map[string]struct{}, total)

	for _, l := range lists {
		for _, p := range l {
			if _, ok := seen[p]; ok {
				continue
			}

			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	return out
}
