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
	"strings"

	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/models"
)

// Source is anything values can be read from by path: a whole snapshot or
// a subtree node.
type Source interface {
	Value(path string) (string, bool)
}

// Accessor yields one candidate value for a field.
type Accessor func(Source) (string, bool)

// Path reads a parameter value. Blank values count as missing.
func Path(p string) Accessor {
	return func(src Source) (string, bool) {
		v, ok := src.Value(p)
		if !ok {
			return "", false
		}

		v = strings.TrimSpace(v)

		return v, v != ""
	}
}

// Chain turns each path of c into an Accessor, keeping order.
func Chain(c catalog.Chain) []Accessor {
	out := make([]Accessor, 0, len(c))
	for _, p := range c {
		out = append(out, Path(p))
	}

	return out
}

// Coalesce returns the first value any accessor yields.
func Coalesce(src Source, accessors ...Accessor) (string, bool) {
	for _, a := range accessors {
		if v, ok := a(src); ok {
			return v, true
		}
	}

	return "", false
}

// first folds a chain over src, defaulting to NA.
func first(src Source, c catalog.Chain) string {
	if v, ok := Coalesce(src, Chain(c)...); ok {
		return v
	}

	return models.NA
}

func present(v string) bool {
	return v != "" && v != models.NA
}
