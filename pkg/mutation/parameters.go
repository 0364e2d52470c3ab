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

package mutation

import (
	"fmt"
	"strings"

	"github.com/carverauto/cpeconfig/pkg/models"
)

// BuildParameterWrites turns caller supplied values into a write batch.
// Order is kept, exact duplicates are dropped and a missing type becomes
// xsd:string.
func BuildParameterWrites(values []models.ParameterInput) ([]models.ParameterWrite, error) {
	if len(values) == 0 {
		return nil, ErrNoParameters
	}

	writes := make([]models.ParameterWrite, 0, len(values))
	seen := make(map[models.ParameterWrite]struct{}, len(values))

	for i, v := range values {
		path := strings.TrimSpace(v.Path)
		if path == "" {
			return nil, fmt.Errorf("%w: value %d", ErrEmptyPath, i)
		}

		if strings.HasSuffix(path, ".") {
			return nil, fmt.Errorf("%w: %s", ErrObjectPath, path)
		}

		t := v.Type
		if t == "" {
			t = models.XSDString
		}

		if !models.IsKnownXSDType(t) {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownType, t, path)
		}

		w := models.ParameterWrite{Path: path, Value: v.Value, Type: t}
		if _, dup := seen[w]; dup {
			continue
		}

		seen[w] = struct{}{}
		writes = append(writes, w)
	}

	return writes, nil
}
