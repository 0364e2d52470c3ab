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

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TR-069 xsd type annotations accepted on parameter writes.
const (
	XSDString      = "xsd:string"
	XSDBoolean     = "xsd:boolean"
	XSDUnsignedInt = "xsd:unsignedInt"
	XSDInt         = "xsd:int"
	XSDDateTime    = "xsd:dateTime"
)

// KnownXSDTypes lists the accepted type tags.
func KnownXSDTypes() []string {
	return []string{XSDString, XSDBoolean, XSDUnsignedInt, XSDInt, XSDDateTime}
}

// IsKnownXSDType reports whether t is an accepted type tag.
func IsKnownXSDType(t string) bool {
	for _, k := range KnownXSDTypes() {
		if k == t {
			return true
		}
	}

	return false
}

// ParameterWrite is one setParameterValues entry. It travels as the
// [path, value, type] array the ACS expects.
type ParameterWrite struct {
	Path  string
	Value string
	Type  string
}

// MarshalJSON encodes the write as a 3-element array.
func (w ParameterWrite) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{w.Path, w.Value, w.Type})
}

// UnmarshalJSON accepts [path, value] or [path, value, type].
func (w *ParameterWrite) UnmarshalJSON(b []byte) error {
	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("%w: %w", errInvalidParameterWrite, err)
	}

	switch len(parts) {
	case 2:
		*w = ParameterWrite{Path: parts[0], Value: parts[1], Type: XSDString}
	case 3:
		*w = ParameterWrite{Path: parts[0], Value: parts[1], Type: parts[2]}
	default:
		return fmt.Errorf("%w: got %d elements", errInvalidParameterWrite, len(parts))
	}

	return nil
}

var errInvalidParameterWrite = errors.New("invalid parameter write")
