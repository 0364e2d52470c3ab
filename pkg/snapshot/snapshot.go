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

// Package snapshot models the device parameter tree returned by the ACS and
// provides the single traversal primitive used for existence probing and
// value extraction.
package snapshot

import (
	"strconv"

	"github.com/tidwall/gjson"
)

const (
	// RootTR098 is the top-level key of the InternetGatewayDevice data model.
	RootTR098 = "InternetGatewayDevice"
	// RootTR181 is the top-level key of the Device:2 data model.
	RootTR181 = "Device"

	maxDepth = 128
)

// Snapshot is a read-only device document. A nil *Snapshot stands for
// "no device data available" and every accessor tolerates it.
type Snapshot struct {
	root *Node
}

// New wraps an already built object node.
func New(root *Node) *Snapshot {
	if root == nil || !root.IsObject() {
		root = NewObject()
	}

	return &Snapshot{root: root}
}

// Parse decodes an ACS device document.
func Parse(data []byte) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}

	return FromResult(gjson.ParseBytes(data))
}

// FromResult builds a snapshot from an already located gjson value. The
// ACS query endpoint returns an array of documents; callers pick the
// element before handing it over.
func FromResult(res gjson.Result) (*Snapshot, error) {
	if !res.IsObject() {
		return nil, ErrNotObject
	}

	return &Snapshot{root: fromResult(res, 0)}, nil
}

func fromResult(res gjson.Result, depth int) *Node {
	if depth > maxDepth {
		return NewNull()
	}

	switch res.Type {
	case gjson.Null:
		return NewNull()
	case gjson.True, gjson.False:
		return NewScalar(ScalarBool, strconv.FormatBool(res.Bool()))
	case gjson.Number:
		return NewScalar(ScalarNumber, res.Raw)
	case gjson.String:
		return NewScalar(ScalarString, res.Str)
	case gjson.JSON:
		obj := NewObject()
		index := 0

		res.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if res.IsArray() {
				name = strconv.Itoa(index)
				index++
			}

			obj.Set(name, fromResult(value, depth+1))

			return true
		})

		return obj
	default:
		return NewNull()
	}
}

// Root returns the document root, or nil for an absent snapshot.
func (s *Snapshot) Root() *Node {
	if s == nil {
		return nil
	}

	return s.root
}

// HasRoot reports whether the document carries the given top-level key.
func (s *Snapshot) HasRoot(key string) bool {
	if s == nil {
		return false
	}

	_, ok := s.root.Child(key)

	return ok
}

// Lookup walks a dot-delimited path from the document root. A single
// trailing dot, as used by TR-069 object names, is ignored.
func (s *Snapshot) Lookup(path string) (*Node, bool) {
	if s == nil {
		return nil, false
	}

	return s.root.Lookup(path)
}

// Exists reports whether path denotes a populated parameter or object.
func (s *Snapshot) Exists(path string) bool {
	node, ok := s.Lookup(path)
	if !ok {
		return false
	}

	return node.Populated()
}

// Value returns the parameter value at path.
func (s *Snapshot) Value(path string) (string, bool) {
	node, ok := s.Lookup(path)
	if !ok {
		return "", false
	}

	return node.Param()
}

// Exists is the free-function form of (*Snapshot).Exists.
func Exists(s *Snapshot, path string) bool {
	return s.Exists(path)
}

// Dialect names the data models the document carries: "TR-098", "TR-181",
// "TR-098+TR-181", or "" when neither root is present.
func (s *Snapshot) Dialect() string {
	tr098, tr181 := s.HasRoot(RootTR098), s.HasRoot(RootTR181)

	switch {
	case tr098 && tr181:
		return "TR-098+TR-181"
	case tr098:
		return "TR-098"
	case tr181:
		return "TR-181"
	default:
		return ""
	}
}
