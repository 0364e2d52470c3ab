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

import "strings"

// Kind identifies the shape of a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindObject
)

// ScalarKind records the JSON type a scalar was decoded from.
type ScalarKind uint8

const (
	ScalarString ScalarKind = iota
	ScalarNumber
	ScalarBool
)

// Attribute keys the ACS attaches to parameter and object nodes.
const (
	AttrValue     = "_value"
	AttrType      = "_type"
	AttrTimestamp = "_timestamp"
	AttrObject    = "_object"
	AttrWritable  = "_writable"
)

// Node is one element of a device parameter tree. A node is either null,
// a scalar, or an object whose children keep document order.
type Node struct {
	kind     Kind
	scalar   ScalarKind
	text     string
	children map[string]*Node
	keys     []string
}

// NewScalar returns a scalar node.
func NewScalar(kind ScalarKind, text string) *Node {
	return &Node{kind: KindScalar, scalar: kind, text: text}
}

// NewNull returns a null node.
func NewNull() *Node {
	return &Node{kind: KindNull}
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{kind: KindObject, children: make(map[string]*Node)}
}

// Set attaches child under key. Re-setting a key keeps its original position.
func (n *Node) Set(key string, child *Node) {
	if n == nil || n.kind != KindObject {
		return
	}

	if child == nil {
		child = NewNull()
	}

	if _, ok := n.children[key]; !ok {
		n.keys = append(n.keys, key)
	}

	n.children[key] = child
}

// Kind reports the node kind. A nil node is null.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}

	return n.kind
}

func (n *Node) IsNull() bool   { return n.Kind() == KindNull }
func (n *Node) IsObject() bool { return n.Kind() == KindObject }
func (n *Node) IsScalar() bool { return n.Kind() == KindScalar }

// ScalarKind reports the decoded JSON type of a scalar node.
func (n *Node) ScalarKind() ScalarKind {
	if n == nil {
		return ScalarString
	}

	return n.scalar
}

// Text returns the textual form of a scalar node, or "" for anything else.
func (n *Node) Text() string {
	if n.Kind() != KindScalar {
		return ""
	}

	return n.text
}

// Child returns the direct child stored under key.
func (n *Node) Child(key string) (*Node, bool) {
	if n.Kind() != KindObject {
		return nil, false
	}

	child, ok := n.children[key]

	return child, ok
}

// Keys returns the child keys of an object node in document order.
func (n *Node) Keys() []string {
	if n.Kind() != KindObject {
		return nil
	}

	out := make([]string, len(n.keys))
	copy(out, n.keys)

	return out
}

// Lookup walks a dot-delimited path relative to n. It is the single
// traversal primitive behind existence probing and value extraction.
func (n *Node) Lookup(path string) (*Node, bool) {
	path = strings.TrimSuffix(path, ".")
	if n == nil || path == "" {
		return nil, false
	}

	node := n

	for _, segment := range strings.Split(path, ".") {
		child, ok := node.Child(segment)
		if !ok {
			return nil, false
		}

		node = child
	}

	return node, true
}

// Value returns the parameter value at a path relative to n.
func (n *Node) Value(path string) (string, bool) {
	node, ok := n.Lookup(path)
	if !ok {
		return "", false
	}

	return node.Param()
}

// Exists reports whether a path relative to n is populated.
func (n *Node) Exists(path string) bool {
	node, ok := n.Lookup(path)

	return ok && node.Populated()
}

// Param returns the TR-069 value carried by the node. Objects yield their
// _value attribute; a bare scalar yields itself.
func (n *Node) Param() (string, bool) {
	switch n.Kind() {
	case KindScalar:
		return n.text, true
	case KindObject:
		v, ok := n.children[AttrValue]
		if !ok || v.Kind() != KindScalar {
			return "", false
		}

		return v.text, true
	default:
		return "", false
	}
}

// ParamType returns the _type attribute of a parameter node.
func (n *Node) ParamType() string {
	t, ok := n.Child(AttrType)
	if !ok {
		return ""
	}

	return t.Text()
}

// Field returns the parameter value of a direct child.
func (n *Node) Field(key string) (string, bool) {
	child, ok := n.Child(key)
	if !ok {
		return "", false
	}

	return child.Param()
}

// Truthy reports whether the node holds a boolean-ish true value.
func (n *Node) Truthy() bool {
	v, ok := n.Param()
	if !ok {
		return false
	}

	return IsTrue(v)
}

// IsTrue interprets TR-069 boolean encodings.
func IsTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on", "enabled":
		return true
	default:
		return false
	}
}

// Populated reports whether the node denotes a populated parameter or
// object. Firmware that omits the _value wrapper is accepted through a
// lenient scan of the remaining attributes.
func (n *Node) Populated() bool {
	switch n.Kind() {
	case KindScalar:
		return true
	case KindObject:
		if v, ok := n.children[AttrValue]; ok && !v.IsNull() {
			return true
		}

		if o, ok := n.children[AttrObject]; ok && o.Truthy() {
			return true
		}

		for _, key := range n.keys {
			if key == AttrTimestamp || key == AttrType {
				continue
			}

			if !n.children[key].IsNull() {
				return true
			}
		}

		return false
	default:
		return false
	}
}
