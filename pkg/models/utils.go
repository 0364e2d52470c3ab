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
	"errors"
	"reflect"
	"strings"
)

// Redacted replaces the value of a populated sensitive field.
const Redacted = "[REDACTED]"

var errNotStruct = errors.New("input must be a struct or pointer to struct")

// FilterSensitiveFields converts a struct into a map keyed by JSON field
// name. Fields tagged `sensitive:"true"` are replaced with Redacted when
// set and omitted when empty, so audit records show that a secret was
// supplied without carrying it.
func FilterSensitiveFields(input interface{}) (map[string]interface{}, error) {
	if input == nil {
		return map[string]interface{}{}, nil
	}

	rv := reflect.ValueOf(input)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return map[string]interface{}{}, nil
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, errNotStruct
	}

	out, _ := filterValue(rv).(map[string]interface{})

	return out, nil
}

func filterValue(rv reflect.Value) interface{} {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return filterStruct(rv)
	case reflect.Slice, reflect.Array:
		items := make([]interface{}, rv.Len())
		for i := range items {
			items[i] = filterValue(rv.Index(i))
		}

		return items
	case reflect.Map:
		m := make(map[string]interface{}, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			if k, ok := iter.Key().Interface().(string); ok {
				m[k] = filterValue(iter.Value())
			}
		}

		return m
	default:
		if !rv.CanInterface() {
			return nil
		}

		return rv.Interface()
	}
}

func filterStruct(rv reflect.Value) map[string]interface{} {
	rt := rv.Type()
	out := make(map[string]interface{}, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name, skip := jsonName(field)
		if skip {
			continue
		}

		fv := rv.Field(i)

		if field.Tag.Get("sensitive") == "true" {
			if !fv.IsZero() {
				out[name] = Redacted
			}

			continue
		}

		out[name] = filterValue(fv)
	}

	return out
}

func jsonName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}

	return name, false
}
