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

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sanitizeInner struct {
	Password string `json:"password" sensitive:"true"`
	Host     string `json:"host"`
}

type sanitizeTarget struct {
	APIKey   string         `json:"api_key" sensitive:"true"`
	Listen   string         `json:"listen_addr"`
	Database *sanitizeInner `json:"database"`
}

func TestSanitize_RemovesSensitiveFields(t *testing.T) {
	cfg := &sanitizeTarget{
		APIKey:   "k3y",
		Listen:   ":8080",
		Database: &sanitizeInner{Password: "hunter2", Host: "db"},
	}

	out, err := Sanitize(cfg)
	require.NoError(t, err)

	s := string(out)
	assert.False(t, strings.Contains(s, "k3y"))
	assert.False(t, strings.Contains(s, "hunter2"))
	assert.Contains(t, s, `"listen_addr":":8080"`)
	assert.Contains(t, s, `"host":"db"`)
}

func TestSanitize_RejectsNonStruct(t *testing.T) {
	_, err := Sanitize("plain")
	require.Error(t, err)
}
