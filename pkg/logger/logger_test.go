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

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New(&Config{Level: "warn"})
	require.NoError(t, err)

	impl, ok := l.(*zlogger)
	require.True(t, ok)
	assert.Equal(t, zerolog.WarnLevel, impl.logger.GetLevel())

	l, err = New(&Config{Level: "warn", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.(*zlogger).logger.GetLevel())

	_, err = New(&Config{Level: "loud"})
	assert.Error(t, err)
}

func TestSetDebug(t *testing.T) {
	l, err := New(&Config{})
	require.NoError(t, err)

	l.SetDebug(true)
	assert.Equal(t, zerolog.DebugLevel, l.(*zlogger).logger.GetLevel())

	l.SetDebug(false)
	assert.Equal(t, zerolog.InfoLevel, l.(*zlogger).logger.GetLevel())
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer

	l := Component(NewWriterLogger(&buf, zerolog.InfoLevel), "acs")
	l.Info().Str("device_id", "abc").Msg("fetched")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "acs", line["component"])
	assert.Equal(t, "abc", line["device_id"])
	assert.Equal(t, "fetched", line["message"])
}

func TestNop(t *testing.T) {
	assert.NotNil(t, Nop(nil))

	l := NewTestLogger()
	assert.Same(t, l, Nop(l))
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEBUG", "yes")

	config := DefaultConfig()
	assert.Equal(t, "debug", config.Level)
	assert.True(t, config.Debug)
	assert.Equal(t, "stdout", config.Output)
}
