/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		name        string
		lvl         string
		parsedLevel slog.Level
		hasErr      bool
	}{
		{
			name:   "Empty string",
			lvl:    "",
			hasErr: true,
		},
		{
			name:        "Uppercase level",
			lvl:         "DEBUG",
			parsedLevel: DebugLevel,
		},
		{
			name:        "Info",
			lvl:         "info",
			parsedLevel: InfoLevel,
		},
		{
			name:        "Warn",
			lvl:         "warn",
			parsedLevel: WarnLevel,
		},
		{
			name:        "Error",
			lvl:         "error",
			parsedLevel: ErrorLevel,
		},
		{
			name:        "Off",
			lvl:         "off",
			parsedLevel: OffLevel,
		},
		{
			name:   "Unknown",
			lvl:    "verbose",
			hasErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := ParseLevel(tc.lvl)
			assert.Equal(t, tc.parsedLevel, lvl)
			assert.Equal(t, tc.hasErr, err != nil)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	l, err := NewLogger(&buf, WarnLevel, "json")
	require.NoError(t, err)
	l.Info("dropped")
	l.Warn("kept", "code", "abcXYZ")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"code":"abcXYZ"`)

	buf.Reset()
	l, err = NewLogger(&buf, InfoLevel, "")
	require.NoError(t, err)
	l.Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "k=v")

	buf.Reset()
	l, err = NewLogger(&buf, OffLevel, "text")
	require.NoError(t, err)
	l.Error("silent")
	assert.Empty(t, buf.String())

	_, err = NewLogger(&buf, InfoLevel, "xml")
	assert.Error(t, err)
}
