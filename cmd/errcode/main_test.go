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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/apis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { errcode.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "errcode.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "", "inspect", "404NotFound")
	require.NoError(t, err)

	var d apis.ErrorDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, apis.ErrorDescriptor{
		Code:       "404NotFound",
		SubCode:    "NotFound",
		Valid:      true,
		HTTPStatus: 404,
		GRPCCode:   int(codes.NotFound),
		GRPCName:   "NOT_FOUND",
	}, d)
}

func TestInspect_Malformed(t *testing.T) {
	out, stderr, err := run(t, "", "inspect", "abcXYZ")
	require.NoError(t, err)

	assert.Contains(t, out, `"valid": false`)
	assert.Contains(t, out, `"http_status": 500`)
	assert.Contains(t, stderr, "status derivation failed")
}

func TestInspect_TooShort(t *testing.T) {
	_, _, err := run(t, "", "inspect", "40")
	assert.Error(t, err)
}

func TestInspect_ConfigFile(t *testing.T) {
	cfg := writeConfig(t, `
log:
  level: error
mapper:
  overrides:
    "409": ALREADY_EXISTS
  prefixes:
    - status: 503
      prefix: DB
      code: unavailable
`)

	out, _, err := run(t, "", "--config", cfg, "inspect", "--explain", "409Dup", "503DBTimeout")
	require.NoError(t, err)

	assert.Contains(t, out, `"grpc_code": 6`)
	assert.Contains(t, out, "grpc: source=override -> ALREADY_EXISTS(6)")
	assert.Contains(t, out, `grpc: source=prefix pattern="DB" -> UNAVAILABLE(14)`)
}

func TestConfig_InvalidGRPCCode(t *testing.T) {
	cfg := writeConfig(t, `
mapper:
  overrides:
    "409": NOPE
`)
	_, _, err := run(t, "", "--config", cfg, "inspect", "409Dup")
	assert.Error(t, err)
}

func TestConfig_EnvLogLevel(t *testing.T) {
	t.Setenv("ERRCODE_LOG_LEVEL", "loud")

	_, _, err := run(t, "", "inspect", "404X")
	assert.ErrorContains(t, err, "unrecognized level")
}

func TestRewrite(t *testing.T) {
	for _, tc := range []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "status", args: []string{"404NotFound", "--status", "410"}, want: "410NotFound"},
		{name: "sub", args: []string{"404-AB", "--sub", "LongerSubCode"}, want: "404LongerSubCode"},
		{name: "both", args: []string{"abcXYZ", "--status", "503", "--sub", "DB"}, want: "503DB"},
		{name: "nothing", args: []string{"404-AB"}, want: "404-AB"},
		{name: "wide status", args: []string{"404-AB", "--status", "1000"}, wantErr: true},
		{name: "out of range", args: []string{"404-AB", "--status", "99"}, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, "", append([]string{"rewrite"}, tc.args...)...)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want+"\n", out)
		})
	}
}

func TestDecode_Stdin(t *testing.T) {
	out, _, err := run(t, `{"code":"abcXYZ","message":"m","result":{"n":1}}`, "decode", "--status", "404", "-")
	require.NoError(t, err)

	var got struct {
		Code       string          `json:"code"`
		HTTPStatus int             `json:"http_status"`
		Message    string          `json:"message"`
		Result     json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "404XYZ", got.Code)
	assert.Equal(t, 404, got.HTTPStatus)
	assert.Equal(t, "m", got.Message)
	assert.JSONEq(t, `{"n":1}`, string(got.Result))
}

func TestDecode_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"code":"429Quota","message":"slow"}`), 0644))

	out, _, err := run(t, "", "decode", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"code": "429Quota"`)
	assert.NotContains(t, out, `"result"`)
}

func TestDecode_Malformed(t *testing.T) {
	_, _, err := run(t, "not json", "decode")
	assert.ErrorIs(t, err, errcode.ErrMalformedResponse)
}

func TestParseGRPCCode(t *testing.T) {
	for in, want := range map[string]codes.Code{
		"NOT_FOUND":   codes.NotFound,
		"NotFound":    codes.NotFound,
		"unavailable": codes.Unavailable,
		"CANCELLED":   codes.Canceled,
		"14":          codes.Unavailable,
		"OK":          codes.OK,
	} {
		got, err := parseGRPCCode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "17", "NOPE"} {
		_, err := parseGRPCCode(in)
		assert.Error(t, err, in)
	}
}
