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

package errcode

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"dirpx.dev/errcode/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu        sync.Mutex
	fallbacks []string
	decodes   []error
}

func (o *recordingObserver) StatusFallback(c string, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fallbacks = append(o.fallbacks, c)
}

func (o *recordingObserver) DecodeFailure(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.decodes = append(o.decodes, err)
}

// captureDiagnostics swaps the package logger and observer for the duration
// of the test. Tests using it must not run in parallel.
func captureDiagnostics(t *testing.T) (*bytes.Buffer, *recordingObserver) {
	t.Helper()
	var buf bytes.Buffer
	obs := &recordingObserver{}
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	SetObserver(obs)
	t.Cleanup(func() {
		SetLogger(nil)
		SetObserver(nil)
	})
	return &buf, obs
}

type items struct {
	IDs []int `json:"ids"`
}

func (i items) Clone() items {
	return items{IDs: append([]int(nil), i.IDs...)}
}

func TestStatusCode_ValidPrefixes(t *testing.T) {
	for _, tc := range []struct {
		packed string
		want   int
	}{
		{"404NotFound", 404},
		{"100", 100},
		{"200-partial", 200},
		{"599X", 599},
	} {
		t.Run(tc.packed, func(t *testing.T) {
			e := MustNew[int](tc.packed, "m")
			assert.Equal(t, tc.want, e.StatusCode())
		})
	}
}

func TestStatusCode_FallbackIsLoggedAndObserved(t *testing.T) {
	buf, obs := captureDiagnostics(t)

	for _, packed := range []string{"abcXYZ", "050XYZ", "999ZZZ"} {
		e := MustNew[int](packed, "m")
		assert.Equal(t, code.FallbackStatus, e.StatusCode(), packed)

		_, err := e.Status()
		assert.ErrorIs(t, err, code.ErrStatusInvalid, packed)
	}

	assert.Equal(t, []string{"abcXYZ", "050XYZ", "999ZZZ"}, obs.fallbacks)
	assert.Contains(t, buf.String(), "status derivation failed")
	assert.Contains(t, buf.String(), "code=abcXYZ")
}

func TestStatusCode_ZeroValue(t *testing.T) {
	captureDiagnostics(t)

	var e Error[string]
	assert.Equal(t, code.FallbackStatus, e.StatusCode())
	assert.Equal(t, "", e.Code())
}

func TestNew_TooShort(t *testing.T) {
	_, err := New[int]("40", "m")
	require.ErrorIs(t, err, code.ErrTooShort)

	assert.Panics(t, func() { MustNew[int]("4", "m") })
}

func TestAccessors(t *testing.T) {
	e := MustNew[int]("404NotFound", "missing")

	assert.Equal(t, "404NotFound", e.Code())
	assert.Equal(t, "NotFound", e.SubCode())
	assert.Equal(t, "missing", e.Message())
	assert.Equal(t, code.MustParse("404NotFound"), e.PackedCode())

	_, ok := e.Result()
	assert.False(t, ok)
}

func TestWithMessage_ChangesOnlyMessage(t *testing.T) {
	e := MustNew("409Version", "stale", WithResultOption(7))
	got := e.WithMessage("stale write")

	assert.Equal(t, "stale write", got.Message())
	assert.Equal(t, e.Code(), got.Code())
	r, ok := got.Result()
	assert.True(t, ok)
	assert.Equal(t, 7, r)

	assert.Equal(t, "stale", e.Message(), "receiver must not change")
}

func TestWithResult_ChangesOnlyResult(t *testing.T) {
	e := MustNew[int]("206Partial", "partial")
	got := e.WithResult(3)

	r, ok := got.Result()
	require.True(t, ok)
	assert.Equal(t, 3, r)
	assert.Equal(t, e.Code(), got.Code())
	assert.Equal(t, e.Message(), got.Message())

	_, ok = e.Result()
	assert.False(t, ok, "receiver must not change")
}

func TestWithStatusCode(t *testing.T) {
	e := MustNew("000ABC", "m", WithResultOption("r"))

	got, err := e.WithStatusCode(404)
	require.NoError(t, err)
	assert.Equal(t, "404ABC", got.Code())
	assert.Equal(t, "m", got.Message())
	r, _ := got.Result()
	assert.Equal(t, "r", r)
	assert.Equal(t, "000ABC", e.Code(), "receiver must not change")
}

func TestWithStatusCode_RejectsInvalidWidth(t *testing.T) {
	e := MustNew[int]("404ABC", "m")

	for _, status := range []int{5, 42, 1000, 600, 99} {
		got, err := e.WithStatusCode(status)
		assert.ErrorIs(t, err, code.ErrStatusInvalid, "status %d", status)
		assert.Equal(t, e.Code(), got.Code(), "status %d", status)
	}
}

func TestWithCode_ReplacesSubCode(t *testing.T) {
	e := MustNew[int]("404AB", "m")

	same := e.WithCode("CD")
	assert.Equal(t, "404CD", same.Code())

	longer := e.WithCode("NotFound")
	assert.Equal(t, "404NotFound", longer.Code())
	assert.Equal(t, 404, longer.StatusCode())

	empty := e.WithCode("")
	assert.Equal(t, "404", empty.Code())

	assert.Equal(t, "404AB", e.Code(), "receiver must not change")
}

func TestResult_ClonesWhenSupported(t *testing.T) {
	e := MustNew("206Partial", "partial", WithResultOption(items{IDs: []int{1, 2}}))

	r, ok := e.Result()
	require.True(t, ok)
	r.IDs[0] = 99

	again, _ := e.Result()
	assert.Equal(t, []int{1, 2}, again.IDs)
}

func TestError_Format(t *testing.T) {
	assert.Equal(t, "(404NotFound, missing)", MustNew[int]("404NotFound", "missing").Error())
	assert.Equal(t, "(206P, partial, 3)", MustNew("206P", "partial", WithResultOption(3)).Error())
}

func TestError_CauseAndIs(t *testing.T) {
	root := errors.New("root")
	notFound := MustNew[int]("404NotFound", "not found")

	e := notFound.WithMessage("item 42 not found").WithCause(root)

	assert.ErrorIs(t, e, root)
	assert.Equal(t, root, errors.Unwrap(e))
	assert.True(t, errors.Is(e, notFound))
	assert.False(t, errors.Is(e, MustNew[int]("404Gone", "gone")))

	assert.Equal(t, notFound, notFound.WithCause(nil))
}

func TestE_AppliesOptionsInOrder(t *testing.T) {
	root := errors.New("root")
	e := E(code.MustNew(503, "DB"), "db down",
		WithResultOption(1),
		WithResultOption(2),
		WithCauseOption[int](root),
	)

	r, _ := e.Result()
	assert.Equal(t, 2, r)
	assert.Equal(t, "503DB", e.Code())
	assert.ErrorIs(t, e, root)
}

func TestErrorView(t *testing.T) {
	v := MustNew[int]("404X", "m").ErrorView()
	assert.Equal(t, "404X", v.Code)
	assert.Nil(t, v.Result)

	v = MustNew("206X", "m", WithResultOption(0)).ErrorView()
	assert.Equal(t, 0, v.Result)
}

func TestConcurrentCopies(t *testing.T) {
	base := MustNew[int]("404AB", "m")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := base.WithResult(i).WithCode("CD")
			r, _ := e.Result()
			assert.Equal(t, i, r)
			assert.Equal(t, 404, e.StatusCode())
		}(i)
	}
	wg.Wait()
	assert.Equal(t, "404AB", base.Code())
}
