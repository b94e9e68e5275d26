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
	"encoding/json"
	"fmt"
	"reflect"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
)

// ErrorCode is the capability every packed error type exposes.
//
// T is the result payload type, E is the concrete error type itself, so that
// the copy-producing mutators can return the implementing type.
//
// Implementations MUST keep the WithX methods non-mutating: each returns a
// new value and leaves the receiver untouched.
//
// Serialization goes through json.Marshaler. For deserialization *E must
// implement json.Unmarshaler and accept what MarshalJSON produced; values
// received from a transport are rebuilt with FromResponse, which also
// reports malformed bodies as errors.
type ErrorCode[T any, E any] interface {
	apis.Coded
	json.Marshaler

	// Result returns a copy of the optional payload and whether it is set.
	Result() (T, bool)

	// WithStatusCode returns a value whose code prefix renders status.
	// A status that does not render to exactly 3 digits within 100..599
	// is rejected with an error wrapping code.ErrStatusInvalid.
	WithStatusCode(status int) (E, error)

	// WithCode returns a value whose sub-code (everything after the status
	// prefix) is replaced by sub.
	WithCode(sub string) E

	// WithMessage returns a value with the message replaced.
	WithMessage(message string) E

	// WithResult returns a value with the result set to value.
	WithResult(value T) E
}

// Cloner is implemented by result payloads that need an explicit deep copy.
// When T implements Cloner[T], Error.Result returns value.Clone().
type Cloner[T any] interface {
	Clone() T
}

var (
	_ ErrorCode[int, Error[int]] = Error[int]{}
	_ json.Unmarshaler           = (*Error[int])(nil)
	_ apis.ViewProvider          = Error[int]{}
)

// Error is the reference implementation of ErrorCode.
//
// The zero value has an empty code; its StatusCode is the fallback status.
type Error[T any] struct {
	code      code.Code
	message   string
	result    T
	hasResult bool

	// cause is the wrapped underlying error. It is not serialized.
	cause error
}

// New parses packed and builds an Error with the given message.
//
// Only the length of packed is checked (at least 3 characters); a malformed
// status prefix is accepted and handled by StatusCode's fallback.
func New[T any](packed, message string, opts ...Option[T]) (Error[T], error) {
	c, err := code.Parse(packed)
	if err != nil {
		return Error[T]{}, err
	}
	return E(c, message, opts...), nil
}

// MustNew is the panic-on-error variant of New, handy for package-level
// sentinel errors.
func MustNew[T any](packed, message string, opts ...Option[T]) Error[T] {
	e, err := New(packed, message, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// E builds an Error from an already parsed code and applies opts in order.
//
// Usage:
//
//	c := code.MustNew(409, "Version")
//	return errcode.E(c, "stale write", errcode.WithResultOption(current))
func E[T any](c code.Code, message string, opts ...Option[T]) Error[T] {
	e := Error[T]{code: c, message: message}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is "(code, message)" or, when a result is set,
// "(code, message, result)".
func (e Error[T]) Error() string {
	if e.hasResult {
		return fmt.Sprintf("(%s, %s, %v)", e.code, e.message, e.result)
	}
	return fmt.Sprintf("(%s, %s)", e.code, e.message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e Error[T]) Unwrap() error { return e.cause }

// Is reports whether target is a coded error with the same packed code.
// Messages, results and causes are ignored, so package-level sentinels can
// be matched with errors.Is after WithMessage or WithResult.
func (e Error[T]) Is(target error) bool {
	t, ok := target.(apis.Coded)
	return ok && t.Code() == e.code.String()
}

// StatusCode derives the status from the code prefix.
//
// On any format violation it returns code.FallbackStatus, logs a warning and
// notifies the registered Observer. It never fails.
func (e Error[T]) StatusCode() int {
	s, err := e.code.Status()
	if err != nil {
		reportStatusFallback(e.code.String(), err)
		return code.FallbackStatus
	}
	return s
}

// Status is the strict variant of StatusCode: it returns the parse error
// instead of falling back.
func (e Error[T]) Status() (int, error) {
	return e.code.Status()
}

// Code returns the full packed code.
func (e Error[T]) Code() string { return e.code.String() }

// PackedCode returns the parsed code.
func (e Error[T]) PackedCode() code.Code { return e.code }

// SubCode returns the part of the code after the status prefix.
func (e Error[T]) SubCode() string { return e.code.Sub() }

// Message returns the human-readable message.
func (e Error[T]) Message() string { return e.message }

// Result returns a copy of the optional payload.
func (e Error[T]) Result() (T, bool) {
	if !e.hasResult {
		var zero T
		return zero, false
	}
	if c, ok := any(e.result).(Cloner[T]); ok {
		return c.Clone(), true
	}
	return e.result, true
}

// WithStatusCode returns a copy of e whose code prefix renders status.
// On error the returned value equals the receiver.
func (e Error[T]) WithStatusCode(status int) (Error[T], error) {
	c, err := e.code.WithStatus(status)
	if err != nil {
		return e, err
	}
	e.code = c
	return e, nil
}

// WithCode returns a copy of e with the sub-code replaced. The status prefix
// is kept; sub may have any length.
func (e Error[T]) WithCode(sub string) Error[T] {
	e.code = e.code.WithSub(sub)
	return e
}

// WithMessage returns a copy of e with a replaced message.
func (e Error[T]) WithMessage(message string) Error[T] {
	e.message = message
	return e
}

// WithResult returns a copy of e carrying value as its result.
//
// A nil pointer, map, slice, interface, channel or func clears the result:
// it would be serialized as null, which decodes as "no result".
func (e Error[T]) WithResult(value T) Error[T] {
	if isNil(value) {
		var zero T
		e.result = zero
		e.hasResult = false
		return e
	}
	e.result = value
	e.hasResult = true
	return e
}

// WithCause returns a copy of e with the given underlying cause attached.
// If err is nil, e is returned unchanged.
func (e Error[T]) WithCause(err error) Error[T] {
	if err == nil {
		return e
	}
	e.cause = err
	return e
}

// ErrorView implements apis.ViewProvider.
func (e Error[T]) ErrorView() apis.ErrorView {
	v := apis.ErrorView{Code: e.code.String(), Message: e.message}
	if e.hasResult {
		v.Result = e.result
	}
	return v
}

// isNil reports whether v holds a nil value of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
