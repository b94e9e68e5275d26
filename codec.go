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
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/errcode/code"
	"github.com/go-playground/validator/v10"
)

// ErrMalformedResponse is returned when a transport response cannot be
// turned back into an Error: empty or non-JSON body, missing fields, a code
// shorter than the status prefix, or a result that does not decode into T.
var ErrMalformedResponse = errors.New("errcode: malformed error response")

// validate is shared; validator caches struct metadata per instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// outbound is the serialized shape of an Error.
type outbound[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Result  *T     `json:"result,omitempty"`
}

// inbound is the shape accepted on decode. Message is a pointer so that an
// empty message can be told apart from a missing one.
type inbound struct {
	Code    string          `json:"code" validate:"required,min=3"`
	Message *string         `json:"message" validate:"required"`
	Result  json.RawMessage `json:"result"`
}

// MarshalJSON implements json.Marshaler. The result field is omitted when
// no result is set.
func (e Error[T]) MarshalJSON() ([]byte, error) {
	out := outbound[T]{Code: e.code.String(), Message: e.message}
	if e.hasResult {
		r := e.result
		out.Result = &r
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. It applies the same checks as
// FromResponse but never rewrites the code. The cause is not part of the
// wire form and is cleared.
func (e *Error[T]) UnmarshalJSON(b []byte) error {
	d, err := decode[T](b)
	if err != nil {
		return err
	}
	*e = d
	return nil
}

// FromResponse reconstructs an Error from a received transport response.
//
// status is the transport status (e.g. the HTTP status line), body the raw
// response body. Failures wrap ErrMalformedResponse and are reported to the
// registered Observer; FromResponse never panics.
//
// When the body's status prefix is malformed but status is a valid status,
// the prefix is rewritten to status. A well-formed prefix always wins over
// the transport status.
func FromResponse[T any](status int, body []byte) (Error[T], error) {
	e, err := decode[T](body)
	if err != nil {
		reportDecodeFailure(err)
		return Error[T]{}, err
	}
	if code.Validate(e.code) != nil && code.ValidStatus(status) {
		if c, err := e.code.WithStatus(status); err == nil {
			log().Debug("errcode: repaired status prefix from transport status",
				"code", e.code.String(),
				"status", status,
			)
			e.code = c
		}
	}
	return e, nil
}

func decode[T any](body []byte) (Error[T], error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Error[T]{}, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	var in inbound
	if err := json.Unmarshal(body, &in); err != nil {
		return Error[T]{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validate.Struct(in); err != nil {
		return Error[T]{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	c, err := code.Parse(in.Code)
	if err != nil {
		return Error[T]{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	e := Error[T]{code: c, message: *in.Message}

	if raw := bytes.TrimSpace(in.Result); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		var r T
		if err := json.Unmarshal(raw, &r); err != nil {
			return Error[T]{}, fmt.Errorf("%w: result: %v", ErrMalformedResponse, err)
		}
		e = e.WithResult(r)
	}
	return e, nil
}
