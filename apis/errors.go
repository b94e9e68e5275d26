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

package apis

// Coded is implemented by every error that carries a packed code.
//
// A packed code is a 3-character status prefix followed by a free-form
// sub-code, e.g. "404NotFound". See package dirpx.dev/errcode/code.
type Coded interface {
	error

	// StatusCode returns the HTTP-style status derived from the code prefix.
	// It MUST NOT fail: a malformed prefix yields the fallback status (500).
	StatusCode() int

	// Code returns the full packed code (prefix and sub-code).
	Code() string

	// Message returns the human-readable message.
	Message() string
}

// ViewProvider is implemented by errors that can produce a transport-friendly
// snapshot of themselves, including their optional result payload.
type ViewProvider interface {
	Coded

	// ErrorView returns the wire representation of the error.
	ErrorView() ErrorView
}

// Observer receives diagnostics from the errcode core. Implementations must
// be safe for concurrent use and must not block.
type Observer interface {
	// StatusFallback is called when a status could not be derived from
	// code and the fallback status was used instead.
	StatusFallback(code string, err error)

	// DecodeFailure is called when an inbound response could not be turned
	// back into an error value.
	DecodeFailure(err error)
}
