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

// Package errcode implements packed application errors.
//
// An Error carries three things:
//
//   - a packed code such as "404NotFound": a 3-digit HTTP-style status
//     prefix followed by a free-form, domain-specific sub-code;
//   - a human-readable message;
//   - an optional typed result payload (partial success, fallback data).
//
// The status is never stored; it is derived on demand from the code prefix.
// StatusCode never fails: a malformed prefix yields code.FallbackStatus (500),
// logs a warning through log/slog and notifies the registered apis.Observer.
//
// Error is a value type. Every WithX method has a value receiver and returns
// a new Error; the receiver is never changed:
//
//	notFound := errcode.MustNew[Item]("404NotFound", "item not found")
//	e := notFound.WithMessage("item 42 not found")
//	e, err := e.WithStatusCode(410) // err != nil only for invalid statuses
//
// The wire form is a JSON object {"code", "message", "result"} where result
// is omitted when absent. FromResponse turns a received transport response
// back into an Error and reports malformed bodies as errors wrapping
// ErrMalformedResponse.
//
// Transport helpers live in subpackages: httpx (net/http and gin), grpcx
// (gRPC interceptor and client-side decoding) and mapper (HTTP status to
// gRPC code resolution).
package errcode
