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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// defaultGRPC defines the library's built-in gRPC mappings for well-known
// HTTP statuses. The table follows the canonical google.rpc.Code <-> HTTP
// correspondence, read in the HTTP -> gRPC direction. Callers may override
// any entry at build time.
var defaultGRPC = map[int]codes.Code{
	// 4xx: client, protocol and resource issues.
	http.StatusBadRequest:            codes.InvalidArgument,
	http.StatusUnauthorized:          codes.Unauthenticated,
	http.StatusForbidden:             codes.PermissionDenied,
	http.StatusNotFound:              codes.NotFound,
	http.StatusMethodNotAllowed:      codes.Unimplemented,
	http.StatusRequestTimeout:        codes.DeadlineExceeded,
	http.StatusConflict:              codes.Aborted,
	http.StatusGone:                  codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed:    codes.FailedPrecondition,
	http.StatusRequestEntityTooLarge: codes.ResourceExhausted,
	http.StatusUnprocessableEntity:   codes.InvalidArgument,
	http.StatusTooEarly:              codes.FailedPrecondition,
	http.StatusTooManyRequests:       codes.ResourceExhausted,
	// 499 is the non-standard nginx "client closed request".
	499: codes.Canceled,

	// 5xx: server, dependency and transient issues.
	http.StatusInternalServerError: codes.Internal,
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}

// classFallback returns the gRPC code used when a status has no rule at all.
// It never returns codes.OK: an error must stay an error on the wire, even
// when its status is informational or successful.
func classFallback(status int) codes.Code {
	switch {
	case status >= 400 && status < 500:
		return codes.FailedPrecondition
	case status >= 500 && status < 600:
		return codes.Internal
	default:
		return codes.Unknown
	}
}
