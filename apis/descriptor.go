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

// ErrorDescriptor is a flat description of a packed code together with its
// resolved transport statuses. It is meant for diagnostics, structured logs
// and tooling, not for API responses (use ErrorView for those).
type ErrorDescriptor struct {
	// Code is the full packed code as received.
	Code string `json:"code"`

	// SubCode is the part of Code after the status prefix.
	SubCode string `json:"sub_code,omitempty"`

	// Valid reports whether the status prefix is well-formed. When false,
	// HTTPStatus holds the fallback status.
	Valid bool `json:"valid"`

	// HTTPStatus is the derived (or fallback) HTTP status.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the resolved gRPC status code as integer.
	GRPCCode int `json:"grpc_code"`

	// GRPCName is the canonical upper-case name of GRPCCode.
	GRPCName string `json:"grpc_name"`

	// Message is the error message, if any.
	Message string `json:"message,omitempty"`
}
