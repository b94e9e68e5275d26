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

import (
	"strings"
	"unicode"

	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules that
// turn a packed code into transport statuses.
//
// The HTTP side is fully determined by the status prefix. The gRPC side is
// resolved from the HTTP status and, optionally, the sub-code.
type Mapper interface {
	// GRPCStatus returns the gRPC code for the given HTTP status and sub-code.
	GRPCStatus(status int, sub string) codes.Code

	// Status resolves both transports for a coded error in a single call.
	Status(c Coded) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(status int, sub string) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}

// CodeName returns the canonical upper snake case name of a gRPC code,
// e.g. "NOT_FOUND" or "DEADLINE_EXCEEDED".
func CodeName(c codes.Code) string {
	s := c.String()
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(s[i-1])) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
