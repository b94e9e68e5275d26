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
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw sub-code prefix (may contain the one-character
	// wildcard). It is validated when the per-status trie is built.
	prefix string
	// val is the gRPC code as int; converted to codes.Code in New().
	val int
}

type builder struct {
	// grpcDefaults holds per-status defaults (library table plus user changes).
	grpcDefaults map[int]int
	// grpcOverride holds exact per-status overrides (highest precedence).
	grpcOverride map[int]int
	// grpcPrefixes holds per-status LPM rules on the sub-code.
	grpcPrefixes map[int][]prefixRule

	// fallbackGRPC is used for statuses outside the valid range.
	fallbackGRPC int
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		grpcDefaults: make(map[int]int, len(defaultGRPC)),

		// overrides and prefixes are usually few
		grpcOverride: make(map[int]int),
		grpcPrefixes: make(map[int][]prefixRule),

		fallbackGRPC: int(codes.Internal),
	}
}
