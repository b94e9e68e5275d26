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

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithGRPCDefault sets or replaces the library-level default gRPC code for
// the given HTTP status.
func WithGRPCDefault(status int, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[status] = grpc }
}

// WithGRPCOverride registers an exact gRPC override for the given status.
// Overrides take precedence over sub-code prefix rules and defaults.
func WithGRPCOverride(status int, grpc int) Option {
	return func(b *builder) { b.grpcOverride[status] = grpc }
}

// WithGRPCPrefix adds a longest-prefix-match rule evaluated against the
// sub-code of codes carrying the given status. A more specific prefix wins.
// Use '?' to match exactly one character.
func WithGRPCPrefix(status int, prefix string, grpc int) Option {
	return func(b *builder) {
		b.grpcPrefixes[status] = append(b.grpcPrefixes[status], prefixRule{prefix, grpc})
	}
}

// WithFallbackGRPC sets the code used for statuses outside 100..599.
func WithFallbackGRPC(grpc int) Option {
	return func(b *builder) { b.fallbackGRPC = grpc }
}
