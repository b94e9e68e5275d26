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

// Package mapper provides deterministic, immutable mappings from packed
// error codes (dirpx.dev/errcode/code) to gRPC status codes.
//
// # Overview
//
// A packed code such as "503DBTimeout" already carries its HTTP status in
// the prefix. gRPC servers still need a google.golang.org/grpc/codes value,
// and the right choice sometimes depends on the sub-code: "503DB..." may be
// Unavailable while "503Quota..." is better reported as ResourceExhausted.
// Package mapper resolves that with immutable snapshots: a Mapper is built
// once from options (defaults, overrides, sub-code prefix rules) and is safe
// for concurrent reuse.
//
// # Resolution model
//
// For a (status, sub-code) pair a Mapper resolves, in order:
//
//  1. exact override for the status;
//  2. per-status longest-prefix-match (LPM) on the sub-code;
//  3. per-status default (library or user-adjusted);
//  4. class fallback: 4xx FailedPrecondition, 5xx Internal, anything else
//     Unknown. codes.OK is never produced by the fallback.
//
// Prefix rules are character-based; '?' matches exactly one character:
//
//	WithGRPCPrefix(503, "DB", int(codes.Unavailable))
//	WithGRPCPrefix(503, "Q?ota", int(codes.ResourceExhausted))
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithGRPCOverride(409, int(codes.AlreadyExists)),
//	    mapper.WithGRPCPrefix(503, "Quota", int(codes.ResourceExhausted)),
//	)
//	if err != nil {
//	    // invalid status, gRPC code or prefix
//	}
//	st := m.Status(e) // st.HTTP == e.StatusCode()
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a pair was resolved.
// It is intended for inspection and logging, not for stable machine parsing.
package mapper
