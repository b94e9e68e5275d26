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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
	"dirpx.dev/errcode/mapper/internal/prefixtrie"
	"google.golang.org/grpc/codes"
)

// ErrInvalidRule is returned by New when an option refers to a status
// outside 100..599, an unknown gRPC code, or a malformed sub-code prefix.
var ErrInvalidRule = errors.New("mapper: invalid rule")

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults.
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Validate every status and gRPC code referenced by the options.
//  4. Build per-status prefix tries over sub-codes.
//  5. Freeze all maps into fresh copies.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults, copied into builder-owned maps.
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	if err := validateGRPC(b.fallbackGRPC); err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}
	grpcDefault, err := freeze(b.grpcDefaults)
	if err != nil {
		return nil, fmt.Errorf("mapper: default: %w", err)
	}
	grpcOverride, err := freeze(b.grpcOverride)
	if err != nil {
		return nil, fmt.Errorf("mapper: override: %w", err)
	}

	// (4) Build per-status sub-code tries.
	grpcTrie := make(map[int]*prefixtrie.Trie[codes.Code], len(b.grpcPrefixes))
	for status, rules := range b.grpcPrefixes {
		if len(rules) == 0 {
			continue
		}
		if !code.ValidStatus(status) {
			return nil, fmt.Errorf("mapper: prefix: %w: status %d", ErrInvalidRule, status)
		}
		t := prefixtrie.New[codes.Code]()
		for _, r := range rules {
			if err := validateGRPC(r.val); err != nil {
				return nil, fmt.Errorf("mapper: prefix %q for status %d: %w", r.prefix, status, err)
			}
			if err := t.Insert(r.prefix, codes.Code(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: prefix %q for status %d: %w: %v", r.prefix, status, ErrInvalidRule, err)
			}
		}
		grpcTrie[status] = t
	}

	// (5) Freeze into a read-only snapshot.
	return &mapper{
		grpcDefault:  grpcDefault,
		grpcOverride: grpcOverride,
		grpcTrie:     grpcTrie,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}, nil
}

// mapper is an immutable mapper implementation that combines per-status
// defaults, per-status exact overrides, and per-status sub-code prefix
// tries. It is safe for concurrent use once constructed.
type mapper struct {
	// grpcDefault holds the base gRPC code for a status.
	grpcDefault map[int]codes.Code

	// grpcOverride holds explicit gRPC codes for specific statuses.
	// These take precedence over everything else.
	grpcOverride map[int]codes.Code

	// grpcTrie stores per-status tries that resolve gRPC codes based on
	// sub-code prefixes.
	grpcTrie map[int]*prefixtrie.Trie[codes.Code]

	// fallbackGRPC is used for statuses outside 100..599.
	fallbackGRPC codes.Code
}

// GRPCStatus resolves a gRPC code for the given status and sub-code.
//
// Resolution order (highest to lowest):
//  1. exact per-status override;
//  2. per-status longest-prefix-match rule on the sub-code;
//  3. per-status default (library or user overridden);
//  4. class fallback (4xx FailedPrecondition, 5xx Internal, other Unknown).
//
// Statuses outside 100..599 resolve to the configured fallback.
func (m *mapper) GRPCStatus(status int, sub string) codes.Code {
	v, _, _ := m.resolve(status, sub)
	return v
}

// Status resolves both transports for c. The HTTP side is c.StatusCode(),
// which already falls back to 500 on malformed prefixes.
func (m *mapper) Status(c apis.Coded) apis.Status {
	st := c.StatusCode()
	return apis.Status{
		HTTP: st,
		GRPC: m.GRPCStatus(st, subCodeOf(c)),
	}
}

// Explain produces a textual trace of how the mapper resolved the gRPC
// code for a particular (status, sub-code) pair.
//
// Example output:
//
//	status=503 sub="DBTimeout"
//	grpc: source=prefix pattern="DB" -> UNAVAILABLE(14)
//
// Notes:
//   - source ∈ {override | prefix | default | class | fallback}
//   - pattern is the rule as it was inserted (may contain '?')
func (m *mapper) Explain(status int, sub string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%d sub=%q\n", status, sub)

	v, src, pat := m.resolve(status, sub)
	name := apis.CodeName(v)
	if src == "prefix" {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s pattern=%q -> %s(%d)", src, pat, name, int(v))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, name, int(v))
	}
	return b.String()
}

// resolve returns the gRPC code together with the tier that produced it and,
// for prefix matches, the matched pattern.
func (m *mapper) resolve(status int, sub string) (codes.Code, string, string) {
	if !code.ValidStatus(status) {
		return m.fallbackGRPC, "fallback", ""
	}

	// 1. Fast path: exact override for this status.
	if v, ok := m.grpcOverride[status]; ok {
		return v, "override", ""
	}

	// 2. Per-status prefix LPM over the sub-code.
	if idx, ok := m.grpcTrie[status]; ok && idx != nil {
		if v, ok, pat := idx.MatchWithPattern(sub); ok {
			return v, "prefix", pat
		}
	}

	// 3. Per-status default.
	if v, ok := m.grpcDefault[status]; ok {
		return v, "default", ""
	}

	// 4. Class fallback: never zero, never OK.
	return classFallback(status), "class", ""
}

// subCodeOf extracts the sub-code of c, preferring an explicit accessor.
func subCodeOf(c apis.Coded) string {
	if s, ok := c.(interface{ SubCode() string }); ok {
		return s.SubCode()
	}
	parsed, err := code.Parse(c.Code())
	if err != nil {
		return ""
	}
	return parsed.Sub()
}

// freeze validates and copies a builder map into typed gRPC codes.
func freeze(src map[int]int) (map[int]codes.Code, error) {
	dst := make(map[int]codes.Code, len(src))
	for status, v := range src {
		if !code.ValidStatus(status) {
			return nil, fmt.Errorf("%w: status %d", ErrInvalidRule, status)
		}
		if err := validateGRPC(v); err != nil {
			return nil, fmt.Errorf("status %d: %w", status, err)
		}
		dst[status] = codes.Code(v)
	}
	return dst, nil
}

// validateGRPC checks v is one of the canonical gRPC codes (0..16).
func validateGRPC(v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("%w: grpc code %d", ErrInvalidRule, v)
	}
	return nil
}
