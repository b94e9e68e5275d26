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

// Package code provides parsing, validation and rewriting of packed error codes.
//
// A packed code is a short string that carries two things at once:
//
//   - a 3-character status prefix, the zero-padded decimal rendering of an
//     HTTP-style status in the range 100..599;
//   - a free-form, domain-specific sub-code suffix (may be empty).
//
// For example "404NotFound" packs status 404 with sub-code "NotFound", and
// "503-DB" packs status 503 with sub-code "-DB".
//
// The Code type keeps the prefix and the suffix as two separate fields and
// only concatenates them at the boundary (String, MarshalText). Rewriting
// one part therefore never touches the other, and the suffix may change
// length freely.
//
// Parse deliberately accepts malformed prefixes: a code received from the
// wire must still be representable so that status derivation can fall back
// to FallbackStatus instead of failing. Use Validate or Status to check the
// prefix strictly.
package code
