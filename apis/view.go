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

// ErrorView is the wire shape of a packed error.
//
// Field names and optionality are part of the compatibility contract:
// consumers must tolerate Result being absent.
type ErrorView struct {
	// Code is the full packed code, e.g. "404NotFound".
	Code string `json:"code"`

	// Message is the human-readable message.
	Message string `json:"message"`

	// Result is the optional typed payload. It must be marshalable by
	// encoding/json. Nil means "no result" and is omitted on the wire.
	Result any `json:"result,omitempty"`
}
