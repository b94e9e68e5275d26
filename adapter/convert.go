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

package adapter

import (
	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
)

// ToView converts any coded error into the public wire view.
//
// If the error implements apis.ViewProvider, its own view (including the
// result payload) is used as-is. Otherwise the view carries only the code
// and the message. No redaction or filtering is performed.
func ToView(c apis.Coded) apis.ErrorView {
	if c == nil {
		return apis.ErrorView{}
	}
	if vp, ok := c.(apis.ViewProvider); ok {
		return vp.ErrorView()
	}
	return apis.ErrorView{
		Code:    c.Code(),
		Message: c.Message(),
	}
}

// ToDescriptor converts a coded error together with its resolved transport
// status into a flat ErrorDescriptor.
//
// The descriptor is intended for structured logging, tooling and
// diagnostics. Valid is false when the status prefix is malformed, in which
// case st.HTTP holds the fallback status.
func ToDescriptor(c apis.Coded, st apis.Status) apis.ErrorDescriptor {
	if c == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Code:       c.Code(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		GRPCName:   apis.CodeName(st.GRPC),
		Message:    c.Message(),
	}
	if parsed, err := code.Parse(c.Code()); err == nil {
		d.SubCode = parsed.Sub()
		d.Valid = code.Validate(parsed) == nil
	}
	return d
}
