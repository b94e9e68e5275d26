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

package errcode

import (
	"log/slog"
	"sync/atomic"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
)

var (
	logger   atomic.Pointer[slog.Logger]
	observer atomic.Pointer[apis.Observer]
)

// SetLogger replaces the logger used for errcode diagnostics.
// Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// SetObserver registers o to receive diagnostics (see apis.Observer).
// Passing nil removes the current observer.
func SetObserver(o apis.Observer) {
	if o == nil {
		observer.Store(nil)
		return
	}
	observer.Store(&o)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

func reportStatusFallback(c string, err error) {
	log().Warn("errcode: status derivation failed, using fallback",
		"code", c,
		"fallback", code.FallbackStatus,
		"error", err,
	)
	if o := observer.Load(); o != nil {
		(*o).StatusFallback(c, err)
	}
}

func reportDecodeFailure(err error) {
	log().Debug("errcode: cannot decode error response", "error", err)
	if o := observer.Load(); o != nil {
		(*o).DecodeFailure(err)
	}
}
