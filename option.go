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

// Option is a functional option for constructing an Error.
// It takes an Error and returns the transformed copy.
type Option[T any] func(Error[T]) Error[T]

// WithResultOption sets the result on the error being constructed.
// Intended to be used with E(...) and New(...).
func WithResultOption[T any](value T) Option[T] {
	return func(e Error[T]) Error[T] {
		return e.WithResult(value)
	}
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption[T any](err error) Option[T] {
	return func(e Error[T]) Error[T] {
		return e.WithCause(err)
	}
}
