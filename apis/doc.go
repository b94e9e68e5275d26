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

// Package apis defines the public, non-generic contracts shared by errcode
// adapters.
//
// The concrete error type (errcode.Error[T]) is generic over its result
// payload. Transport adapters (httpx, grpcx), the mapper and the metrics
// package should not care about the payload type, so they target the small
// interfaces declared here instead.
//
// This package must remain lightweight: it only contains interfaces, small
// view types and the CodeName helper.
package apis
