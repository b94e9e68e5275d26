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

package grpcx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/apis"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrNoDetail is returned by FromError when the gRPC status carries no
// error view detail.
var ErrNoDetail = errors.New("errcode: grpc status has no error detail")

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// coded errors into gRPC statuses.
//
// The provided apis.Mapper resolves the gRPC code. The status message is the
// error message, and the wire view ({code, message, result}) is attached as a
// google.protobuf.Struct detail. Errors that are not apis.Coded are returned
// unchanged.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var coded apis.Coded
		if !errors.As(err, &coded) {
			// Not ours.
			return nil, err
		}
		return nil, ToStatus(m, coded).Err()
	}
}

// ToStatus builds the gRPC status for a coded error. If the view cannot be
// converted into a Struct the status is returned without details.
func ToStatus(m apis.Mapper, c apis.Coded) *gstatus.Status {
	st := m.Status(c)
	base := gstatus.New(st.GRPC, c.Message())

	detail, err := toStruct(adapter.ToView(c))
	if err != nil {
		return base
	}
	if with, err := base.WithDetails(detail); err == nil {
		return with
	}
	return base
}

// ExtractView pulls the error view detail out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractView(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}

// FromError reconstructs an error value from a gRPC error produced by
// UnaryServerInterceptor.
//
// The status prefix of the carried code is authoritative; no transport
// status is available to repair a malformed one. Failures wrap
// errcode.ErrMalformedResponse, a missing detail yields ErrNoDetail.
func FromError[T any](err error) (errcode.Error[T], error) {
	s, ok := ExtractView(err)
	if !ok {
		return errcode.Error[T]{}, ErrNoDetail
	}
	body, merr := protojson.Marshal(s)
	if merr != nil {
		return errcode.Error[T]{}, fmt.Errorf("%w: %v", errcode.ErrMalformedResponse, merr)
	}
	return errcode.FromResponse[T](0, body)
}

// toStruct goes through JSON so that result payloads with custom
// marshalers keep their wire form.
func toStruct(v apis.ErrorView) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}
