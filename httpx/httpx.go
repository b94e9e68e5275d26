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

package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/apis"
	"github.com/gin-gonic/gin"
)

// MaxBodyBytes bounds how much of an error response Decode reads.
const MaxBodyBytes = 1 << 20

// GRPCCodeHeader carries the gRPC code resolved by Writer.Mapper, so that
// gateways and clients speaking both transports agree on the code.
const GRPCCodeHeader = "X-Errcode-Grpc-Code"

// Writer is a thin adapter that knows how to turn a coded error into an
// HTTP response.
type Writer struct {
	// Mapper, if set, resolves the gRPC code reported in GRPCCodeHeader.
	Mapper apis.Mapper
}

// Write serializes the error view as JSON and writes it to rw.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error (including its result) is exposed as-is. Higher-level
// handlers should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err apis.Coded) {
	if err == nil {
		return
	}

	// The status is derived exactly once: a malformed code is reported a
	// single time to the logger and observer.
	var status int
	if w.Mapper != nil {
		st := w.Mapper.Status(err)
		status = st.HTTP
		rw.Header().Set(GRPCCodeHeader, apis.CodeName(st.GRPC))
	} else {
		status = err.StatusCode()
	}

	b, merr := json.Marshal(adapter.ToView(err))
	if merr != nil {
		// The result payload is not serializable; still answer with the
		// code and message.
		b, _ = json.Marshal(apis.ErrorView{Code: err.Code(), Message: err.Message()})
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}

// Middleware returns a gin middleware that renders the last coded error
// attached to the context (via c.Error) once the handler chain is done.
//
// Nothing is written when the handlers already produced a response or when
// none of the attached errors is an apis.Coded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			var coded apis.Coded
			if errors.As(c.Errors[i].Err, &coded) {
				c.JSON(coded.StatusCode(), adapter.ToView(coded))
				return
			}
		}
	}
}

// Abort stops the gin handler chain and answers with err.
//
// Coded errors are rendered with their own status and view. Any other error
// is recorded on the context and answered with a bare 500.
func Abort(c *gin.Context, err error) {
	var coded apis.Coded
	if errors.As(err, &coded) {
		c.AbortWithStatusJSON(coded.StatusCode(), adapter.ToView(coded))
		return
	}
	_ = c.Error(err)
	c.AbortWithStatus(http.StatusInternalServerError)
}

// Decode reads an error response and reconstructs the error value.
//
// At most MaxBodyBytes are read. The response body is closed. Failures wrap
// errcode.ErrMalformedResponse.
func Decode[T any](resp *http.Response) (errcode.Error[T], error) {
	if resp == nil || resp.Body == nil {
		return errcode.Error[T]{}, fmt.Errorf("%w: no response body", errcode.ErrMalformedResponse)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return errcode.Error[T]{}, fmt.Errorf("%w: read body: %v", errcode.ErrMalformedResponse, err)
	}
	if len(body) > MaxBodyBytes {
		return errcode.Error[T]{}, fmt.Errorf("%w: body exceeds %d bytes", errcode.ErrMalformedResponse, MaxBodyBytes)
	}
	return errcode.FromResponse[T](resp.StatusCode, body)
}
