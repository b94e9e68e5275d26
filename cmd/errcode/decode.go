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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/apis"
	"github.com/spf13/cobra"
)

var decodeExample = `
# Decode a saved response body
errcode decode --status 404 body.json

# Decode from stdin
curl -s http://localhost/x | errcode decode -`

type decodeOutput struct {
	apis.ErrorDescriptor
	Result json.RawMessage `json:"result,omitempty"`
}

func newDecodeCmd(a *app) *cobra.Command {
	var status int

	cmd := &cobra.Command{
		Use:     "decode [file|-]",
		Short:   "Decode an error response body",
		Example: decodeExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				body []byte
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				body, err = io.ReadAll(cmd.InOrStdin())
			} else {
				body, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			e, err := errcode.FromResponse[json.RawMessage](status, body)
			if err != nil {
				return err
			}

			out := decodeOutput{ErrorDescriptor: adapter.ToDescriptor(e, a.mapper.Status(e))}
			if r, ok := e.Result(); ok {
				out.Result = r
			}

			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	cmd.Flags().IntVarP(&status, "status", "s", 0, "Transport status the body was received with")

	return cmd
}
