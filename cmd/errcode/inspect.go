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

	"dirpx.dev/errcode"
	"dirpx.dev/errcode/adapter"
	"dirpx.dev/errcode/code"
	"github.com/spf13/cobra"
)

var inspectExample = `
# Describe a code
errcode inspect 404NotFound

# Show which mapper rule resolved the gRPC code
errcode inspect --explain 503DBTimeout`

func newInspectCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:     "inspect <code>...",
		Short:   "Describe packed codes",
		Example: inspectExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, arg := range args {
				c, err := code.Parse(arg)
				if err != nil {
					return err
				}

				e := errcode.E[json.RawMessage](c, "")
				d := adapter.ToDescriptor(e, a.mapper.Status(e))

				b, err := json.MarshalIndent(d, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))

				if explain {
					fmt.Fprintln(out, a.mapper.Explain(d.HTTPStatus, c.Sub()))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Print the mapper resolution trace")

	return cmd
}
