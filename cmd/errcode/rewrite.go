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
	"dirpx.dev/errcode/code"
	"github.com/spf13/cobra"
)

var rewriteExample = `
# Replace the status prefix
errcode rewrite 404NotFound --status 410

# Replace the sub-code
errcode rewrite 404NotFound --sub Gone`

func newRewriteCmd(_ *app) *cobra.Command {
	var (
		status int
		sub    string
	)

	cmd := &cobra.Command{
		Use:     "rewrite <code>",
		Short:   "Rewrite the status prefix or the sub-code of a packed code",
		Example: rewriteExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := code.Parse(args[0])
			if err != nil {
				return err
			}
			e := errcode.E[json.RawMessage](c, "")

			if cmd.Flags().Changed("status") {
				if e, err = e.WithStatusCode(status); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("sub") {
				e = e.WithCode(sub)
			}

			fmt.Fprintln(cmd.OutOrStdout(), e.Code())
			return nil
		},
	}

	cmd.Flags().IntVarP(&status, "status", "s", 0, "New status, 100..599")
	cmd.Flags().StringVarP(&sub, "sub", "", "", "New sub-code")

	return cmd
}
