// Copyright 2026 The lambdac Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lambdac.org/go/internal/prettyprint"
	"lambdac.org/go/parser"
)

func newPrettyCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "pretty <file>",
		Short: "pretty-print a program to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			prog, perrs := parser.ParseFile(args[0], src)
			if len(perrs) > 0 {
				for _, msg := range perrs {
					fmt.Fprintln(c.Stderr(), msg)
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), prettyprint.Program(prog))
			return nil
		},
	}
}
