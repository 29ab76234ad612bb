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
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lambdac.org/go/internal/core/capture"
	"lambdac.org/go/parser"
)

func getLang() language.Tag {
	loc := os.Getenv("LC_ALL")
	if loc == "" {
		loc = os.Getenv("LANG")
	}
	loc = strings.Split(loc, ".")[0]
	return language.Make(loc)
}

func newCheckCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "parse a program and report capture-analysis diagnostics",
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

			_, diags := capture.Analyze(prog)
			var nerr, nwarn int
			for _, msg := range diags {
				if strings.HasPrefix(msg, "error:") {
					nerr++
				} else {
					nwarn++
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}

			p := message.NewPrinter(getLang())
			p.Fprintf(cmd.OutOrStdout(), "%d error(s), %d warning(s)\n", nerr, nwarn)

			if nerr > 0 {
				fmt.Fprintln(c.Stderr(), "check failed")
			}
			return nil
		},
	}
}
