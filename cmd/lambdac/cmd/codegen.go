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

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"lambdac.org/go/internal/codegen"
	"lambdac.org/go/internal/codegen/cplusplus"
	"lambdac.org/go/internal/codegen/cppcps"
	"lambdac.org/go/internal/codegen/javascript"
	"lambdac.org/go/internal/codegen/lua"
	"lambdac.org/go/internal/codegen/python"
	"lambdac.org/go/internal/core/capture"
	"lambdac.org/go/internal/core/closure"
	"lambdac.org/go/internal/core/cps"
	"lambdac.org/go/internal/core/cpserr"
	"lambdac.org/go/parser"
)

func newCodegenCmd(c *Command) *cobra.Command {
	var target string
	var dumpIR bool

	cmd := &cobra.Command{
		Use:   "codegen <file>",
		Short: "run the compiler pipeline and emit a target-language program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					if bug, ok := r.(cpserr.Bug); ok {
						fmt.Fprintln(c.Stderr(), bug.Error())
						err = nil
						return
					}
					panic(r)
				}
			}()

			backend, rerr := codegen.Resolve(target)
			if rerr != nil {
				fmt.Fprintln(c.Stderr(), rerr.Error())
				return nil
			}

			src, rerr := os.ReadFile(args[0])
			if rerr != nil {
				return rerr
			}

			astProg, perrs := parser.ParseFile(args[0], src)
			if len(perrs) > 0 {
				for _, msg := range perrs {
					fmt.Fprintln(c.Stderr(), msg)
				}
				return nil
			}

			decorated, diags := capture.Analyze(astProg)
			if diags.HasErrors() {
				for _, msg := range diags {
					fmt.Fprintln(c.Stderr(), msg)
				}
				return nil
			}

			var out string
			switch backend {
			case codegen.JavaScript:
				out = javascript.Generate(astProg)
			case codegen.Python:
				out = python.Generate(astProg)
			case codegen.Lua:
				out = lua.Generate(astProg)
			case codegen.CPlusPlus:
				out = cplusplus.Generate(astProg)
			case codegen.CPlusPlusCPS:
				ir := closure.Analyze(cps.Convert(decorated))
				if dumpIR {
					pretty.Println(ir)
					return nil
				}
				out = cppcps.Generate(ir)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "target backend: js, py, cpp, lua, cps")
	cmd.Flags().BoolVar(&dumpIR, "dump-ir", false, "print the closure-analyzed IR instead of generated code (cps target only)")
	cmd.MarkFlagRequired("target")

	return cmd
}
