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

// Package cmd implements the lambdac command-line driver: check,
// pretty, and codegen, plus version, built on github.com/spf13/cobra following the
// subcommand-per-file shape of cuelang.org/go/cmd/cue/cmd.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Command wraps the active cobra.Command the way cmd/cue/cmd does,
// tracking whether a diagnostic was written to stderr so Run can turn
// that into a non-zero exit code without every subcommand managing its
// own exit logic.
type Command struct {
	*cobra.Command

	root   *cobra.Command
	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	if len(b) > 0 {
		c.hasErr = true
	}
	return c.Command.OutOrStderr().Write(b)
}

// Stderr returns a writer that marks the command as failed once
// anything is written to it.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

// ErrPrintedError indicates a diagnostic was already written to
// Stderr, so Main should not print the error a second time.
var ErrPrintedError = stringError("terminating because of errors")

type stringError string

func (e stringError) Error() string { return string(e) }

// New creates the top-level lambdac command.
func New(args []string) *Command {
	root := &cobra.Command{
		Use:           "lambdac",
		Short:         "a compiler for the lambdac toy language",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c := &Command{Command: root, root: root}

	root.AddCommand(
		newCheckCmd(c),
		newPrettyCmd(c),
		newCodegenCmd(c),
		newVersionCmd(c),
	)

	root.SetArgs(args)
	return c
}

// Run executes the command tree and reports whether a diagnostic was
// printed along the way.
func (c *Command) Run() error {
	if err := c.root.Execute(); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}

// Main runs lambdac and returns the process exit code.
func Main() int {
	c := New(os.Args[1:])
	if err := c.Run(); err != nil {
		if err != ErrPrintedError {
			os.Stderr.WriteString(err.Error() + "\n")
		}
		return 1
	}
	return 0
}
