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

// Package codegen resolves the CLI-facing target names to the
// canonical backend name each one dispatches to.
package codegen

import "fmt"

// Canonical backend names.
const (
	JavaScript    = "javascript"
	Python        = "python"
	Lua           = "lua"
	CPlusPlus     = "cplusplus"
	CPlusPlusCPS  = "cplusplus_cps"
)

var aliases = map[string]string{
	"js":         JavaScript,
	"javascript": JavaScript,
	"py":         Python,
	"python":     Python,
	"lua":        Lua,
	"cpp":        CPlusPlus,
	"c++":        CPlusPlus,
	"cxx":        CPlusPlus,
	"cplusplus":  CPlusPlus,
	"cps":        CPlusPlusCPS,
}

// Resolve maps a CLI-supplied target name ("js"/"javascript",
// "py"/"python", "cpp"/"c++"/"cxx"/"cplusplus", "lua", and the CPS
// variant's dedicated name) to its canonical backend name.
func Resolve(name string) (string, error) {
	canonical, ok := aliases[name]
	if !ok {
		return "", fmt.Errorf("codegen: unknown target %q", name)
	}
	return canonical, nil
}
