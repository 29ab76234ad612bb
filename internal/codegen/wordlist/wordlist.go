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

// Package wordlist loads each backend's reserved-word table from an
// embedded YAML resource rather than a hardcoded Go slice, mirroring
// cuelang.org/go's habit of keeping such data tables in loadable files
// (see cue/ast/astutil's builtin lists, or the attribute tables under
// encoding/openapi) instead of inline code.
package wordlist

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var files embed.FS

// Load returns the reserved-word list for the named backend, one of
// "cplusplus", "cplusplus_cps", "javascript", "python", or "lua".
func Load(name string) ([]string, error) {
	data, err := files.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("wordlist: unknown backend %q: %w", name, err)
	}
	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("wordlist: malformed %s.yaml: %w", name, err)
	}
	return words, nil
}

// MustLoad is Load, panicking on error — for use at package init time
// where the embedded resource is known-good at build time.
func MustLoad(name string) []string {
	words, err := Load(name)
	if err != nil {
		panic(err)
	}
	return words
}
