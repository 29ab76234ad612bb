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

// Package cppcps implements the CPS-requiring C++ backend: one
// top-level host function per continuation, closure-free frames built
// by an explicit capture array, and a trampoline-driven reference
// count scheme in place of garbage collection.
package cppcps

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"lambdac.org/go/internal/codegen/mangle"
	"lambdac.org/go/internal/codegen/wordlist"
	"lambdac.org/go/internal/core/closure"
	"lambdac.org/go/internal/core/cpserr"
	"lambdac.org/go/internal/core/idset"
	"lambdac.org/go/internal/core/identset"
)

//go:embed prelude_cps.cpp
var prelude string

var reservedWords = wordlist.MustLoad("cplusplus_cps")

func generateIdentifier(name string) string {
	return mangle.SuffixIdentifier(name, reservedWords, "")
}

func generateAnonymousIdentifier(id int) string {
	return mangle.SuffixIdentifier("ret", reservedWords, fmt.Sprintf("_%d", id))
}

func generateContIdentifier(name string, lambdaID *int, contID int) string {
	n := 0
	if lambdaID != nil {
		n = *lambdaID + 1
	}
	return mangle.SuffixIdentifier(name, reservedWords, fmt.Sprintf("_%d_%d", n, contID))
}

// argKind distinguishes the three ways a continuation's "arg" slot can
// be named: the chain's initial argument identifier, an anonymous
// intermediate result, or (for the chain's very first step, when the
// enclosing assignment has no argument of its own) unnamed.
type argKind int

const (
	argUnnamed argKind = iota
	argAnonymous
	argIdentifier
)

type argName struct {
	kind argKind
	id   int
	name string
}

func generateArgNameIdentifier(a argName) string {
	switch a.kind {
	case argAnonymous:
		return generateAnonymousIdentifier(a.id)
	case argIdentifier:
		return generateIdentifier(a.name)
	default:
		return mangle.SuffixIdentifier("arg", reservedWords, "")
	}
}

// assignmentContext accumulates one assignment's emitted top-level
// function bodies (impls) as they're generated bottom-up.
type assignmentContext struct {
	curAssignment string
	curLambdaID   *int
	impls         []string
}

func (actx *assignmentContext) addImpl(s string) {
	actx.impls = append(actx.impls, s)
}

// implementationContext counts, per continuation body, how many times
// each capture, global, and anonymous result is referenced, seeding
// the `ref(n)` hints a continuation must issue before releasing its
// own frame.
type implementationContext struct {
	captureOrder []string
	captureCount map[string]int

	anonOrder []int
	anonCount map[int]int

	globalCount map[string]int
}

func newImplementationContext(captures *identset.Set, anonymousCaptures *idset.Set) *implementationContext {
	ictx := &implementationContext{
		captureOrder: append([]string(nil), captures.Slice()...),
		captureCount: map[string]int{},
		anonOrder:    append([]int(nil), anonymousCaptures.Slice()...),
		anonCount:    map[int]int{},
		globalCount:  map[string]int{},
	}
	for _, name := range ictx.captureOrder {
		ictx.captureCount[name] = 0
	}
	for _, id := range ictx.anonOrder {
		ictx.anonCount[id] = 0
	}
	return ictx
}

func (ictx *implementationContext) referenceIdentifier(name string) {
	if _, ok := ictx.captureCount[name]; ok {
		ictx.captureCount[name]++
		return
	}
	ictx.globalCount[name]++
}

func (ictx *implementationContext) referenceAnonymous(id int) {
	if _, ok := ictx.anonCount[id]; ok {
		ictx.anonCount[id]++
		return
	}
	cpserr.Panicf("uncaptured anonymous literal '%d' referenced", id)
}

func generateLiteral(lit closure.Literal, actx *assignmentContext, ictx *implementationContext) string {
	switch l := lit.(type) {
	case *closure.AnonymousLiteral:
		ictx.referenceAnonymous(l.ID)
		return generateAnonymousIdentifier(l.ID)
	case *closure.IdentifierLiteral:
		ictx.referenceIdentifier(l.Name)
		return generateIdentifier(l.Name)
	case *closure.LambdaLiteral:
		return generateLambda(l.Lambda, actx, ictx)
	default:
		cpserr.Panicf("cppcps: unknown closure.Literal variant")
		return ""
	}
}

func generateCaptures(captures *identset.Set, anonymousCaptures *idset.Set, ictx *implementationContext) string {
	parts := make([]string, 0, captures.Len()+anonymousCaptures.Len())
	for _, name := range captures.Slice() {
		ictx.referenceIdentifier(name)
		parts = append(parts, generateIdentifier(name))
	}
	for _, id := range anonymousCaptures.Slice() {
		ictx.referenceAnonymous(id)
		parts = append(parts, generateAnonymousIdentifier(id))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func generateContinuation(cont *closure.Continuation, actx *assignmentContext, ictx *implementationContext) string {
	contName := generateContIdentifier(actx.curAssignment, actx.curLambdaID, cont.ID)
	n := cont.Captures.Len() + cont.AnonymousCaptures.Len()
	return fmt.Sprintf("Cont::mk<%d>(%s, %s, cont)", n, contName, generateCaptures(cont.Captures, cont.AnonymousCaptures, ictx))
}

// implementation is everything generateImplementation needs to emit
// one top-level continuation function.
type implementation struct {
	id                int
	argName           argName
	function          closure.Literal // nil for the chain's last step
	argument          closure.Literal
	captures          *identset.Set
	anonymousCaptures *idset.Set
	next              *closure.Continuation // nil if this step is the chain's last
}

func generateImplementation(imp implementation, actx *assignmentContext) {
	contName := generateContIdentifier(actx.curAssignment, actx.curLambdaID, imp.id)
	argNameStr := generateArgNameIdentifier(imp.argName)

	var b strings.Builder
	fmt.Fprintf(&b, "Lambda* %s(Lambda* %s, Lambda* self, Cont* cont) {\n", contName, argNameStr)

	ictx := newImplementationContext(imp.captures, imp.anonymousCaptures)

	var next string
	if imp.next != nil {
		next = generateContinuation(imp.next, actx, ictx)
	}
	var fn string
	if imp.function != nil {
		fn = generateLiteral(imp.function, actx, ictx)
	}
	arg := generateLiteral(imp.argument, actx, ictx)

	i := 0
	for _, name := range ictx.captureOrder {
		if ictx.captureCount[name] > 0 {
			fmt.Fprintf(&b, "    Lambda* %s = self->captures[%d]->ref(%d);\n", generateIdentifier(name), i, ictx.captureCount[name])
		}
		i++
	}
	for _, id := range ictx.anonOrder {
		if ictx.anonCount[id] > 0 {
			fmt.Fprintf(&b, "    Lambda* %s = self->captures[%d]->ref(%d);\n", generateAnonymousIdentifier(id), i, ictx.anonCount[id])
		}
		i++
	}
	// Globals are incremented in place by their own (unmangled) name,
	// never through self->captures, so i does not advance here: the
	// capture-array index is fully spent by the two loops above (spec
	// "open question #2").
	globalNames := make([]string, 0, len(ictx.globalCount))
	for name := range ictx.globalCount {
		globalNames = append(globalNames, name)
	}
	sort.Strings(globalNames)
	for _, name := range globalNames {
		if count := ictx.globalCount[name]; count > 0 {
			fmt.Fprintf(&b, "    %s->ref(%d);\n", name, count)
		}
	}

	b.WriteString("    self->unref();\n")

	if imp.function != nil {
		contArg := "cont"
		if imp.next != nil {
			contArg = next
		}
		fmt.Fprintf(&b, "    return %s->call(%s, %s);\n", fn, arg, contArg)
	} else {
		fmt.Fprintf(&b, "    return cont->call(%s);\n", arg)
	}
	b.WriteString("}\n")

	actx.addImpl(b.String())
}

// generateImplementations emits every continuation in conts (in reverse
// source order, so each one's "next" is already known) and returns the
// expression constructing the chain's entry-point lambda value.
func generateImplementations(conts []*closure.Continuation, result closure.Literal, argIdent *string, actx *assignmentContext, ictx *implementationContext) string {
	cur := argName{kind: argUnnamed}
	if argIdent != nil {
		cur = argName{kind: argIdentifier, name: *argIdent}
	}

	var capSlice *identset.Set
	var anonSlice *idset.Set
	var next *closure.Continuation

	if len(conts) == 0 {
		generateImplementation(implementation{
			id:                0,
			argName:           cur,
			function:          nil,
			argument:          result,
			captures:          identset.New(),
			anonymousCaptures: idset.New(),
			next:              nil,
		}, actx)
		capSlice = identset.New()
		anonSlice = idset.New()
	} else {
		for i := len(conts) - 1; i >= 0; i-- {
			cont := conts[i]
			arg := cur
			if i > 0 {
				arg = argName{kind: argAnonymous, id: conts[i-1].ID}
			}
			generateImplementation(implementation{
				id:                cont.ID,
				argName:           arg,
				function:          cont.Function,
				argument:          cont.Argument,
				captures:          cont.Captures,
				anonymousCaptures: cont.AnonymousCaptures,
				next:              next,
			}, actx)
			next = cont
		}
		capSlice = conts[0].Captures
		anonSlice = conts[0].AnonymousCaptures
	}

	lambdaName := generateContIdentifier(actx.curAssignment, actx.curLambdaID, 0)
	n := capSlice.Len() + anonSlice.Len()
	return fmt.Sprintf("Lambda::mk<%d>(%s, %s)", n, lambdaName, generateCaptures(capSlice, anonSlice, ictx))
}

func generateLambda(lambda *closure.Lambda, actx *assignmentContext, ictx *implementationContext) string {
	id := lambda.ID
	sub := &assignmentContext{curAssignment: actx.curAssignment, curLambdaID: &id, impls: actx.impls}
	arg := lambda.Argument
	result := generateImplementations(lambda.Continuations, lambda.Result, &arg, sub, ictx)
	actx.impls = sub.impls
	return result
}

func generateAssignment(ass *closure.Assignment) string {
	actx := &assignmentContext{curAssignment: ass.Target}
	ictx := newImplementationContext(identset.New(), idset.New())

	target := generateIdentifier(ass.Target)

	var value string
	if len(ass.Continuations) == 0 {
		value = generateLiteral(ass.Result, actx, ictx)
	} else {
		lambda := generateImplementations(ass.Continuations, ass.Result, nil, actx, ictx)
		value = lambda + "->ret()"
	}

	var b strings.Builder
	for _, imp := range actx.impls {
		b.WriteString(imp)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Lambda* %s = %s;\n\n", target, value)
	return b.String()
}

// Generate emits a CPS-C++ program implementing prog, with the runtime
// prelude concatenated first.
func Generate(prog *closure.Program) string {
	var b strings.Builder
	b.WriteString(prelude)
	for _, ass := range prog.Assignments {
		b.WriteString(generateAssignment(ass))
	}
	return b.String()
}
