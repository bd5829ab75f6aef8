// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package assert is a trimmed port of this codebase's core/assert: a small
// fluent wrapper over testing.TB, used so this module's tests read the
// same way the rest of the codebase's tests do
// ("assert.To(t).For(name).That(x).Equals(y)") rather than bare
// "if got != want". It keeps only the chained-call scaffolding the
// demangler/renderer tests need; see DESIGN.md for what core/assert has
// that this trimmed port does not.
package assert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/google/cxxdemangle/ast"
)

// Manager is the root of the fluent interface, wrapping the test target.
type Manager struct {
	t testing.TB
}

// To creates an assertion manager logging failures to t.
func To(t testing.TB) Manager {
	return Manager{t: t}
}

// For is shorthand for assert.To(t).For(msg, args...).
func For(t testing.TB, msg string, args ...interface{}) *Assertion {
	return To(t).For(msg, args...)
}

// For starts a new assertion with the supplied label.
func (m Manager) For(msg string, args ...interface{}) *Assertion {
	return &Assertion{t: m.t, label: fmt.Sprintf(msg, args...)}
}

// Assertion is a single named assertion in progress.
type Assertion struct {
	t     testing.TB
	label string
}

// That returns an OnValue for the supplied untyped value, for equality
// assertions that don't need ast.Equal's node-shape awareness.
func (a *Assertion) That(value interface{}) OnValue {
	return OnValue{a: a, value: value}
}

// ThatNode returns an OnNode for the supplied AST node.
func (a *Assertion) ThatNode(value ast.Node) OnNode {
	return OnNode{a: a, value: value}
}

// OnValue is the result of calling That on an Assertion.
type OnValue struct {
	a     *Assertion
	value interface{}
}

// Equals asserts, via reflect.DeepEqual, that the value equals expect.
func (o OnValue) Equals(expect interface{}) bool {
	ok := reflect.DeepEqual(o.value, expect)
	if !ok {
		o.a.t.Errorf("%s: got %#v, want %#v", o.a.label, o.value, expect)
	}
	return ok
}

// IsNil asserts that the value is nil (including a typed nil).
func (o OnValue) IsNil() bool {
	ok := isNil(o.value)
	if !ok {
		o.a.t.Errorf("%s: got %#v, want nil", o.a.label, o.value)
	}
	return ok
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// OnNode is the result of calling ThatNode on an Assertion.
type OnNode struct {
	a     *Assertion
	value ast.Node
}

// Equals asserts, via ast.Equal, that the node equals expect.
func (o OnNode) Equals(expect ast.Node) bool {
	ok := ast.Equal(o.value, expect)
	if !ok {
		o.a.t.Errorf("%s: got %#v, want %#v", o.a.label, o.value, expect)
	}
	return ok
}
