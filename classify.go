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

package joberr

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/joberr/apis"
	"dirpx.dev/joberr/category"
	"dirpx.dev/joberr/code"
	pkgerrors "github.com/pkg/errors"
)

// Failure is the closed set of shapes a raised value is classified into.
// The implementations are Value, Structured and Platform.
type Failure interface {
	failure()
}

// Value is a raised value that is not a Go error: a string, a number, a
// struct passed to panic, and so on. It never yields a code or a stack.
type Value struct {
	V any
}

// Structured is a raised Go error.
type Structured struct {
	Err error

	// Name is the kind name of the error: the apis.NamedError name found in
	// the chain, or the category of Err.
	Name string

	// Stack is the trace text; HasStack reports whether one was found.
	Stack    string
	HasStack bool
}

// Platform is a raised Go error that also exposes a platform code.
type Platform struct {
	Structured

	// Code is the platform code, e.g. "ENOENT".
	Code string
}

func (Value) failure()      {}
func (Structured) failure() {}
func (Platform) failure()   {}

// stackTracer is implemented by errors created or wrapped with
// github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Classify sorts v into one of the Failure variants.
//
// Values that do not implement error are a Value. Errors are Structured,
// unless an apis.SystemError or a syscall.Errno is found in their chain, in
// which case they are a Platform.
func Classify(v any) Failure {
	err, ok := v.(error)
	if !ok {
		return Value{V: v}
	}

	s := Structured{Err: err, Name: nameOf(err)}
	s.Stack, s.HasStack = stackOf(err)

	if c, ok := systemCode(err); ok {
		return Platform{Structured: s, Code: c}
	}
	return s
}

func nameOf(err error) string {
	var named apis.NamedError
	if errors.As(err, &named) {
		if name := guard(named.ErrorName); name != "" {
			return name
		}
	}
	return category.Of(err)
}

func stackOf(err error) (string, bool) {
	var traced apis.TracedError
	if errors.As(err, &traced) {
		if s := guard(traced.ErrorStack); s != "" {
			return s, true
		}
	}

	// Prefer the deepest pkg/errors trace: it points at the origin.
	var st stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if t, ok := e.(stackTracer); ok {
			st = t
		}
	}
	if st == nil {
		return "", false
	}
	trace := strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n")
	if trace == "" {
		return "", false
	}
	return trace, true
}

func systemCode(err error) (string, bool) {
	var se apis.SystemError
	if errors.As(err, &se) {
		if c := guard(se.SystemCode); c != "" {
			return c, true
		}
	}
	return code.Errno(err)
}

// guard calls a user-provided accessor and turns a panic (typically a method
// called on a typed nil pointer) into an empty result.
func guard(fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return fn()
}
