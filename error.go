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
	"dirpx.dev/joberr/apis"
	"dirpx.dev/joberr/category"
)

// Error is the normalized record of a failure raised inside a job.
//
// The zero value is not useful; build records with New, NewAborted or
// FromView. All fields are unexported so a record cannot change after it was
// built or reconstructed, and a *Error can be shared between goroutines.
type Error struct {
	category string
	message  string

	code    string
	hasCode bool

	stack    string
	hasStack bool
}

var (
	_ error             = (*Error)(nil)
	_ apis.Record       = (*Error)(nil)
	_ apis.ViewProvider = (*Error)(nil)
)

// Category returns the coarse classification of the failure.
func (e *Error) Category() string {
	if e == nil {
		return category.Generic
	}
	return e.category
}

// Message returns the human-readable description of the failure.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Code returns the machine-readable identifier, if present.
func (e *Error) Code() (string, bool) {
	if e == nil {
		return "", false
	}
	return e.code, e.hasCode
}

// Stack returns the trace text, if present.
func (e *Error) Stack() (string, bool) {
	if e == nil {
		return "", false
	}
	return e.stack, e.hasStack
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<category>: <message>
//
// or just the category when the message is empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.message == "" {
		return e.category
	}
	return e.category + ": " + e.message
}

// Equal reports whether two records carry the same fields, including
// presence of the optional ones.
func Equal(a, b apis.Record) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Category() != b.Category() || a.Message() != b.Message() {
		return false
	}
	ac, aok := a.Code()
	bc, bok := b.Code()
	if aok != bok || ac != bc {
		return false
	}
	as, aok := a.Stack()
	bs, bok := b.Stack()
	return aok == bok && as == bs
}
