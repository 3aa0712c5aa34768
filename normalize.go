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

// New normalizes a raised value into a record.
//
// A nil v yields the default record: category "JobError", empty message,
// no code, no stack. Otherwise:
//
//   - the category is derived from the dynamic type of v (see package
//     category);
//   - the message is v rendered by the configured Renderer;
//   - if v is a Go error, the code is its kind name and the stack its
//     trace text, if any;
//   - if v is a platform error, the platform code replaces the kind name.
//
// If v already is a record (it implements apis.Record), its fields are
// copied as they are, so re-raising a reconstructed record keeps its
// original classification.
func New(v any, opts ...Option) *Error {
	o := newOptions(opts)

	e := &Error{category: category.Generic}
	if v == nil {
		return e
	}

	if r, ok := v.(apis.Record); ok {
		e = clone(r)
		if o.noStack {
			e.stack, e.hasStack = "", false
		}
		return e
	}

	e.category = category.Of(v)
	e.message = render(o.renderer, v)

	switch f := Classify(v).(type) {
	case Platform:
		e.setStructured(f.Structured, o)
		e.code = f.Code
	case Structured:
		e.setStructured(f, o)
	case Value:
		// Plain values carry neither code nor stack.
	}
	return e
}

func (e *Error) setStructured(s Structured, o options) {
	e.code, e.hasCode = s.Name, true
	if s.HasStack && !o.noStack {
		e.stack, e.hasStack = s.Stack, true
	}
}

func clone(r apis.Record) *Error {
	e := &Error{
		category: r.Category(),
		message:  r.Message(),
	}
	e.code, e.hasCode = r.Code()
	e.stack, e.hasStack = r.Stack()
	return e
}
