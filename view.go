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

	"dirpx.dev/joberr/apis"
)

// ErrOrphanStack is returned by FromView when a stack is present without a
// code. Such a record cannot be framed on the wire, where the stack is only
// recognized after the code.
var ErrOrphanStack = errors.New("joberr: stack present without code")

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.View {
	return ViewOf(e)
}

// ViewOf returns the structured form of any record.
func ViewOf(r apis.Record) apis.View {
	v := apis.View{Type: r.Category(), Message: r.Message()}
	if c, ok := r.Code(); ok {
		v.Code = &c
	}
	if s, ok := r.Stack(); ok {
		v.Stack = &s
	}
	return v
}

// FromView reconstructs a record from its structured form.
//
// It is the inverse of ViewOf: FromView(ViewOf(r)) equals r for every record
// built by this package.
func FromView(v apis.View) (*Error, error) {
	if v.Stack != nil && v.Code == nil {
		return nil, ErrOrphanStack
	}
	e := &Error{category: v.Type, message: v.Message}
	if v.Code != nil {
		e.code, e.hasCode = *v.Code, true
	}
	if v.Stack != nil {
		e.stack, e.hasStack = *v.Stack, true
	}
	return e, nil
}
