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
	"dirpx.dev/joberr/category"
	"github.com/rs/zerolog"
)

// AbortedError marks a record as the product of an explicit cancellation
// rather than an organic failure.
//
// It adds no fields to Error and encodes exactly like it; the distinction is
// only visible in-process, through errors.As or IsAborted.
type AbortedError struct {
	rec *Error
}

var (
	_ error                      = (*AbortedError)(nil)
	_ apis.Record                = (*AbortedError)(nil)
	_ apis.ViewProvider          = (*AbortedError)(nil)
	_ zerolog.LogObjectMarshaler = (*AbortedError)(nil)
)

// NewAborted normalizes v like New and marks the result as aborted.
// A nil v yields category "JobAbortedError".
func NewAborted(v any, opts ...Option) *AbortedError {
	if v == nil {
		return &AbortedError{rec: &Error{category: category.Aborted}}
	}
	return &AbortedError{rec: New(v, opts...)}
}

// AsAborted returns a copy of e marked as aborted. Receivers use it when the
// surrounding protocol says the job was cancelled.
func (e *Error) AsAborted() *AbortedError {
	if e == nil {
		return NewAborted(nil)
	}
	c := *e
	return &AbortedError{rec: &c}
}

// record returns the wrapped record; a nil receiver or zero value reads as
// the default aborted record.
func (e *AbortedError) record() *Error {
	if e == nil || e.rec == nil {
		return &Error{category: category.Aborted}
	}
	return e.rec
}

// Category returns the coarse classification of the failure.
func (e *AbortedError) Category() string { return e.record().Category() }

// Message returns the human-readable description of the failure.
func (e *AbortedError) Message() string { return e.record().Message() }

// Code returns the machine-readable identifier, if present.
func (e *AbortedError) Code() (string, bool) { return e.record().Code() }

// Stack returns the trace text, if present.
func (e *AbortedError) Stack() (string, bool) { return e.record().Stack() }

// Error implements the built-in error interface with the same text as the
// underlying record.
func (e *AbortedError) Error() string { return e.record().Error() }

// Unwrap returns the underlying record, so errors.As can also reach *Error.
func (e *AbortedError) Unwrap() error { return e.record() }

// ErrorView implements apis.ViewProvider.
func (e *AbortedError) ErrorView() apis.View { return ViewOf(e.record()) }

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *AbortedError) MarshalZerologObject(ev *zerolog.Event) {
	e.record().MarshalZerologObject(ev)
}

// IsAborted reports whether err's chain contains an AbortedError.
func IsAborted(err error) bool {
	var ae *AbortedError
	return errors.As(err, &ae)
}
