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

package apis

// Record is the read-only view of a normalized job error.
//
// Category and Message are always present. Code and Stack are optional: the
// boolean reports presence, which is distinct from an empty value. A Record
// is expected to be immutable; implementations must return the same values on
// every call.
type Record interface {
	// Category is the coarse classification of the failure, usually the Go
	// type name of the raised value (e.g. "PathError", "string").
	Category() string

	// Message is the human-readable description of the failure.
	Message() string

	// Code returns the short machine-readable identifier, if present.
	Code() (string, bool)

	// Stack returns the trace text, if present.
	Stack() (string, bool)
}

// NamedError is implemented by errors that carry an explicit kind name, e.g.
// "TypeError" or "ValidationError". When present, the name becomes the
// record code instead of the Go type name.
type NamedError interface {
	error

	// ErrorName returns the kind name of the error. It should be short and
	// stable.
	ErrorName() string
}

// TracedError is implemented by errors that carry their own trace text, for
// example errors re-raised from an embedded interpreter or a remote peer.
type TracedError interface {
	error

	// ErrorStack returns the raw trace text. An empty string means the error
	// has no trace.
	ErrorStack() string
}

// SystemError is implemented by platform-level errors that expose a distinct
// machine code (e.g. "ENOENT", "ERR_SOCKET_CLOSED").
//
// A system code always takes precedence over the NamedError name.
type SystemError interface {
	error

	// SystemCode returns the platform-specific code. It must be non-empty.
	SystemCode() string
}
