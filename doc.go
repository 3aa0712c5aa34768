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

// Package joberr normalizes arbitrary values raised inside a worker job into
// a flat, immutable error record that can cross a process or thread boundary
// and be reconstructed on the other side.
//
// # Records
//
// An Error carries four fields:
//
//   - Category: coarse classification, derived from the Go type of the raised
//     value ("PathError", "string", "map"), or a fixed label;
//   - Message: the raised value rendered to text;
//   - Code: optional machine identifier, present only for raised errors;
//   - Stack: optional trace text, present only for raised errors that have one.
//
// Records are built with New (or NewAborted for cancellations) and are never
// mutated afterwards:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        rec := joberr.New(r)
//	        payload, _ := wire.Encode(rec)
//	        // send payload to the coordinator
//	    }
//	}()
//
// # Classification
//
// Classify sorts a raised value into one of three variants: Value (not an
// error), Structured (a Go error) and Platform (a Go error exposing a
// platform code). Errors can steer classification by implementing the
// capability interfaces in package apis.
//
// # Structured form
//
// ErrorView and FromView convert a record to and from apis.View, the plain
// structured form used by JSON consumers and logging sinks. The binary form
// lives in package wire.
package joberr
