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

// View is the plain structured form of a record, used by non-binary
// consumers such as logging sinks, JSON APIs, or message buses that carry
// documents instead of bytes.
//
// View and the binary wire form are losslessly convertible into each other:
// nil Code/Stack mean "absent", a pointer to "" means "present but empty".
//
// The JSON field names follow the structured form used by the worker pool
// ("type" rather than "category").
type View struct {
	// Type is the record category.
	Type string `json:"type"`

	// Message is the human-readable description.
	Message string `json:"message"`

	// Code is the optional machine-readable identifier.
	Code *string `json:"code,omitempty"`

	// Stack is the optional trace text.
	Stack *string `json:"stack,omitempty"`
}

// ViewProvider is implemented by records that can produce their structured
// form directly.
type ViewProvider interface {
	// ErrorView returns a self-contained snapshot of the record.
	ErrorView() View
}
