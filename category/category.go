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

package category

import "reflect"

const (
	// Generic is the category of a record built without a raised value.
	Generic = "JobError"

	// Aborted is the category of an aborted record built without a raised
	// value.
	Aborted = "JobAbortedError"

	// Unknown is used when the type of a raised value cannot be determined.
	Unknown = "unknown"
)

// Of returns the category label of v.
//
// Of never returns an empty string. A nil v has no dynamic type and yields
// Unknown; callers that treat nil as "no value" should check for it first.
func Of(v any) string {
	if v == nil {
		return Unknown
	}
	return OfType(reflect.TypeOf(v))
}

// OfType returns the category label of t. See Of.
func OfType(t reflect.Type) string {
	if t == nil {
		return Unknown
	}
	// Unwrap unnamed pointers so *PathError and PathError share a label.
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	if k := t.Kind(); k != reflect.Invalid {
		return k.String()
	}
	return Unknown
}
