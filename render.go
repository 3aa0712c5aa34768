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

import "fmt"

// Renderer turns any raised value into human-readable text. It must accept
// every value, including nil and non-error values, and always return a
// string.
type Renderer func(v any) string

// DefaultRenderer renders v the way fmt.Sprint does: errors via Error(),
// fmt.Stringer via String(), and everything else in its default format.
// Panics in Error or String methods are reported inline by fmt.
func DefaultRenderer(v any) string {
	return fmt.Sprint(v)
}

// render applies r and falls back to DefaultRenderer if r panics.
func render(r Renderer, v any) (s string) {
	if r == nil {
		return DefaultRenderer(v)
	}
	defer func() {
		if recover() != nil {
			s = DefaultRenderer(v)
		}
	}()
	return r(v)
}
