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

import (
	"errors"
	"io/fs"
	"testing"
)

type jobFailure struct{ msg string }

type retryCount int

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, Unknown},
		{"string", "boom", "string"},
		{"int", 42, "int"},
		{"float", 1.5, "float64"},
		{"bool", true, "bool"},
		{"defined int", retryCount(3), "retryCount"},
		{"struct value", jobFailure{"x"}, "jobFailure"},
		{"struct pointer", &jobFailure{"x"}, "jobFailure"},
		{"double pointer", func() any { p := &jobFailure{}; return &p }(), "jobFailure"},
		{"path error", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}, "PathError"},
		{"stdlib error", errors.New("x"), "errorString"},
		{"map", map[string]int{"a": 1}, "map"},
		{"slice", []string{"a"}, "slice"},
		{"anonymous struct", struct{ A int }{1}, "struct"},
		{"func", func() {}, "func"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.in); got != tt.want {
				t.Fatalf("Of(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOfType_Nil(t *testing.T) {
	if got := OfType(nil); got != Unknown {
		t.Fatalf("OfType(nil) = %q, want %q", got, Unknown)
	}
}
