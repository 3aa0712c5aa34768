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

package adapter

import (
	"errors"
	"testing"

	"dirpx.dev/joberr"
	"dirpx.dev/joberr/apis"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/structpb"
)

func ptr(s string) *string { return &s }

func TestStructRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		view apis.View
	}{
		{"type only", apis.View{Type: "JobError"}},
		{"message", apis.View{Type: "Error", Message: "boom"}},
		{"code", apis.View{Type: "PathError", Message: "missing", Code: ptr("ENOENT")}},
		{"empty code", apis.View{Type: "string", Message: "x", Code: ptr("")}},
		{"code and stack", apis.View{Type: "E", Message: "m", Code: ptr("C"), Stack: ptr("a\nb")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := joberr.FromView(tt.view)
			if err != nil {
				t.Fatalf("FromView: %v", err)
			}
			s, err := ToStruct(want)
			if err != nil {
				t.Fatalf("ToStruct: %v", err)
			}
			got, err := FromStruct(s)
			if err != nil {
				t.Fatalf("FromStruct: %v", err)
			}
			if diff := cmp.Diff(tt.view, got.ErrorView()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToStruct_OmitsAbsentFields(t *testing.T) {
	s, err := ToStruct(joberr.New(nil))
	if err != nil {
		t.Fatalf("ToStruct: %v", err)
	}
	if _, ok := s.GetFields()[KeyCode]; ok {
		t.Fatalf("absent code must be omitted")
	}
	if _, ok := s.GetFields()[KeyStack]; ok {
		t.Fatalf("absent stack must be omitted")
	}
}

func TestToStruct_InvalidUTF8(t *testing.T) {
	r, err := joberr.FromView(apis.View{Type: "E", Message: "\xff"})
	if err != nil {
		t.Fatalf("FromView: %v", err)
	}
	if _, err := ToStruct(r); err == nil {
		t.Fatalf("expected error for invalid UTF-8")
	}
}

func TestFromStruct_Invalid(t *testing.T) {
	mk := func(m map[string]any) *structpb.Struct {
		s, err := structpb.NewStruct(m)
		if err != nil {
			t.Fatalf("NewStruct: %v", err)
		}
		return s
	}
	tests := []struct {
		name string
		s    *structpb.Struct
		want error
	}{
		{"nil", nil, ErrInvalidStruct},
		{"missing type", mk(map[string]any{"message": "m"}), ErrInvalidStruct},
		{"numeric code", mk(map[string]any{"type": "E", "code": 5.0}), ErrInvalidStruct},
		{"orphan stack", mk(map[string]any{"type": "E", "stack": "s"}), joberr.ErrOrphanStack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromStruct(tt.s)
			if !errors.Is(err, tt.want) {
				t.Fatalf("FromStruct err = %v; want %v", err, tt.want)
			}
		})
	}
}

func TestToDescriptor(t *testing.T) {
	r, err := joberr.FromView(apis.View{Type: "OpError", Message: "refused", Code: ptr("ECONNREFUSED")})
	if err != nil {
		t.Fatalf("FromView: %v", err)
	}
	got := ToDescriptor(r, apis.Status{HTTP: 503, GRPC: codes.Unavailable})
	want := apis.Descriptor{
		Type:       "OpError",
		Message:    "refused",
		Code:       "ECONNREFUSED",
		HTTPStatus: 503,
		GRPCCode:   int(codes.Unavailable),
		Retryable:  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToDescriptor mismatch (-want +got):\n%s", diff)
	}
	if d := ToDescriptor(nil, apis.Status{}); d != (apis.Descriptor{}) {
		t.Fatalf("nil record must give zero descriptor, got %+v", d)
	}
}
