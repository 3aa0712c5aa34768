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

package mapper

import (
	"sync"
	"testing"

	"dirpx.dev/joberr/category"
	"dirpx.dev/joberr/code"
	"google.golang.org/grpc/codes"
)

// record is a minimal apis.Record for rule resolution tests.
type record struct {
	cat     string
	code    string
	hasCode bool
}

func (r record) Category() string { return r.cat }
func (r record) Message() string { return "" }
func (r record) Code() (string, bool) { return r.code, r.hasCode }
func (r record) Stack() (string, bool) { return "", false }

func withCode(cat string, c code.Code) record {
	return record{cat: cat, code: string(c), hasCode: true}
}

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Spot-check a few canonical defaults from defaults.go
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(withCode("PathError", c))
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.Invalid, 400, codes.InvalidArgument)
	check(code.NotExist, 404, codes.NotFound)
	check(code.ConnRefused, 503, codes.Unavailable)
	check(code.NoSpace, 507, codes.ResourceExhausted)
}

func TestCategoryDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(record{cat: category.Aborted})
	if st.HTTP != StatusClientClosedRequest || st.GRPC != codes.Canceled {
		t.Fatalf("aborted: got %+v", st)
	}
	st = m.Status(record{cat: "deadlineExceededError"})
	if st.HTTP != 504 || st.GRPC != codes.DeadlineExceeded {
		t.Fatalf("deadline: got %+v", st)
	}
}

func TestPriority_OverrideOverCategoryOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.ConnRefused, 503),  // default
		WithHTTPCategory("OpError", 599),        // category
		WithHTTPOverride(code.ConnRefused, 418), // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(withCode("OpError", code.ConnRefused)); got != 418 {
		t.Fatalf("override must win; got %d, want 418", got)
	}
	if got := m.HTTPStatus(withCode("OpError", code.Pipe)); got != 599 {
		t.Fatalf("category must beat default; got %d, want 599", got)
	}
}

func TestPriority_OverrideOverCategoryOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(code.ConnRefused, int(codes.Unavailable)),
		WithGRPCCategory("OpError", int(codes.Internal)),
		WithGRPCOverride(code.ConnRefused, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(withCode("OpError", code.ConnRefused)); got != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", got, codes.Aborted)
	}
	if got := m.GRPCStatus(withCode("OpError", code.Pipe)); got != codes.Internal {
		t.Fatalf("category must beat default; got %v, want %v", got, codes.Internal)
	}
}

func TestFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		name string
		r    record
	}{
		{"no code", record{cat: category.Generic}},
		{"unmapped code", withCode("PathError", "errno 200")},
		{"empty code", record{cat: "string", hasCode: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := m.Status(tt.r)
			if st.HTTP != 500 || st.GRPC != codes.Internal {
				t.Fatalf("got %+v; want 500/Internal", st)
			}
		})
	}

	m2, err := New(WithFallback(502, int(codes.Unavailable)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m2.Status(nil); st.HTTP != 502 || st.GRPC != codes.Unavailable {
		t.Fatalf("custom fallback: got %+v", st)
	}
}

func TestCodeKeyIsTrimmed(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(withCode("PathError", " ENOENT ")); got != 404 {
		t.Fatalf("got %d, want 404", got)
	}
}

func TestNew_InvalidKeys(t *testing.T) {
	if _, err := New(WithHTTPOverride("bad code", 400)); err == nil {
		t.Fatalf("expected error for invalid code key")
	}
	if _, err := New(WithGRPCDefault("", 3)); err == nil {
		t.Fatalf("expected error for empty code key")
	}
	if _, err := New(WithHTTPCategory("  ", 400)); err == nil {
		t.Fatalf("expected error for blank category key")
	}
}

func TestNegativeGRPCBecomesUnknown(t *testing.T) {
	m, err := New(WithGRPCOverride(code.Pipe, -1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(withCode("OpError", code.Pipe)); got != codes.Unknown {
		t.Fatalf("got %v, want Unknown", got)
	}
}

func TestConcurrentReads(t *testing.T) {
	m, err := New(WithHTTPOverride(code.Pipe, 418))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if m.HTTPStatus(withCode("OpError", code.Pipe)) != 418 {
					t.Error("unexpected status")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		c    codes.Code
		want bool
	}{
		{codes.Unavailable, true},
		{codes.DeadlineExceeded, true},
		{codes.ResourceExhausted, true},
		{codes.Aborted, true},
		{codes.Canceled, false},
		{codes.NotFound, false},
		{codes.Internal, false},
	}
	for _, tt := range tests {
		if got := Retryable(tt.c); got != tt.want {
			t.Fatalf("Retryable(%v) = %v; want %v", tt.c, got, tt.want)
		}
	}
}
