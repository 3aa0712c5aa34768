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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/joberr"
	"dirpx.dev/joberr/apis"
	"dirpx.dev/joberr/mapper"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

func ptr(s string) *string { return &s }

func mustMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return m
}

func mustRecord(t *testing.T, v apis.View) *joberr.Error {
	t.Helper()
	r, err := joberr.FromView(v)
	if err != nil {
		t.Fatalf("FromView: %v", err)
	}
	return r
}

func TestStatusRoundTrip(t *testing.T) {
	m := mustMapper(t)
	tests := []struct {
		name     string
		view     apis.View
		wantCode codes.Code
	}{
		{"generic", apis.View{Type: "JobError"}, codes.Internal},
		{"with code", apis.View{Type: "PathError", Message: "open x: no such file", Code: ptr("ENOENT")}, codes.NotFound},
		{"empty code", apis.View{Type: "string", Message: "m", Code: ptr("")}, codes.Internal},
		{"stack", apis.View{Type: "E", Message: "m", Code: ptr("C"), Stack: ptr("main.run\n\tmain.go:10")}, codes.Internal},
		{"aborted", apis.View{Type: "JobAbortedError"}, codes.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ToStatus(m, mustRecord(t, tt.view))
			if st.Code() != tt.wantCode {
				t.Fatalf("code = %v; want %v", st.Code(), tt.wantCode)
			}
			if st.Message() != tt.view.Message {
				t.Fatalf("message = %q; want %q", st.Message(), tt.view.Message)
			}
			got, ok := FromStatus(st)
			if !ok {
				t.Fatalf("FromStatus: no record")
			}
			if diff := cmp.Diff(tt.view, got.ErrorView()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToStatus_Nil(t *testing.T) {
	if st := ToStatus(mustMapper(t), nil); st != nil {
		t.Fatalf("expected nil status, got %v", st)
	}
}

func TestFromStatus_Foreign(t *testing.T) {
	if _, ok := FromStatus(gstatus.New(codes.NotFound, "nope")); ok {
		t.Fatalf("plain status must not yield a record")
	}
	if _, ok := FromStatus(nil); ok {
		t.Fatalf("nil status must not yield a record")
	}
}

func TestUnaryServerInterceptor(t *testing.T) {
	m := mustMapper(t)
	icpt := UnaryServerInterceptor(m)
	info := &grpc.UnaryServerInfo{FullMethod: "/jobs.Worker/Run"}
	rec := mustRecord(t, apis.View{Type: "OpError", Message: "refused", Code: ptr("ECONNREFUSED")})

	t.Run("record", func(t *testing.T) {
		handler := func(ctx context.Context, req any) (any, error) {
			return nil, fmt.Errorf("run job: %w", rec)
		}
		_, err := icpt(context.Background(), nil, info, handler)
		st, ok := gstatus.FromError(err)
		if !ok || st.Code() != codes.Unavailable {
			t.Fatalf("got %v; want Unavailable status", err)
		}
		got, ok := FromStatus(st)
		if !ok || !joberr.Equal(got, rec) {
			t.Fatalf("record lost: %v", got)
		}
	})

	t.Run("foreign", func(t *testing.T) {
		plain := errors.New("plain")
		handler := func(ctx context.Context, req any) (any, error) { return nil, plain }
		if _, err := icpt(context.Background(), nil, info, handler); err != plain {
			t.Fatalf("foreign error must pass through, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }
		resp, err := icpt(context.Background(), nil, info, handler)
		if err != nil || resp != "ok" {
			t.Fatalf("got (%v, %v)", resp, err)
		}
	})
}

func TestStreamServerInterceptor(t *testing.T) {
	icpt := StreamServerInterceptor(mustMapper(t))
	rec := joberr.NewAborted(nil)
	err := icpt(nil, nil, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error { return rec })
	if gstatus.Code(err) != codes.Canceled {
		t.Fatalf("got %v; want Canceled", err)
	}
}

func TestUnaryClientInterceptor(t *testing.T) {
	m := mustMapper(t)
	rec := mustRecord(t, apis.View{Type: "PathError", Message: "missing", Code: ptr("ENOENT")})
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return ToStatus(m, rec).Err()
	}
	err := UnaryClientInterceptor()(context.Background(), "/jobs.Worker/Run", nil, nil, nil, invoker)

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected *RemoteError, got %T", err)
	}
	if gstatus.Code(err) != codes.NotFound {
		t.Fatalf("status code lost: %v", gstatus.Code(err))
	}
	var got *joberr.Error
	if !errors.As(err, &got) || !joberr.Equal(got, rec) {
		t.Fatalf("record lost: %v", got)
	}

	plain := gstatus.Error(codes.Unavailable, "down")
	invoker = func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return plain
	}
	if err := UnaryClientInterceptor()(context.Background(), "/m", nil, nil, nil, invoker); err != plain {
		t.Fatalf("plain status must pass through, got %v", err)
	}
}
