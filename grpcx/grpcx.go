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
	"strings"

	"dirpx.dev/joberr"
	"dirpx.dev/joberr/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain that marks a status as carrying a record.
const Domain = "joberr.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaCategory = "category"
	MetaCode     = "code"
)

// ToStatus converts a record into a gRPC status.
//
// The status code is resolved by m; the status message is the record
// message. A nil record yields nil.
func ToStatus(m apis.Mapper, r apis.Record) *gstatus.Status {
	if r == nil {
		return nil
	}
	base := gstatus.New(m.GRPCStatus(r), r.Message())

	info := &errdetails.ErrorInfo{
		Reason:   r.Category(),
		Domain:   Domain,
		Metadata: map[string]string{MetaCategory: r.Category()},
	}
	if c, ok := r.Code(); ok {
		info.Metadata[MetaCode] = c
	}

	var with *gstatus.Status
	var err error
	if s, ok := r.Stack(); ok {
		debug := &errdetails.DebugInfo{
			Detail:       s,
			StackEntries: strings.Split(s, "\n"),
		}
		with, err = base.WithDetails(info, debug)
	} else {
		with, err = base.WithDetails(info)
	}
	if err != nil {
		// Details could not be attached; the bare status still carries the
		// code and message.
		return base
	}
	return with
}

// FromStatus reconstructs a record from a status built by ToStatus.
// ok is false when the status carries no joberr ErrorInfo.
func FromStatus(st *gstatus.Status) (*joberr.Error, bool) {
	if st == nil {
		return nil, false
	}
	var (
		info  *errdetails.ErrorInfo
		debug *errdetails.DebugInfo
	)
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == Domain && info == nil {
				info = d
			}
		case *errdetails.DebugInfo:
			if debug == nil {
				debug = d
			}
		}
	}
	if info == nil {
		return nil, false
	}

	v := apis.View{Type: info.GetReason(), Message: st.Message()}
	if cat, ok := info.GetMetadata()[MetaCategory]; ok {
		v.Type = cat
	}
	if c, ok := info.GetMetadata()[MetaCode]; ok {
		v.Code = &c
	}
	if debug != nil {
		s := debug.GetDetail()
		v.Stack = &s
	}
	e, err := joberr.FromView(v)
	if err != nil {
		return nil, false
	}
	return e, true
}

// RemoteError is returned by the client interceptor when a call failed with
// a status carrying a record. It unwraps to the record and still satisfies
// status.FromError.
type RemoteError struct {
	Record *joberr.Error
	Status *gstatus.Status
}

// Error implements error.
func (e *RemoteError) Error() string { return e.Status.Err().Error() }

// Unwrap returns the reconstructed record.
func (e *RemoteError) Unwrap() error { return e.Record }

// GRPCStatus lets status.FromError and status.Code see the original status.
func (e *RemoteError) GRPCStatus() *gstatus.Status { return e.Status }

// recordOf finds a record in err's chain.
func recordOf(err error) (apis.Record, bool) {
	var r apis.Record
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// handler errors carrying a record into statuses built by ToStatus.
//
// The provided apis.Mapper is used to map records into gRPC codes. Errors
// that carry no record are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		r, ok := recordOf(err)
		if !ok {
			// Not ours, return as-is.
			return nil, err
		}
		return nil, ToStatus(m, r).Err()
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		r, ok := recordOf(err)
		if !ok {
			return err
		}
		return ToStatus(m, r).Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// status errors carrying a record into *RemoteError.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return fromCallError(invoker(ctx, method, req, reply, cc, opts...))
	}
}

func fromCallError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return err
	}
	rec, ok := FromStatus(st)
	if !ok {
		return err
	}
	return &RemoteError{Record: rec, Status: st}
}
