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
	"fmt"

	"dirpx.dev/joberr"
	"dirpx.dev/joberr/apis"
	"dirpx.dev/joberr/mapper"
	"google.golang.org/protobuf/types/known/structpb"
)

// Struct keys. They match the JSON names of apis.View.
const (
	KeyType    = "type"
	KeyMessage = "message"
	KeyCode    = "code"
	KeyStack   = "stack"
)

// ErrInvalidStruct is returned by FromStruct when a Struct does not hold a
// record.
var ErrInvalidStruct = errors.New("adapter: struct is not a job error")

// ToStruct converts a record into a structpb.Struct.
//
// Absent code and stack are omitted; present-but-empty ones are kept as
// empty strings. An error is returned when a field is not valid UTF-8, which
// protobuf strings require.
func ToStruct(r apis.Record) (*structpb.Struct, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil record", ErrInvalidStruct)
	}
	m := map[string]any{
		KeyType:    r.Category(),
		KeyMessage: r.Message(),
	}
	if c, ok := r.Code(); ok {
		m[KeyCode] = c
	}
	if s, ok := r.Stack(); ok {
		m[KeyStack] = s
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("adapter: to struct: %w", err)
	}
	return s, nil
}

// FromStruct reconstructs a record from a Struct produced by ToStruct.
//
// "type" is required. Every known key must hold a string value; unknown keys
// are ignored.
func FromStruct(s *structpb.Struct) (*joberr.Error, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil struct", ErrInvalidStruct)
	}
	fields := s.GetFields()

	var v apis.View
	typ, ok, err := stringField(fields, KeyType)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrInvalidStruct, KeyType)
	}
	v.Type = typ

	if msg, ok, err := stringField(fields, KeyMessage); err != nil {
		return nil, err
	} else if ok {
		v.Message = msg
	}
	if c, ok, err := stringField(fields, KeyCode); err != nil {
		return nil, err
	} else if ok {
		v.Code = &c
	}
	if st, ok, err := stringField(fields, KeyStack); err != nil {
		return nil, err
	} else if ok {
		v.Stack = &st
	}
	return joberr.FromView(v)
}

func stringField(fields map[string]*structpb.Value, key string) (string, bool, error) {
	val, ok := fields[key]
	if !ok || val == nil {
		return "", false, nil
	}
	sv, ok := val.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", false, fmt.Errorf("%w: %q is not a string", ErrInvalidStruct, key)
	}
	return sv.StringValue, true, nil
}

// ToDescriptor converts a record together with its resolved transport status
// into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the record fields and the concrete transport
// statuses (HTTP and gRPC), plus a retry hint derived from the gRPC code.
func ToDescriptor(r apis.Record, st apis.Status) apis.Descriptor {
	if r == nil {
		return apis.Descriptor{}
	}
	d := apis.Descriptor{
		Type:       r.Category(),
		Message:    r.Message(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Retryable:  mapper.Retryable(st.GRPC),
	}
	if c, ok := r.Code(); ok {
		d.Code = c
	}
	return d
}
