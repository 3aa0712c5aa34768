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

package httpx

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"dirpx.dev/joberr"
	"dirpx.dev/joberr/adapter"
	"dirpx.dev/joberr/apis"
	"dirpx.dev/joberr/logging"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// MaxBodySize bounds how much of a response Read consumes.
const MaxBodySize = 64 << 20

// ErrNotJobError is returned by Read when a response does not carry a record.
var ErrNotJobError = errors.New("httpx: response is not a job error")

// Writer is a thin adapter that knows how to turn a record into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// Log receives failures Handle cannot return to its caller. Nil
	// disables logging.
	Log *zerolog.Logger
}

// Write serializes the structured form of r and writes it to the response
// writer. The HTTP status is resolved via the Mapper.
//
// Fields that are not valid UTF-8 are written with invalid bytes replaced by
// U+FFFD, since JSON text cannot carry them.
//
// No automatic redaction or filtering is performed here: the stack, if
// present, is exposed as-is. Callers that serve untrusted clients should
// build records with joberr.WithoutStack.
func (w Writer) Write(rw http.ResponseWriter, r apis.Record) error {
	if r == nil {
		return nil
	}
	status := w.Mapper.HTTPStatus(r)

	s, err := adapter.ToStruct(r)
	if err != nil {
		s, err = adapter.ToStruct(validUTF8(r))
	}
	if err != nil {
		rw.WriteHeader(status)
		return err
	}

	// protojson keeps the Struct encoding aligned with the gRPC and
	// structpb forms.
	b, err := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(s)
	if err != nil {
		rw.WriteHeader(status)
		return fmt.Errorf("httpx: marshal: %w", err)
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(status)
	if _, err := rw.Write(b); err != nil {
		return fmt.Errorf("httpx: write body: %w", err)
	}
	return nil
}

// validUTF8 returns a copy of r whose fields are valid UTF-8.
func validUTF8(r apis.Record) apis.Record {
	fix := func(s string) string { return strings.ToValidUTF8(s, "\uFFFD") }
	v := joberr.ViewOf(r)
	v.Type, v.Message = fix(v.Type), fix(v.Message)
	if v.Code != nil {
		c := fix(*v.Code)
		v.Code = &c
	}
	if v.Stack != nil {
		st := fix(*v.Stack)
		v.Stack = &st
	}
	e, err := joberr.FromView(v)
	if err != nil {
		return r
	}
	return e
}

// HandlerFunc is an http handler that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts h into an http.Handler. A returned error is normalized with
// joberr.New (a record in its chain is used as-is) and written with Write.
// Write failures are logged to w.Log.
func (w Writer) Handle(h HandlerFunc, opts ...joberr.Option) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		err := h(rw, req)
		if err == nil {
			return
		}
		var r apis.Record
		if !errors.As(err, &r) {
			r = joberr.New(err, opts...)
		}
		if werr := w.Write(rw, r); werr != nil && w.Log != nil {
			w.Log.Error().
				Err(werr).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Object(logging.FieldJobError, logging.Object(r, false)).
				Msg("write job error response")
		}
	})
}

// Read reconstructs a record from a response written by Writer. The body is
// consumed but not closed.
func Read(resp *http.Response) (*joberr.Error, error) {
	if resp == nil {
		return nil, ErrNotJobError
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != ContentType {
		return nil, fmt.Errorf("%w: content type %q", ErrNotJobError, resp.Header.Get("Content-Type"))
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("httpx: read body: %w", err)
	}
	var s structpb.Struct
	if err := protojson.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJobError, err)
	}
	return adapter.FromStruct(&s)
}
