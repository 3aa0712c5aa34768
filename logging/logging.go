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

package logging

import (
	"io"
	"os"

	"dirpx.dev/joberr/apis"
	"github.com/rs/zerolog"
)

// Output formats accepted in Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Field names used for records.
const (
	FieldJobError = "job_error"
	FieldType     = "type"
	FieldMessage  = "message"
	FieldCode     = "code"
	FieldStack    = "stack"
)

// New creates a logger writing to w (os.Stderr when nil).
// An unparsable level falls back to info.
func New(cfg Config, w io.Writer) zerolog.Logger {
	cfg.ApplyDefaults()
	if w == nil {
		w = os.Stderr
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// AppendFields adds the fields of r to ev and returns ev.
func AppendFields(ev *zerolog.Event, r apis.Record) *zerolog.Event {
	if ev == nil || r == nil {
		return ev
	}
	ev.Str(FieldType, r.Category()).Str(FieldMessage, r.Message())
	if c, ok := r.Code(); ok {
		ev.Str(FieldCode, c)
	}
	if s, ok := r.Stack(); ok {
		ev.Str(FieldStack, s)
	}
	return ev
}

// Object wraps r so it can be passed to zerolog's Object/EmbedObject.
// When withStack is false the trace is left out.
func Object(r apis.Record, withStack bool) zerolog.LogObjectMarshaler {
	return recordObject{rec: r, withStack: withStack}
}

type recordObject struct {
	rec       apis.Record
	withStack bool
}

func (o recordObject) MarshalZerologObject(ev *zerolog.Event) {
	if o.rec == nil {
		return
	}
	if o.withStack {
		AppendFields(ev, o.rec)
		return
	}
	ev.Str(FieldType, o.rec.Category()).Str(FieldMessage, o.rec.Message())
	if c, ok := o.rec.Code(); ok {
		ev.Str(FieldCode, c)
	}
}

// Error logs msg at error level with r attached under FieldJobError.
func Error(l *zerolog.Logger, msg string, r apis.Record) {
	if l == nil {
		return
	}
	if r == nil {
		l.Error().Msg(msg)
		return
	}
	l.Error().Object(FieldJobError, Object(r, true)).Msg(msg)
}
