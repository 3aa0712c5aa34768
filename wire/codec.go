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

package wire

import (
	"fmt"
	"math"

	"dirpx.dev/joberr"
	"dirpx.dev/joberr/apis"
)

// DefaultMaxFieldLength is the default limit, in bytes, for a single field.
const DefaultMaxFieldLength = 32 << 20

// Codec encodes and decodes record payloads.
//
// A Codec is immutable after New and safe for concurrent use.
type Codec struct {
	varint   Varint
	maxField uint64
}

// Option configures a Codec.
type Option func(*Codec)

// WithVarint selects the length-prefix scheme. A nil scheme keeps the
// default (CompactSize).
func WithVarint(v Varint) Option {
	return func(c *Codec) {
		if v != nil {
			c.varint = v
		}
	}
}

// WithMaxFieldLength sets the per-field byte limit applied when encoding and
// decoding. Non-positive values keep DefaultMaxFieldLength.
func WithMaxFieldLength(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.maxField = uint64(n)
		}
	}
}

// New returns a Codec configured by opts.
func New(opts ...Option) *Codec {
	c := &Codec{
		varint:   CompactSize,
		maxField: DefaultMaxFieldLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxField > math.MaxInt {
		c.maxField = math.MaxInt
	}
	return c
}

// Varint returns the length-prefix scheme of c.
func (c *Codec) Varint() Varint { return c.varint }

// MaxFieldLength returns the per-field byte limit of c.
func (c *Codec) MaxFieldLength() int { return int(c.maxField) }

var defaultCodec = New()

// Default returns the codec used by the package-level functions.
func Default() *Codec { return defaultCodec }

// Encode encodes r with the default codec.
func Encode(r apis.Record) ([]byte, error) { return defaultCodec.Encode(r) }

// Decode decodes b with the default codec.
func Decode(b []byte) (*joberr.Error, error) { return defaultCodec.Decode(b) }

// Size returns the encoded size of r with the default codec.
func Size(r apis.Record) int { return defaultCodec.Size(r) }

// fields lists the var-strings written for r, in wire order.
func fields(r apis.Record) (names [4]string, vals [4]string, n int) {
	names[0], vals[0] = "category", r.Category()
	names[1], vals[1] = "message", r.Message()
	n = 2
	if code, ok := r.Code(); ok {
		names[n], vals[n] = "code", code
		n++
	}
	if stack, ok := r.Stack(); ok {
		names[n], vals[n] = "stack", stack
		n++
	}
	return names, vals, n
}

// Size returns the exact number of bytes Encode produces for r. For records
// Encode rejects, Size still reports the length of the fields as they would
// be laid out.
func (c *Codec) Size(r apis.Record) int {
	if r == nil {
		return 0
	}
	_, vals, n := fields(r)
	size := 0
	for _, v := range vals[:n] {
		size += c.varint.Len(uint64(len(v))) + len(v)
	}
	return size
}

// Encode returns the payload for r.
//
// Encode is deterministic: equal records always yield equal bytes.
func (c *Codec) Encode(r apis.Record) ([]byte, error) {
	if err := c.check(r); err != nil {
		return nil, err
	}
	return c.appendFields(make([]byte, 0, c.Size(r)), r), nil
}

// Append appends the payload for r to dst. On error dst is returned
// unchanged.
func (c *Codec) Append(dst []byte, r apis.Record) ([]byte, error) {
	if err := c.check(r); err != nil {
		return dst, err
	}
	return c.appendFields(dst, r), nil
}

func (c *Codec) check(r apis.Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrUnframeable)
	}
	_, hasCode := r.Code()
	if _, hasStack := r.Stack(); hasStack && !hasCode {
		return fmt.Errorf("%w: stack without code", ErrUnframeable)
	}
	names, vals, n := fields(r)
	for i := 0; i < n; i++ {
		if l := uint64(len(vals[i])); l > c.maxField {
			return fmt.Errorf("%w: %s is %d bytes, limit %d", ErrEncodingOverflow, names[i], l, c.maxField)
		}
	}
	return nil
}

func (c *Codec) appendFields(dst []byte, r apis.Record) []byte {
	_, vals, n := fields(r)
	for _, v := range vals[:n] {
		dst = c.varint.Append(dst, uint64(len(v)))
		dst = append(dst, v...)
	}
	return dst
}

// Decode reconstructs a record from a payload.
//
// Category and message are required; failing to read either returns an
// error wrapping ErrMalformedPayload. Code and stack are optional: if the
// buffer ends, or the next var-string cannot be read, the field is absent
// and no error is returned. A stack is only looked for after a code. Bytes
// after the stack are ignored.
func (c *Codec) Decode(b []byte) (*joberr.Error, error) {
	rd := reader{buf: b, codec: c}

	category, err := rd.varString()
	if err != nil {
		return nil, fmt.Errorf("%w: category: %v", ErrMalformedPayload, err)
	}
	message, err := rd.varString()
	if err != nil {
		return nil, fmt.Errorf("%w: message: %v", ErrMalformedPayload, err)
	}

	v := apis.View{Type: category, Message: message}
	if code, err := rd.varString(); err == nil {
		v.Code = &code
		if stack, err := rd.varString(); err == nil {
			v.Stack = &stack
		}
	}

	rec, err := joberr.FromView(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return rec, nil
}

// reader consumes var-strings from buf. A failed read does not advance it.
type reader struct {
	buf   []byte
	off   int
	codec *Codec
}

func (r *reader) varString() (string, error) {
	rest := r.buf[r.off:]
	l, n, err := r.codec.varint.Consume(rest)
	if err != nil {
		return "", err
	}
	if l > r.codec.maxField {
		return "", errTooLong
	}
	if l > uint64(len(rest)-n) {
		return "", errTruncated
	}
	end := n + int(l)
	s := string(rest[n:end])
	r.off += end
	return s, nil
}
