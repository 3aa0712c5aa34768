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

// Package wire encodes joberr records to and from the binary payload that
// carries a job failure across a worker boundary.
//
// # Layout
//
// A payload is a sequence of var-strings: a varint byte length followed by
// that many bytes of UTF-8 text.
//
//	| # | field    | presence                    |
//	|---|----------|-----------------------------|
//	| 1 | category | always                      |
//	| 2 | message  | always                      |
//	| 3 | code     | only if present, no marker  |
//	| 4 | stack    | only if present, no marker  |
//
// There are no presence flags. The decoder requires fields 1 and 2 and fails
// with ErrMalformedPayload when they cannot be read; for fields 3 and 4 any
// read failure, including a plain end of buffer, means "absent". Because the
// layout is positional, a stack can only be written after a code; encoding a
// record with a stack but no code fails with ErrUnframeable.
//
// # Varints
//
// CompactSize (the default) writes lengths below 0xfd as one byte and larger
// ones as a 0xfd/0xfe/0xff marker followed by a little-endian uint16/uint32/
// uint64; only the shortest form is accepted on decode. LEB128 uses the
// protobuf base-128 varint from google.golang.org/protobuf/encoding/protowire.
//
// # Envelope
//
// The payload is one message type among many in the worker transport. This
// package only provides the discriminant (MessageType) and the Message
// glue; the envelope that carries the job id, type and length belongs to the
// transport.
package wire
