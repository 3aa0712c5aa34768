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
	"encoding/binary"

	"google.golang.org/protobuf/encoding/protowire"
)

// Varint is a variable-length unsigned integer scheme used for length
// prefixes.
type Varint interface {
	// Name identifies the scheme in configuration and diagnostics.
	Name() string

	// Len returns the number of bytes Append writes for v.
	Len(v uint64) int

	// Append appends the encoding of v to dst.
	Append(dst []byte, v uint64) []byte

	// Consume parses a varint at the start of b and returns its value and
	// length. It does not retain b.
	Consume(b []byte) (v uint64, n int, err error)
}

var (
	// CompactSize is the Bitcoin-style compact size scheme used by the
	// worker pool's buffer library.
	CompactSize Varint = compactSize{}

	// LEB128 is the protobuf base-128 varint.
	LEB128 Varint = leb128{}
)

// VarintByName returns the scheme registered under name.
func VarintByName(name string) (Varint, bool) {
	switch name {
	case CompactSize.Name():
		return CompactSize, true
	case LEB128.Name():
		return LEB128, true
	default:
		return nil, false
	}
}

type compactSize struct{}

func (compactSize) Name() string { return "compactsize" }

func (compactSize) Len(v uint64) int {
	switch {
	case v < 0xfd:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

func (compactSize) Append(dst []byte, v uint64) []byte {
	switch {
	case v < 0xfd:
		return append(dst, byte(v))
	case v <= 0xffff:
		return binary.LittleEndian.AppendUint16(append(dst, 0xfd), uint16(v))
	case v <= 0xffffffff:
		return binary.LittleEndian.AppendUint32(append(dst, 0xfe), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(dst, 0xff), v)
	}
}

func (compactSize) Consume(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, errTruncated
	}
	var (
		v     uint64
		n     int
		least uint64
	)
	switch b[0] {
	case 0xfd:
		if len(b) < 3 {
			return 0, 0, errTruncated
		}
		v, n, least = uint64(binary.LittleEndian.Uint16(b[1:])), 3, 0xfd
	case 0xfe:
		if len(b) < 5 {
			return 0, 0, errTruncated
		}
		v, n, least = uint64(binary.LittleEndian.Uint32(b[1:])), 5, 0x10000
	case 0xff:
		if len(b) < 9 {
			return 0, 0, errTruncated
		}
		v, n, least = binary.LittleEndian.Uint64(b[1:]), 9, 0x100000000
	default:
		return uint64(b[0]), 1, nil
	}
	if v < least {
		return 0, 0, errNonCanonical
	}
	return v, n, nil
}

type leb128 struct{}

func (leb128) Name() string { return "leb128" }

func (leb128) Len(v uint64) int { return protowire.SizeVarint(v) }

func (leb128) Append(dst []byte, v uint64) []byte { return protowire.AppendVarint(dst, v) }

func (leb128) Consume(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}
