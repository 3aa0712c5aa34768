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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of a code used as a rule
// key.
//
// It is defined as a separate type (not just string) so that rule builders
// can declare which values they expect and to avoid accidental mixing of raw
// user input with validated values.
type Code string

// MinLength and MaxLength define the allowed length range for a code.
const (
	// MinLength is the minimum length for a valid code.
	MinLength = 1

	// MaxLength is the maximum length for a valid code.
	// 64 characters fit long platform codes such as "ERR_INVALID_ARG_TYPE".
	MaxLength = 64
)

const (
	// codeFmt is the regular expression used to validate codes.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Za-z_] - first character must be an ASCII letter or underscore;
	//	[A-Za-z0-9_.\-]{0,63} - the remaining characters may be letters,
	//	                        digits, underscore, dot or dash;
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {0,63} is tied to MinLength / MaxLength above.
	codeFmt = `^[A-Za-z_][A-Za-z0-9_.\-]{0,63}$`
)

var (
	// codeRe is the compiled regular expression used at runtime to validate
	// that a string is a usable code.
	//
	// Examples of valid codes:
	//   - "ENOENT"
	//   - "TypeError"
	//   - "ERR_SOCKET_CLOSED"
	//
	// Examples of invalid codes:
	//   - ""            (empty)
	//   - "1ENOENT"     (does not start with a letter)
	//   - "E NOENT"     (space)
	codeRe = regexp.MustCompile(codeFmt)
)

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a code.
	ErrCodeInvalid = errors.New("joberr: invalid code")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It means "no code".
var Empty Code = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims surrounding spaces. Codes are case-sensitive: "EPERM" and
// "Eperm" are different codes.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Validate checks whether the provided Code is valid.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
