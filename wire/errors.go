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

import "errors"

var (
	// ErrMalformedPayload is returned by Decode when a required field
	// (category or message) cannot be read: the buffer is truncated, the
	// length prefix is invalid, or it exceeds the field limit.
	ErrMalformedPayload = errors.New("wire: malformed payload")

	// ErrEncodingOverflow is returned by Encode when a field is longer than
	// the codec's field limit.
	ErrEncodingOverflow = errors.New("wire: encoding overflow")

	// ErrUnframeable is returned by Encode for records the positional layout
	// cannot represent: a nil record, or a stack without a code.
	ErrUnframeable = errors.New("wire: record cannot be framed")

	// ErrUnknownMessageType is returned by DecodeMessage for a discriminant
	// this package has no decoder for.
	ErrUnknownMessageType = errors.New("wire: unknown message type")

	errTruncated    = errors.New("truncated")
	errNonCanonical = errors.New("non-canonical varint")
	errTooLong      = errors.New("length exceeds field limit")
)
