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
	"errors"
	"testing"

	"dirpx.dev/joberr"
)

func TestJobErrorMessage_RoundTrip(t *testing.T) {
	rec := joberr.New(errors.New("disk full"))
	msg := NewJobErrorMessage(7, rec)

	if msg.ID() != 7 || msg.Type() != TypeJobError {
		t.Fatalf("unexpected header: id=%d type=%s", msg.ID(), msg.Type())
	}

	payload, err := msg.AppendPayload(nil)
	if err != nil {
		t.Fatalf("AppendPayload: %v", err)
	}
	if len(payload) != msg.Size() {
		t.Fatalf("Size() = %d, payload is %d bytes", msg.Size(), len(payload))
	}

	got, err := Default().DecodeMessage(7, TypeJobError, payload)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	jm, ok := got.(*JobErrorMessage)
	if !ok {
		t.Fatalf("DecodeMessage returned %T", got)
	}
	if jm.ID() != 7 || !joberr.Equal(jm.Record(), rec) {
		t.Fatalf("decoded message mismatch: id=%d rec=%v", jm.ID(), jm.Record())
	}
}

func TestDecodeMessage_Errors(t *testing.T) {
	if _, err := Default().DecodeMessage(1, TypeUnknown, nil); !errors.Is(err, ErrUnknownMessageType) {
		t.Fatalf("err = %v, want ErrUnknownMessageType", err)
	}
	if _, err := Default().DecodeMessage(1, MessageType(42), nil); !errors.Is(err, ErrUnknownMessageType) {
		t.Fatalf("err = %v, want ErrUnknownMessageType", err)
	}
	if _, err := Default().DecodeMessage(1, TypeJobError, []byte{0x05}); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("err = %v, want ErrMalformedPayload", err)
	}
}

func TestMessageType_String(t *testing.T) {
	if TypeJobError.String() != "JobError" {
		t.Fatalf("String() = %q", TypeJobError.String())
	}
	if MessageType(9).String() != "MessageType(9)" {
		t.Fatalf("String() = %q", MessageType(9).String())
	}
}
