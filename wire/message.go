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

	"dirpx.dev/joberr/apis"
)

// MessageType is the discriminant the worker transport stores in its
// envelope so a receiver can pick the right payload decoder.
type MessageType uint8

const (
	// TypeUnknown is the zero value; it is never sent.
	TypeUnknown MessageType = iota

	// TypeJobError marks a job error payload.
	TypeJobError
)

// String returns the name of the message type.
func (t MessageType) String() string {
	switch t {
	case TypeJobError:
		return "JobError"
	default:
		return fmt.Sprintf("MessageType(%d)", uint8(t))
	}
}

// Message is a payload the worker transport can frame. The transport writes
// ID and Type into its envelope, sizes its buffer with Size, and appends the
// payload with AppendPayload.
type Message interface {
	ID() uint64
	Type() MessageType
	Size() int
	AppendPayload(dst []byte) ([]byte, error)
}

// JobErrorMessage pairs a job id with the record of its failure.
type JobErrorMessage struct {
	id     uint64
	record apis.Record
	codec  *Codec
}

var _ Message = (*JobErrorMessage)(nil)

// NewJobErrorMessage returns a message for job id using the default codec.
func NewJobErrorMessage(id uint64, r apis.Record) *JobErrorMessage {
	return defaultCodec.NewJobErrorMessage(id, r)
}

// NewJobErrorMessage returns a message for job id encoded with c.
func (c *Codec) NewJobErrorMessage(id uint64, r apis.Record) *JobErrorMessage {
	return &JobErrorMessage{id: id, record: r, codec: c}
}

// ID returns the job id.
func (m *JobErrorMessage) ID() uint64 { return m.id }

// Type returns TypeJobError.
func (m *JobErrorMessage) Type() MessageType { return TypeJobError }

// Record returns the carried record.
func (m *JobErrorMessage) Record() apis.Record { return m.record }

// Size returns the payload size in bytes.
func (m *JobErrorMessage) Size() int { return m.codec.Size(m.record) }

// AppendPayload appends the encoded record to dst.
func (m *JobErrorMessage) AppendPayload(dst []byte) ([]byte, error) {
	return m.codec.Append(dst, m.record)
}

// DecodeMessage decodes the payload of a message whose id and type were read
// from the transport envelope.
func (c *Codec) DecodeMessage(id uint64, t MessageType, payload []byte) (Message, error) {
	switch t {
	case TypeJobError:
		rec, err := c.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", id, err)
		}
		return c.NewJobErrorMessage(id, rec), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMessageType, t)
	}
}
