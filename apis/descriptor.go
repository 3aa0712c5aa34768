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

package apis

// Descriptor is a flat, transport-friendly description of a record together
// with the statuses it resolved to.
//
// It is intended for structured logging, tracing, or message bus
// propagation where consumers want the transport decision alongside the
// failure itself.
type Descriptor struct {
	// Type is the record category.
	Type string `json:"type"`

	// Message is the human-readable description.
	Message string `json:"message,omitempty"`

	// Code is the machine-readable identifier; empty when absent.
	Code string `json:"code,omitempty"`

	// HTTPStatus is the resolved HTTP status. A value of 0 means "not
	// resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer).
	GRPCCode int `json:"grpc_code,omitempty"`

	// Retryable is the retry hint derived from GRPCCode.
	Retryable bool `json:"retryable,omitempty"`
}
