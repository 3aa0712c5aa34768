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

// Package adapter converts joberr records into portable forms used by
// transports and log sinks: the protobuf well-known Struct (for payloads that
// travel inside other protobuf messages) and apis.Descriptor (for sinks that
// want the resolved statuses alongside the failure).
//
// The Struct form carries the same keys as apis.View: "type", "message" and,
// when present, "code" and "stack".
package adapter
