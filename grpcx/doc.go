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

// Package grpcx carries joberr records across gRPC boundaries.
//
// A record travels as a status whose code comes from an apis.Mapper and
// whose details hold the standard google.rpc.ErrorInfo (category and code)
// and, when the record has a stack, google.rpc.DebugInfo. Using the standard
// detail types keeps the status readable by clients that know nothing about
// joberr.
package grpcx
