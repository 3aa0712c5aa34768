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

// Package apis defines the public Go-level contracts for joberr.
//
// The goal of this package is to provide small, composable interfaces that
// other packages (wire codec, mappers, gRPC/HTTP adapters, loggers) can depend
// on without importing the concrete record implementation in the root
// package.
//
// It contains three kinds of declarations:
//
//   - Record: the read-only shape of a normalized job error;
//   - capability interfaces (NamedError, TracedError, SystemError) that raised
//     Go errors may implement to steer normalization;
//   - small view types (View, Descriptor, Status) that are safe to marshal.
//
// This package must remain lightweight and should not introduce heavy
// dependencies, so it only contains interfaces and very small view types.
package apis
