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

// Package code provides the well-known machine codes carried by joberr
// records, together with parsing and validation for codes used as mapping
// keys.
//
// A record code is the short machine-readable identifier of a failure. It is
// either the kind name of an error (e.g. "TypeError"), or, for platform-level
// failures, the platform code (e.g. "ENOENT"). Record codes themselves are
// carried verbatim; Parse/Validate are only used where a code is a rule key,
// such as in the status mapper.
//
// On unix platforms, Errno resolves a syscall.Errno found in an error chain to
// its symbolic name using golang.org/x/sys/unix.
package code
