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

// Package mapper provides deterministic, immutable mappings from joberr
// records to transport-level statuses for HTTP and gRPC, and a retry hint
// derived from them.
//
// # Resolution model
//
// A record is matched on its code (when present) and its category. A
// Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. rule for the category;
//  3. default for the code (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Category rules sit above code defaults so that, for example, an aborted
// record maps to codes.Canceled even if the failure that triggered the
// cancellation carried "ENOENT".
//
// # Library defaults
//
// The package ships with defaults for common POSIX codes (ENOENT -> 404 /
// NotFound, ECONNREFUSED -> 503 / Unavailable, ...) and for the aborted
// category (499 / Canceled). These can be adjusted at build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.NotExist, 410),
//	    mapper.WithGRPCCategory("ValidationError", int(codes.InvalidArgument)),
//	)
//	if err != nil {
//	    // invalid code key, etc.
//	}
//
//	st := m.Status(rec)
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a record was
// resolved, including which tier matched. It is intended for inspection and
// logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction the
// Mapper is safe to share across goroutines.
package mapper
