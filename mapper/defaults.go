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

package mapper

import (
	"net/http"

	"dirpx.dev/joberr/category"
	"dirpx.dev/joberr/code"
	"google.golang.org/grpc/codes"
)

// StatusClientClosedRequest is the non-standard (nginx) status used for
// cancelled work.
const StatusClientClosedRequest = 499

// defaultHTTP defines the library's built-in HTTP mappings for well-known
// platform codes. These are only defaults: callers are expected to adjust
// them where HTTP is actually produced.
var defaultHTTP = map[code.Code]int{
	code.NotExist:     http.StatusNotFound,            // Input file/resource is missing.
	code.Exist:        http.StatusConflict,            // Output already exists.
	code.Access:       http.StatusForbidden,           // Denied by file mode or ACL.
	code.Perm:         http.StatusForbidden,           // Denied for this process.
	code.Invalid:      http.StatusBadRequest,          // Job was given an invalid argument.
	code.TimedOut:     http.StatusGatewayTimeout,      // Dependency did not answer in time.
	code.ConnRefused:  http.StatusServiceUnavailable,  // Dependency is down.
	code.ConnReset:    http.StatusServiceUnavailable,  // Dependency dropped the connection.
	code.Pipe:         http.StatusServiceUnavailable,  // Peer went away mid-write.
	code.HostUnreach:  http.StatusServiceUnavailable,  // Network partition.
	code.Again:        http.StatusServiceUnavailable,  // Transient resource shortage.
	code.NoSpace:      http.StatusInsufficientStorage, // Disk is full.
	code.TooManyFiles: http.StatusInsufficientStorage, // Descriptor limit reached.
}

// defaultGRPC defines the library's built-in gRPC mappings for well-known
// platform codes.
var defaultGRPC = map[code.Code]codes.Code{
	code.NotExist:     codes.NotFound,
	code.Exist:        codes.AlreadyExists,
	code.Access:       codes.PermissionDenied,
	code.Perm:         codes.PermissionDenied,
	code.Invalid:      codes.InvalidArgument,
	code.TimedOut:     codes.DeadlineExceeded,
	code.ConnRefused:  codes.Unavailable,
	code.ConnReset:    codes.Unavailable,
	code.Pipe:         codes.Unavailable,
	code.HostUnreach:  codes.Unavailable,
	code.Again:        codes.Unavailable,
	code.NoSpace:      codes.ResourceExhausted,
	code.TooManyFiles: codes.ResourceExhausted,
}

// categoryDeadlineExceeded is the category of context.DeadlineExceeded.
const categoryDeadlineExceeded = "deadlineExceededError"

// defaultCategoryHTTP defines the built-in HTTP rules per category.
var defaultCategoryHTTP = map[string]int{
	category.Aborted:         StatusClientClosedRequest,
	categoryDeadlineExceeded: http.StatusGatewayTimeout,
}

// defaultCategoryGRPC defines the built-in gRPC rules per category.
var defaultCategoryGRPC = map[string]codes.Code{
	category.Aborted:         codes.Canceled,
	categoryDeadlineExceeded: codes.DeadlineExceeded,
}
