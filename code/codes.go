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

package code

// Platform error codes
//
// These are the POSIX errno names that the status mapper knows about. They
// are the values produced by Errno for the corresponding syscall.Errno on
// unix platforms.
const (
	// NotExist: no such file or directory.
	NotExist Code = "ENOENT"

	// Exist: file exists.
	Exist Code = "EEXIST"

	// Access: permission denied by file mode or ACL.
	Access Code = "EACCES"

	// Perm: operation not permitted for the calling process.
	Perm Code = "EPERM"

	// Invalid: invalid argument.
	Invalid Code = "EINVAL"

	// TimedOut: connection or operation timed out.
	TimedOut Code = "ETIMEDOUT"

	// ConnRefused: connection refused by the peer.
	ConnRefused Code = "ECONNREFUSED"

	// ConnReset: connection reset by the peer.
	ConnReset Code = "ECONNRESET"

	// Pipe: write on a closed pipe or socket.
	Pipe Code = "EPIPE"

	// HostUnreach: no route to host.
	HostUnreach Code = "EHOSTUNREACH"

	// Again: resource temporarily unavailable.
	Again Code = "EAGAIN"

	// NoSpace: no space left on device.
	NoSpace Code = "ENOSPC"

	// TooManyFiles: per-process open file limit reached.
	TooManyFiles Code = "EMFILE"
)
