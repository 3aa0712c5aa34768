//go:build !plan9

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

import (
	"errors"
	"fmt"
	"syscall"
)

// Errno looks for a syscall.Errno in the chain of err and returns its
// platform code.
//
// On unix the code is the symbolic name ("ENOENT"). Errnos without a known
// name, and errnos on other platforms, are rendered as "errno <n>".
func Errno(err error) (string, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) || errno == 0 {
		return "", false
	}
	if name := errnoName(errno); name != "" {
		return name, true
	}
	return fmt.Sprintf("errno %d", uintptr(errno)), true
}
