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

package joberr

import (
	"dirpx.dev/joberr/logging"
	"github.com/rs/zerolog"
)

var _ zerolog.LogObjectMarshaler = (*Error)(nil)

// MarshalZerologObject implements zerolog.LogObjectMarshaler so a record can
// be attached to a log event with Object or EmbedObject.
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil {
		return
	}
	logging.AppendFields(ev, e)
}
