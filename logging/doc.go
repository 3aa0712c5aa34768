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

// Package logging builds zerolog loggers and renders joberr records as
// structured log fields.
//
// Records are logged as a nested object under FieldJobError:
//
//	{"level":"error","job_error":{"type":"PathError","message":"open /x: no such file or directory","code":"ENOENT"},"message":"job failed"}
//
// Optional fields are omitted when absent, mirroring the wire form.
package logging
