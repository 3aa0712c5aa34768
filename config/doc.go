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

// Package config loads joberr tooling configuration.
//
// Values come, in increasing priority, from built-in defaults, an optional
// YAML/JSON/TOML file, an optional .env file, JOBERR_* environment variables
// and bound command-line flags. Nested keys map to environment variables by
// replacing dots with underscores: wire.max_field_length is read from
// JOBERR_WIRE_MAX_FIELD_LENGTH.
package config
