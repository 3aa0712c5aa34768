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

// Package category provides the well-known category labels of joberr
// records and the derivation of a label from a raised Go value.
//
// A category is the coarse classification of a failure. For raised values it
// is the name of their dynamic Go type:
//
//   - named types (structs, errors, defined strings) use the type name with
//     pointer indirections removed, e.g. "PathError" for *fs.PathError;
//   - predeclared types use their own name, e.g. "string", "int";
//   - unnamed composite types fall back to their kind, e.g. "map", "slice".
//
// Records that were not built from a value use the fixed labels Generic and
// Aborted.
package category
