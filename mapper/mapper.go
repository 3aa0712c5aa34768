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
	"fmt"
	"strings"

	"dirpx.dev/joberr/apis"
	"dirpx.dev/joberr/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC, per code and per
//     category).
//  2. Apply user-provided options (defaults, overrides, category rules).
//  3. Validate all code keys (via code.Validate) and category keys.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid rule keys.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range defaultCategoryHTTP {
		b.httpCategory[k] = v
	}
	for k, v := range defaultCategoryGRPC {
		b.grpcCategory[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate keys.
	for _, m := range []map[code.Code]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for c := range m {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("mapper: invalid code key %q: %w", c, err)
			}
		}
	}
	for _, m := range []map[string]int{b.httpCategory, b.grpcCategory} {
		for cat := range m {
			if strings.TrimSpace(cat) == "" {
				return nil, fmt.Errorf("mapper: empty category key")
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpCategory: freeze(b.httpCategory),
		grpcCategory: freezeGRPC(b.grpcCategory),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults, per-code exact overrides and per-category rules. Lookups are
// map reads and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over every other tier.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// httpCategory holds HTTP statuses for whole categories.
	httpCategory map[string]int

	// grpcCategory holds gRPC statuses for whole categories.
	grpcCategory map[string]codes.Code

	// fallbackHTTP is used when no rule matches. Typically 500.
	fallbackHTTP int

	// fallbackGRPC is used when no rule matches. Typically codes.Internal.
	fallbackGRPC codes.Code
}

// keyOf returns the record code as a rule key; ok is false when the record
// has no code.
func keyOf(r apis.Record) (code.Code, bool) {
	c, ok := r.Code()
	if !ok {
		return code.Empty, false
	}
	return code.Code(code.Normalize(c)), true
}

// HTTPStatus resolves an HTTP status for the given record.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-category rule;
//  3. per-code default;
//  4. fallback.
func (m *mapper) HTTPStatus(r apis.Record) int {
	_, v := m.resolveHTTP(r)
	return v
}

// GRPCStatus resolves a gRPC status for the given record.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(r apis.Record) codes.Code {
	_, v := m.resolveGRPC(r)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(r apis.Record) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(r),
		GRPC: m.GRPCStatus(r),
	}
}

func (m *mapper) resolveHTTP(r apis.Record) (string, int) {
	if r == nil {
		return "fallback", m.fallbackHTTP
	}
	c, hasCode := keyOf(r)
	if hasCode {
		if v, ok := m.httpOverride[c]; ok {
			return "override", v
		}
	}
	if v, ok := m.httpCategory[r.Category()]; ok {
		return "category", v
	}
	if hasCode {
		if v, ok := m.httpDefault[c]; ok {
			return "default", v
		}
	}
	return "fallback", m.fallbackHTTP
}

func (m *mapper) resolveGRPC(r apis.Record) (string, codes.Code) {
	if r == nil {
		return "fallback", m.fallbackGRPC
	}
	c, hasCode := keyOf(r)
	if hasCode {
		if v, ok := m.grpcOverride[c]; ok {
			return "override", v
		}
	}
	if v, ok := m.grpcCategory[r.Category()]; ok {
		return "category", v
	}
	if hasCode {
		if v, ok := m.grpcDefault[c]; ok {
			return "default", v
		}
	}
	return "fallback", m.fallbackGRPC
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a record.
//
// Example output:
//
//	code="ENOENT" category="PathError"
//	http: source=default -> 404
//	grpc: source=default -> NOTFOUND(5)
func (m *mapper) Explain(r apis.Record) string {
	var b strings.Builder

	cat := "<nil>"
	codeStr := "<absent>"
	if r != nil {
		cat = r.Category()
		if c, ok := r.Code(); ok {
			codeStr = fmt.Sprintf("%q", c)
		}
	}
	fmt.Fprintf(&b, "code=%s category=%q\n", codeStr, cat)

	src, h := m.resolveHTTP(r)
	fmt.Fprintf(&b, "http: source=%s -> %d\n", src, h)

	src, g := m.resolveGRPC(r)
	fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, strings.ToUpper(g.String()), int(g))

	return b.String()
}
