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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/joberr/wire"
	"github.com/spf13/pflag"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wire.Varint != "compactsize" || cfg.Wire.MaxFieldLength != wire.DefaultMaxFieldLength {
		t.Fatalf("wire defaults: %+v", cfg.Wire)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" || cfg.Log.Stack {
		t.Fatalf("log defaults: %+v", cfg.Log)
	}
}

func TestLoad_File(t *testing.T) {
	p := writeFile(t, "joberr.yaml", "wire:\n  varint: leb128\n  max_field_length: 1024\nlog:\n  level: debug\n")
	cfg, err := Load(WithFile(p))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wire.Varint != "leb128" || cfg.Wire.MaxFieldLength != 1024 || cfg.Log.Level != "debug" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "joberr.yaml", "wire:\n  varint: leb128\n")
	t.Setenv("JOBERR_WIRE_VARINT", "compactsize")
	t.Setenv("JOBERR_LOG_FORMAT", "console")
	cfg, err := Load(WithFile(p))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wire.Varint != "compactsize" || cfg.Log.Format != "console" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	// Register the variable with t.Setenv so it is restored after the test.
	t.Setenv("JOBERR_WIRE_MAX_FIELD_LENGTH", "")
	os.Unsetenv("JOBERR_WIRE_MAX_FIELD_LENGTH")

	p := writeFile(t, ".env", "JOBERR_WIRE_MAX_FIELD_LENGTH=77\n")
	cfg, err := Load(WithEnvFile(p))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wire.MaxFieldLength != 77 {
		t.Fatalf("max field length = %d; want 77", cfg.Wire.MaxFieldLength)
	}
}

func TestLoad_Flags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyWireVarint, "compactsize", "")
	fs.String(KeyLogLevel, "info", "")
	if err := fs.Parse([]string{"--wire.varint=leb128"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := Load(WithFlags(fs))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wire.Varint != "leb128" {
		t.Fatalf("flag not applied: %+v", cfg.Wire)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unset flag must keep default: %+v", cfg.Log)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"varint", map[string]string{"JOBERR_WIRE_VARINT": "zigzag"}},
		{"max field", map[string]string{"JOBERR_WIRE_MAX_FIELD_LENGTH": "-1"}},
		{"level", map[string]string{"JOBERR_LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(WithFile(filepath.Join(t.TempDir(), "none.yaml"))); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWireConfig_Codec(t *testing.T) {
	c := WireConfig{Varint: "leb128", MaxFieldLength: 10}
	codec := c.Codec()
	if codec.Varint() != wire.LEB128 || codec.MaxFieldLength() != 10 {
		t.Fatalf("codec = %v/%d", codec.Varint().Name(), codec.MaxFieldLength())
	}
}
