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

// Command joberr encodes, decodes and inspects job error payloads as they
// travel between a worker pool and its workers.
//
// Usage:
//
//	joberr encode --type PathError --message "open x" --code ENOENT
//	joberr decode 09506174684572726f72...
//	echo 0950... | joberr inspect
//
// Payloads are read and written as hex.
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dirpx.dev/joberr"
	"dirpx.dev/joberr/adapter"
	"dirpx.dev/joberr/apis"
	"dirpx.dev/joberr/category"
	"dirpx.dev/joberr/config"
	"dirpx.dev/joberr/logging"
	"dirpx.dev/joberr/mapper"
	"dirpx.dev/joberr/wire"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const usage = `usage: joberr <command> [flags] [hex]

commands:
  encode    build a record from flags and print its payload
  decode    decode a payload and print the record as JSON
  inspect   decode a payload and explain its transport statuses
`

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var cmd func(env, []string) error
	switch args[0] {
	case "encode":
		cmd = encode
	case "decode":
		cmd = decode
	case "inspect":
		cmd = inspect
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "joberr: unknown command %q\n%s", args[0], usage)
		return 2
	}

	fs := pflag.NewFlagSet("joberr "+args[0], pflag.ContinueOnError)
	fs.SetOutput(stderr)
	e := env{fs: fs, stdin: stdin, stdout: stdout}
	e.addGlobalFlags()
	if args[0] == "encode" {
		e.addEncodeFlags()
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(
		config.WithFile(e.configFile),
		config.WithEnvFile(e.envFile),
		config.WithFlags(fs),
	)
	if err != nil {
		fmt.Fprintf(stderr, "joberr: %v\n", err)
		return 1
	}
	e.cfg = cfg
	e.log = logging.New(cfg.Log, stderr)
	e.codec = cfg.Wire.Codec()

	if err := cmd(e, fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
			return 2
		}
		e.log.Error().Err(err).Str("command", args[0]).Msg("command failed")
		return 1
	}
	return 0
}

type env struct {
	fs     *pflag.FlagSet
	stdin  io.Reader
	stdout io.Writer

	configFile string
	envFile    string

	cfg   config.Config
	log   zerolog.Logger
	codec *wire.Codec
}

func (e *env) addGlobalFlags() {
	e.fs.StringVar(&e.configFile, "config", "", "config file (yaml, json or toml)")
	e.fs.StringVar(&e.envFile, "env-file", "", ".env file to load")
	e.fs.String(config.KeyWireVarint, wire.CompactSize.Name(), "length prefix scheme: compactsize or leb128")
	e.fs.Int(config.KeyWireMaxFieldLength, wire.DefaultMaxFieldLength, "per-field byte limit")
	e.fs.String(config.KeyLogLevel, "info", "log level")
	e.fs.String(config.KeyLogFormat, logging.FormatJSON, "log format: json or console")
	e.fs.Bool(config.KeyLogStack, false, "include traces in logs")
}

func (e *env) addEncodeFlags() {
	e.fs.String("type", "", "record category (default JobError)")
	e.fs.String("message", "", "record message")
	e.fs.String("code", "", "record code; absent unless set")
	e.fs.String("stack", "", "record stack; absent unless set, requires --code")
	e.fs.Bool("aborted", false, "use the aborted default category when --type is not set")
}

// recordFromFlags builds a record from the encode flags. Flags that were not
// given are absent, which is distinct from given but empty.
func recordFromFlags(fs *pflag.FlagSet) (*joberr.Error, error) {
	v := apis.View{Type: category.Generic}
	if aborted, _ := fs.GetBool("aborted"); aborted {
		v.Type = category.Aborted
	}
	if fs.Changed("type") {
		v.Type, _ = fs.GetString("type")
	}
	v.Message, _ = fs.GetString("message")
	if fs.Changed("code") {
		c, _ := fs.GetString("code")
		v.Code = &c
	}
	if fs.Changed("stack") {
		s, _ := fs.GetString("stack")
		v.Stack = &s
	}
	return joberr.FromView(v)
}

func encode(e env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	rec, err := recordFromFlags(e.fs)
	if err != nil {
		return err
	}
	b, err := e.codec.Encode(rec)
	if err != nil {
		return err
	}
	e.log.Debug().
		Object(logging.FieldJobError, logging.Object(rec, e.cfg.Log.Stack)).
		Int("size", len(b)).
		Str("varint", e.codec.Varint().Name()).
		Msg("encoded")
	_, err = fmt.Fprintln(e.stdout, hex.EncodeToString(b))
	return err
}

// readPayload takes the payload from the single argument, or from stdin when
// there is none.
func readPayload(e env, args []string) ([]byte, error) {
	var text string
	switch len(args) {
	case 0:
		b, err := io.ReadAll(bufio.NewReader(e.stdin))
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	case 1:
		text = args[0]
	default:
		return nil, errUsage
	}
	b, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("payload is not hex: %w", err)
	}
	return b, nil
}

func decodeRecord(e env, args []string) (*joberr.Error, error) {
	b, err := readPayload(e, args)
	if err != nil {
		return nil, err
	}
	rec, err := e.codec.Decode(b)
	if err != nil {
		return nil, err
	}
	e.log.Debug().
		Object(logging.FieldJobError, logging.Object(rec, e.cfg.Log.Stack)).
		Int("size", len(b)).
		Msg("decoded")
	return rec, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func decode(e env, args []string) error {
	rec, err := decodeRecord(e, args)
	if err != nil {
		return err
	}
	return writeJSON(e.stdout, rec.ErrorView())
}

func inspect(e env, args []string) error {
	rec, err := decodeRecord(e, args)
	if err != nil {
		return err
	}
	m, err := mapper.New()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(e.stdout, m.Explain(rec)); err != nil {
		return err
	}
	return writeJSON(e.stdout, adapter.ToDescriptor(rec, m.Status(rec)))
}
