// Command b64res encodes and decodes the Base64 payloads embedded
// in text-based resource files.
//
// Usage:
//
//	b64res [-i IN] [-o OUT] [-verify] [-v]
//	b64res -d [-strict] [-i IN] [-o OUT] [-v]
//
// Without -d,
// b64res encodes IN
// (stdin by default)
// and writes the result to OUT
// (stdout by default).
// A newline is appended when OUT is a terminal.
// With -verify,
// the encoded output is decoded again and compared with the input
// before anything is written.
//
// With -d,
// b64res decodes IN.
// Whitespace in the input is ignored
// and a NUL byte ends it.
// With -strict,
// unpadded final groups,
// non-zero padding bits
// and data after the padding
// are errors.
//
// The exit status is 0 on success,
// 1 if the input could not be decoded
// or an I/O error occurred,
// and 2 for usage errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ericlagergren/payload/base64"
)

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF6B6B"))

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		report(stderr, err)
		return 2
	}

	logger := zap.NewNop()
	if opts.verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		if logger, err = cfg.Build(); err != nil {
			report(stderr, err)
			return 1
		}
	}
	defer logger.Sync()
	base64.SetLogger(logger)
	defer base64.SetLogger(nil)

	if err := doRun(opts, stdin, stdout, logger); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

func doRun(opts options, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	src, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	var out []byte
	if opts.decode {
		out, err = decode(opts, src)
	} else {
		out, err = encode(opts, src)
	}
	if err != nil {
		return err
	}
	logger.Debug("b64res: done",
		zap.Bool("decode", opts.decode),
		zap.Int("in", len(src)),
		zap.Int("out", len(out)),
	)
	return writeOutput(opts.output, stdout, out, !opts.decode)
}

func encode(opts options, src []byte) ([]byte, error) {
	dst := make([]byte, base64.Encode(nil, src))
	base64.Encode(dst, src)

	if opts.verify {
		buf, err := base64.Decode(dst)
		if err != nil {
			return nil, fmt.Errorf("verifying: %w", err)
		}
		defer buf.Release()
		if !buf.Equal(src) {
			return nil, fmt.Errorf("verifying: decoded output does not match input")
		}
	}
	return dst, nil
}

func decode(opts options, src []byte) ([]byte, error) {
	enc := base64.StdEncoding
	if opts.strict {
		enc = enc.Strict()
	}
	d := base64.NewDecoder(enc)
	defer d.Release()
	if err := d.Decode(src); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", opts.input, err)
	}
	return append([]byte(nil), d.Bytes()...), nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// writeOutput writes p to the named file or stdout. If text is
// set and the output is a terminal, a newline is appended.
func writeOutput(name string, stdout io.Writer, p []byte, text bool) error {
	if name != "-" {
		return os.WriteFile(name, p, 0o644)
	}
	if text && isTerminal(stdout) {
		p = append(p, '\n')
	}
	_, err := stdout.Write(p)
	return err
}

func report(w io.Writer, err error) {
	msg := "b64res: " + err.Error()
	if isTerminal(w) {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
