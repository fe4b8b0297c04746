package main

import (
	"flag"
	"fmt"
	"io"
)

type options struct {
	input, output                   string
	decode, strict, verify, verbose bool
}

func parseArgs(args []string, stderr io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet("b64res", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.decode, "d", false, "decode input instead of encoding it")
	fs.BoolVar(&opts.strict, "strict", false, "with -d, reject unpadded groups, non-zero padding bits and data after the padding")
	fs.BoolVar(&opts.verify, "verify", false, "without -d, decode the encoded output and check that it matches the input")
	fs.BoolVar(&opts.verbose, "v", false, "log decoder activity to stderr")
	fs.StringVar(&opts.input, "i", "-", "input file, or - for stdin")
	fs.StringVar(&opts.output, "o", "-", "output file, or - for stdout")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	if opts.decode && opts.verify {
		return opts, fmt.Errorf("do not specify -verify with -d")
	}
	if opts.strict && !opts.decode {
		return opts, fmt.Errorf("-strict requires -d")
	}
	if opts.input == "" || opts.output == "" {
		return opts, fmt.Errorf("-i and -o must not be empty")
	}
	return opts, nil
}
