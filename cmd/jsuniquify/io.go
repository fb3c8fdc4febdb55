package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	multierror "github.com/hashicorp/go-multierror"
)

// inputFiles returns args unchanged, or a single "-" (stdin) entry if
// args is empty.
func inputFiles(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// eachFile runs fn against every path in files (as returned by
// inputFiles), collecting every failure into one aggregated error rather
// than stopping at the first, so a multi-file invocation reports
// everything wrong in one pass.
func eachFile(files []string, fn func(path string) error) error {
	var result *multierror.Error
	for _, path := range files {
		if err := fn(path); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		}
	}
	return result.ErrorOrNil()
}

// colorEnabled reports whether diagnostics should be colorized given the
// --color flag value and, for "auto", color.NoColor (which fatih/color
// sets when stdout is not a terminal).
func colorEnabled(flag string) bool {
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		return color.NoColor == false
	}
}
