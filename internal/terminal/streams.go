// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package terminal abstracts the three stdio streams, each of which may
// or may not be connected to a terminal. When a stream is a pipe or a
// file the terminal-requiring operations report placeholder values.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Streams is the collection of stdio streams the CLI writes to.
type Streams struct {
	Stdout *OutputStream
	Stderr *OutputStream
	Stdin  *InputStream
}

// OutputStream is one writable stream.
type OutputStream struct {
	File       *os.File
	isTerminal bool
}

// InputStream is the readable stream.
type InputStream struct {
	File       *os.File
	isTerminal bool
}

// Init inspects the process stdio and returns a Streams describing it.
func Init() (*Streams, error) {
	return &Streams{
		Stdout: &OutputStream{File: os.Stdout, isTerminal: isTerminalFile(os.Stdout)},
		Stderr: &OutputStream{File: os.Stderr, isTerminal: isTerminalFile(os.Stderr)},
		Stdin:  &InputStream{File: os.Stdin, isTerminal: isTerminalFile(os.Stdin)},
	}, nil
}

func isTerminalFile(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTerminal reports whether the stream is connected to a terminal.
func (s *OutputStream) IsTerminal() bool { return s.isTerminal }

// Print is a helper for conveniently calling fmt.Fprint on the Stdout stream.
func (s *Streams) Print(a ...interface{}) (n int, err error) {
	return fmt.Fprint(s.Stdout.File, a...)
}

// Printf is a helper for conveniently calling fmt.Fprintf on the Stdout stream.
func (s *Streams) Printf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(s.Stdout.File, format, a...)
}

// Println is a helper for conveniently calling fmt.Fprintln on the Stdout stream.
func (s *Streams) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.Stdout.File, a...)
}

// Eprintf is a helper for conveniently calling fmt.Fprintf on the Stderr stream.
func (s *Streams) Eprintf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(s.Stderr.File, format, a...)
}

// Eprintln is a helper for conveniently calling fmt.Fprintln on the Stderr stream.
func (s *Streams) Eprintln(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.Stderr.File, a...)
}

// StreamsForTesting returns a Streams wired to temp files plus a
// closer that reads back everything written. Test-only.
func StreamsForTesting() (*Streams, func() (stdout, stderr string), error) {
	outFile, err := os.CreateTemp("", "lottiegen-stdout")
	if err != nil {
		return nil, nil, err
	}
	errFile, err := os.CreateTemp("", "lottiegen-stderr")
	if err != nil {
		outFile.Close()
		os.Remove(outFile.Name())
		return nil, nil, err
	}
	streams := &Streams{
		Stdout: &OutputStream{File: outFile},
		Stderr: &OutputStream{File: errFile},
		Stdin:  &InputStream{File: os.Stdin},
	}
	collect := func() (string, string) {
		readBack := func(f *os.File) string {
			f.Seek(0, io.SeekStart)
			data, _ := io.ReadAll(f)
			f.Close()
			os.Remove(f.Name())
			return string(data)
		}
		return readBack(outFile), readBack(errFile)
	}
	return streams, collect, nil
}
