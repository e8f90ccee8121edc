package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// source yields the texts of expressions given to a command.
type source struct {
	args []string
	in   io.Reader
	// lines splits in into one expression per line.
	lines bool
	// prompt, if not nil, receives a prompt before each line.
	prompt io.Writer
	// file is the opened --in file, if any.
	file *os.File
}

// openSource collects the inputs of a command from its arguments and flags.
// The caller must close the result.
func openSource(cmd *cobra.Command, args []string) (*source, error) {
	s := source{args: args, lines: getFlag(cmd, "lines")}
	name := getString(cmd, "in")
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		s.in, s.file = bufio.NewReader(f), f
	case name == "-", len(args) == 0:
		s.in = os.Stdin
		if term.IsTerminal(int(os.Stdin.Fd())) {
			s.lines = true
			s.prompt = os.Stderr
		}
	}
	return &s, nil
}

// Close closes the --in file, if one was opened.
func (s *source) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// runInputs applies f to every input of a command and returns the exit status
// of the command: 0 if f succeeded on all of them and 1 otherwise. Failures are
// logged as they happen so that later inputs still run.
func runInputs(cmd *cobra.Command, args []string, f func(text string) error) int {
	src, err := openSource(cmd, args)
	if err != nil {
		log.Error(err)
		return 1
	}
	defer src.Close()
	return src.run(f)
}

func (s *source) run(f func(text string) error) int {
	status := 0
	err := s.each(func(text string) {
		if err := f(text); err != nil {
			log.Error(err)
			status = 1
		}
	})
	if err != nil {
		log.Error(err)
		return 1
	}
	return status
}

// each calls f with each nonblank expression text. Arguments come before the
// input stream.
func (s *source) each(f func(text string)) error {
	for _, a := range s.args {
		if t := strings.TrimSpace(a); t != "" {
			f(t)
		}
	}
	if s.in == nil {
		return nil
	}
	if !s.lines {
		b, err := io.ReadAll(s.in)
		if err != nil {
			return err
		}
		if t := strings.TrimSpace(string(b)); t != "" {
			f(t)
		}
		return nil
	}
	sc := bufio.NewScanner(s.in)
	for {
		if s.prompt != nil {
			fmt.Fprint(s.prompt, "> ")
		}
		if !sc.Scan() {
			break
		}
		if t := strings.TrimSpace(sc.Text()); t != "" {
			f(t)
		}
	}
	if s.prompt != nil {
		fmt.Fprintln(s.prompt)
	}
	return sc.Err()
}
