package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cognicore/wordhist/pkg/wordhist"
	"github.com/cognicore/wordhist/pkg/wordhist/internalerr"
)

const (
	optionIngest    = "1"
	optionList      = "2"
	optionHistogram = "3"
	optionQuit      = "4"
)

// maxTextBytes bounds a single pasted text.
const maxTextBytes = 16 << 20

// session is the state of one interactive run. current is nil until a
// text has been ingested.
type session struct {
	analyzer *wordhist.Analyzer
	in       *bufio.Scanner
	out      io.Writer
	chartOut string
	current  *wordhist.Text
}

func newSession(analyzer *wordhist.Analyzer, in io.Reader, out io.Writer, chartOut string) *session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTextBytes)
	return &session{
		analyzer: analyzer,
		in:       scanner,
		out:      out,
		chartOut: chartOut,
	}
}

// run shows the menu until the user quits or input ends. A read failure
// is returned; a clean end of input is not an error.
func (s *session) run() error {
	fmt.Fprintln(s.out, "Welcome to the word histogram.")
	for {
		s.printMenu()
		fmt.Fprint(s.out, "Choose an option: ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.readErr()
		}
		if quit := s.handle(strings.TrimSpace(s.in.Text())); quit {
			return s.readErr()
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Choose one of the following options:")
	fmt.Fprintln(s.out, "\t1- Enter a text.")
	fmt.Fprintln(s.out, "\t2- Print the list of unique words.")
	fmt.Fprintf(s.out, "\t3- Show a histogram of the %d most used words.\n", s.analyzer.TopN())
	fmt.Fprintln(s.out, "\t4- Exit.")
}

// handle executes one menu choice and reports whether the session is over.
func (s *session) handle(choice string) bool {
	switch choice {
	case optionIngest:
		fmt.Fprint(s.out, "\nEnter the text: ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			if err := s.readErr(); err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
			}
			return true
		}
		s.ingest(s.in.Text())
	case optionList:
		if s.current == nil {
			s.noText()
			return false
		}
		s.list()
	case optionHistogram:
		if s.current == nil {
			s.noText()
			return false
		}
		s.histogram()
	case optionQuit:
		fmt.Fprintln(s.out, "\nThank you for using the word histogram.")
		return true
	default:
		fmt.Fprintln(s.out, "\nOption not found.")
	}
	return false
}

func (s *session) readErr() error {
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (s *session) ingest(text string) {
	s.current = s.analyzer.Ingest(text)
	sum := s.current.Summary()
	fmt.Fprintf(s.out, "Text %s: %d words, %d unique.\n", s.current.ID, sum.Tokens, sum.UniqueTerms)
}

func (s *session) list() {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "[%s]\n", strings.Join(s.current.Terms(), ", "))
}

func (s *session) histogram() {
	err := s.renderHistogram()
	switch {
	case errors.Is(err, internalerr.ErrEmptyInput):
		fmt.Fprintln(s.out, "\nThe text has no words to plot.")
	case err != nil:
		fmt.Fprintf(s.out, "\nError: %v\n", err)
	}
}

// renderHistogram draws the current text to stdout or to chartOut.
func (s *session) renderHistogram() error {
	if s.current == nil {
		return internalerr.ErrNoText
	}
	if s.chartOut == "" {
		return s.analyzer.RenderHistogram(s.out, s.current)
	}

	f, err := os.Create(s.chartOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.chartOut, err)
	}
	if err := s.analyzer.RenderHistogram(f, s.current); err != nil {
		f.Close()
		os.Remove(s.chartOut)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nHistogram written to %s\n", s.chartOut)
	return nil
}

// oneShot serves -list and -hist. Unlike the menu it fails when there is
// nothing to show, so callers can exit non-zero.
func (s *session) oneShot(list, hist bool) error {
	if s.current == nil {
		return fmt.Errorf("--list and --hist need --text or --file: %w", internalerr.ErrNoText)
	}
	if list {
		s.list()
	}
	if hist {
		if err := s.renderHistogram(); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) noText() {
	fmt.Fprintln(s.out, "\nYou must enter a text first.")
}
