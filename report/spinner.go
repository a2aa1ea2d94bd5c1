package report

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Spinner shows the animated status of the check in progress.
//
// Contract:
// - Start is followed by exactly one Succeed or Fail.
// - Succeed and Fail leave a final line on the output.
type Spinner interface {
	Start(message string)
	Succeed(message string)
	Fail(message string)
}

// TerminalSpinner animates on a terminal and degrades to plain lines
// elsewhere.
type TerminalSpinner struct {
	mu      sync.Mutex
	out     io.Writer
	anim    *spinner.Spinner
	success *color.Color
	failure *color.Color
}

// NewTerminalSpinner creates a spinner writing to out. Animation is only
// enabled when out is a terminal file.
func NewTerminalSpinner(out io.Writer, colorize bool) *TerminalSpinner {
	s := &TerminalSpinner{
		out:     out,
		success: newColor(color.FgHiGreen, colorize),
		failure: newColor(color.FgHiRed, colorize),
	}
	if f, ok := out.(*os.File); ok {
		s.anim = spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriterFile(f))
	}
	return s
}

func (s *TerminalSpinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.anim == nil {
		return
	}
	s.anim.Suffix = " " + message
	s.anim.Start()
}

func (s *TerminalSpinner) Succeed(message string) {
	s.stop(s.success.Sprint("✔"), message)
}

func (s *TerminalSpinner) Fail(message string) {
	s.stop(s.failure.Sprint("✖"), message)
}

func (s *TerminalSpinner) stop(symbol, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.anim != nil {
		s.anim.Stop()
	}
	fmt.Fprintf(s.out, "%s %s\n", symbol, message)
}

// NopSpinner returns a Spinner that does nothing.
func NopSpinner() Spinner {
	return nopSpinner{}
}

type nopSpinner struct{}

func (nopSpinner) Start(string)   {}
func (nopSpinner) Succeed(string) {}
func (nopSpinner) Fail(string)    {}

func newColor(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
