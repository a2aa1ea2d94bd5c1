package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jwalton/go-supportscolor"

	"github.com/jonwraymond/appcheck/health"
)

// Tone selects the color of a message.
type Tone int

const (
	// Plain renders without color.
	Plain Tone = iota
	// Success renders in bright green.
	Success
	// Failure renders in bright red.
	Failure
)

// Fixed closing messages printed after the summary block.
const (
	MessageAllSuccess  = "All checks success."
	MessageAllFailed   = "All checks failed."
	MessageSomeFailed  = "Some checks failed."
	bannerText         = "check starts"
	ruleChar           = "-"
	progressLabelOK    = "[SUCCESS]"
	progressLabelError = "[FAILURE]"
)

// Reporter prints check progress and summaries. It implements health.Reporter.
type Reporter struct {
	out      io.Writer
	width    WidthFunc
	spinner  Spinner
	colorize bool
	silent   bool

	cols    int
	success *color.Color
	failure *color.Color
}

var _ health.Reporter = (*Reporter)(nil)

// Option configures a Reporter.
type Option func(*Reporter)

// WithOutput sets the output sink. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.out = w
		}
	}
}

// WithWidth sets the terminal width provider. Default: TerminalWidth.
func WithWidth(fn WidthFunc) Option {
	return func(r *Reporter) {
		if fn != nil {
			r.width = fn
		}
	}
}

// WithSpinner sets the animated status primitive.
// Default: a TerminalSpinner on the output sink.
func WithSpinner(s Spinner) Option {
	return func(r *Reporter) {
		r.spinner = s
	}
}

// WithColor forces color on or off. Default: detected from stdout.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.colorize = enabled
	}
}

// WithSilent suppresses all output when silent is true.
func WithSilent(silent bool) Option {
	return func(r *Reporter) {
		r.silent = silent
	}
}

// New creates a Reporter.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		out:      os.Stdout,
		width:    TerminalWidth,
		colorize: supportscolor.Stdout().SupportsColor,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.success = newColor(color.FgHiGreen, r.colorize)
	r.failure = newColor(color.FgHiRed, r.colorize)

	switch {
	case r.silent:
		r.spinner = NopSpinner()
	case r.spinner == nil:
		r.spinner = NewTerminalSpinner(r.out, r.colorize)
	}
	return r
}

// Begin samples the terminal width for the run and prints the banner.
func (r *Reporter) Begin(total int) {
	r.cols = r.width()
	if r.silent {
		return
	}

	r.DisplayMessage(r.Center(bannerText), Plain)
	r.println(fmt.Sprintf("collected %d items", total))
	r.println("")
}

// CheckStarted announces a check and starts the spinner.
func (r *Reporter) CheckStarted(name string) {
	if r.silent {
		return
	}
	r.println(fmt.Sprintf("Starting %s...", name))
	r.spinner.Start(name)
}

// CheckFinished resolves the spinner and prints the check's error, if any.
func (r *Reporter) CheckFinished(result health.Result) {
	if r.silent {
		return
	}

	if result.Success {
		r.spinner.Succeed(progressLabelOK + " " + result.Name)
		return
	}
	r.spinner.Fail(progressLabelError + " " + result.Name)
	if result.Err != nil {
		r.println(r.Paint(result.Err.Error(), Failure))
	}
}

// Summary prints the colored result block followed by the closing message.
func (r *Reporter) Summary(s health.Summary) {
	if r.silent {
		return
	}

	secs := s.Elapsed.Seconds()
	text, tone := fmt.Sprintf("%d [success] in %.2fs", s.Successes, secs), Success
	if s.Failures > 0 {
		text, tone = fmt.Sprintf("%d [failure] in %.2fs", s.Failures, secs), Failure
	}

	r.DisplayMessage(r.Paint(r.Center(text), tone), tone)
	r.println(Verdict(s))
}

// Verdict returns the closing message for a run. An empty run counts as
// all successful.
func Verdict(s health.Summary) string {
	switch {
	case s.Failures == 0:
		return MessageAllSuccess
	case s.Failures == s.Total():
		return MessageAllFailed
	default:
		return MessageSomeFailed
	}
}

// DisplayMessage prints text between two rule lines as wide as the terminal.
// The rules take the given tone.
func (r *Reporter) DisplayMessage(text string, tone Tone) {
	if r.silent {
		return
	}

	rule := r.Paint(strings.Repeat(ruleChar, r.columns()), tone)
	r.println(rule)
	r.println(text)
	r.println(rule)
}

// Center pads text with spaces to center it in the terminal width. When the
// padding is odd, the extra space goes left only if the width is odd too.
func (r *Reporter) Center(text string) string {
	width := r.columns()
	pad := width - utf8.RuneCountInString(text)
	if pad <= 0 {
		return text
	}

	left := pad/2 + (pad & width & 1)
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}

// Paint wraps text in the tone's color, or returns it unchanged when color
// is disabled or the tone is Plain.
func (r *Reporter) Paint(text string, tone Tone) string {
	switch tone {
	case Success:
		return r.success.Sprint(text)
	case Failure:
		return r.failure.Sprint(text)
	default:
		return text
	}
}

func (r *Reporter) columns() int {
	if r.cols <= 0 {
		r.cols = r.width()
	}
	return r.cols
}

func (r *Reporter) println(line string) {
	fmt.Fprintln(r.out, line)
}
