// Package console writes user-facing status lines and debug diagnostics.
// Styling goes through a lipgloss renderer bound to the destination writer,
// so output redirected to a file or buffer stays plain text.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Printer renders status lines to an output and an error stream.
type Printer struct {
	mu      sync.Mutex
	out     io.Writer
	err     io.Writer
	noColor bool
	debug   bool

	infoMark    lipgloss.Style
	successMark lipgloss.Style
	warnMark    lipgloss.Style
	errorMark   lipgloss.Style
	debugMark   lipgloss.Style
	muted       lipgloss.Style
}

// Option configures a Printer.
type Option func(*Printer)

// WithNoColor disables styling regardless of the terminal.
func WithNoColor(noColor bool) Option {
	return func(p *Printer) { p.noColor = noColor }
}

// WithDebug enables Debugf output.
func WithDebug(debug bool) Option {
	return func(p *Printer) { p.debug = debug }
}

// New creates a Printer. Nil writers default to os.Stdout and os.Stderr.
func New(out, errOut io.Writer, opts ...Option) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	p := &Printer{out: out, err: errOut}
	for _, opt := range opts {
		opt(p)
	}

	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	p.infoMark = outR.NewStyle().Foreground(lipgloss.Color("12"))
	p.successMark = outR.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	p.warnMark = errR.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	p.errorMark = errR.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	p.debugMark = errR.NewStyle().Foreground(lipgloss.Color("14"))
	p.muted = errR.NewStyle().Foreground(lipgloss.Color("8"))
	return p
}

// Discard returns a Printer that drops everything.
func Discard() *Printer {
	return New(io.Discard, io.Discard, WithNoColor(true))
}

// Infof prints an informational line to the output stream.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, p.infoMark, "→", format, args...)
}

// Successf prints a success line to the output stream.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.out, p.successMark, "✓", format, args...)
}

// Warnf prints a warning line to the error stream.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.err, p.warnMark, "⚠", format, args...)
}

// Errorf prints an error line to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.err, p.errorMark, "✗", format, args...)
}

// Debugf prints a timestamped debug line to the error stream when enabled.
func (p *Printer) Debugf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.debug {
		return
	}

	ts := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	if p.noColor {
		fmt.Fprintf(p.err, "[DEBUG] %s %s\n", ts, msg)
		return
	}
	fmt.Fprintf(p.err, "%s %s %s\n", p.debugMark.Render("[DEBUG]"), p.muted.Render(ts), msg)
}

func (p *Printer) line(w io.Writer, mark lipgloss.Style, symbol, format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if p.noColor {
		fmt.Fprintf(w, "%s %s\n", symbol, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", mark.Render(symbol), msg)
}
