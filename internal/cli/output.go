package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles for console output. Colors degrade gracefully on dumb terminals
// via lipgloss's profile detection.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Printer writes status lines with fixed emoji prefixes. Quiet suppresses
// everything except errors.
type Printer struct {
	Out   io.Writer
	Quiet bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, quiet bool) *Printer {
	return &Printer{Out: out, Quiet: quiet}
}

// Successf prints a ✅-prefixed line.
func (p *Printer) Successf(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.Out, successStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Warnf prints a ⚠️-prefixed line.
func (p *Printer) Warnf(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.Out, warnStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Errorf prints a ❌-prefixed line. Not suppressed by Quiet.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.Out, errorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Infof prints an unprefixed line.
func (p *Printer) Infof(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.Out)
}
