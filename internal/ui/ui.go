// Package ui prints human-facing status lines for the CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes styled status lines to a writer.
type Printer struct {
	w io.Writer

	dim     *color.Color
	subtle  *color.Color
	accent  *color.Color
	success *color.Color
	failure *color.Color
	warning *color.Color
	info    *color.Color
}

// New creates a Printer. Colour is disabled when colour is false.
func New(w io.Writer, colour bool) *Printer {
	p := &Printer{
		w:       w,
		dim:     color.New(color.FgHiBlack),
		subtle:  color.New(color.FgWhite),
		accent:  color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		warning: color.New(color.FgYellow),
		info:    color.New(color.FgBlue),
	}

	for _, c := range []*color.Color{p.dim, p.subtle, p.accent, p.success, p.failure, p.warning, p.info} {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Success prints a success line.
func (p *Printer) Success(format string, args ...any) {
	p.status(p.success.Sprint("✔"), p.success.Sprintf(format, args...))
}

// Error prints an error line.
func (p *Printer) Error(format string, args ...any) {
	p.status(p.failure.Sprint("✖"), p.failure.Sprintf(format, args...))
}

// Warning prints a warning line.
func (p *Printer) Warning(format string, args ...any) {
	p.status(p.warning.Sprint("⚠"), p.warning.Sprintf(format, args...))
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	p.status(p.info.Sprint("ℹ"), p.subtle.Sprintf(format, args...))
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	fill := max(2, 50-len(title))
	fmt.Fprintf(p.w, "\n%s %s %s\n",
		p.dim.Sprint("──"),
		p.accent.Sprint(title),
		p.dim.Sprint(strings.Repeat("─", fill)))
}

// Item prints an indented label/value pair.
func (p *Printer) Item(label, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.dim.Sprint(label+":"), p.accent.Sprint(value))
}

// File reports a written file and its size.
func (p *Printer) File(path string, size int) {
	p.status(p.success.Sprint("✔"), fmt.Sprintf("%s %s", p.subtle.Sprint(path), p.dim.Sprintf("(%s)", FormatBytes(int64(size)))))
}

func (p *Printer) status(icon, msg string) {
	fmt.Fprintf(p.w, "%s %s\n", icon, msg)
}

// FormatBytes converts bytes to a human-readable size.
func FormatBytes(b int64) string {
	if b < 1024 {
		return fmt.Sprintf("%dB", b)
	}
	if b < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(b)/(1024*1024))
}
