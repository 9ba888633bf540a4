package runner

import (
	"fmt"
	"io"
)

// StatusPrinter writes the tagged progress lines of a run to a status
// stream. These are for humans watching the console; structured diagnostics
// go through the zap logger instead.
type StatusPrinter struct {
	w io.Writer
}

// NewStatusPrinter creates a printer writing to w
func NewStatusPrinter(w io.Writer) *StatusPrinter {
	return &StatusPrinter{w: w}
}

func (p *StatusPrinter) printf(tag, format string, args ...interface{}) {
	fmt.Fprintf(p.w, "[%s] %s\n", tag, fmt.Sprintf(format, args...))
}

// Infof prints an [INFO] line
func (p *StatusPrinter) Infof(format string, args ...interface{}) {
	p.printf("INFO", format, args...)
}

// Skipf prints a [SKIP] line
func (p *StatusPrinter) Skipf(format string, args ...interface{}) {
	p.printf("SKIP", format, args...)
}

// Removef prints a [REMOVE] line
func (p *StatusPrinter) Removef(format string, args ...interface{}) {
	p.printf("REMOVE", format, args...)
}

// Cleanf prints a [CLEAN] line
func (p *StatusPrinter) Cleanf(format string, args ...interface{}) {
	p.printf("CLEAN", format, args...)
}

// Warnf prints a [WARN] line
func (p *StatusPrinter) Warnf(format string, args ...interface{}) {
	p.printf("WARN", format, args...)
}

// Donef prints a [DONE] line
func (p *StatusPrinter) Donef(format string, args ...interface{}) {
	p.printf("DONE", format, args...)
}

// Logf prints a [LOG] line
func (p *StatusPrinter) Logf(format string, args ...interface{}) {
	p.printf("LOG", format, args...)
}
