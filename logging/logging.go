// File: logging/logging.go
// Author: momentics <momentics@gmail.com>
//
// Console implementation of the api.Logger capability with colored
// severity prefixes. Debug output is gated behind the verbose flag.

package logging

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/momentics/plainsock/api"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()

// Console writes colored log lines to stderr.
type Console struct {
	verbose bool
}

// Compile-time interface compliance.
var _ api.Logger = (*Console)(nil)

// NewConsole creates a console logger. With verbose false, Debugf output
// is suppressed.
func NewConsole(verbose bool) *Console {
	return &Console{verbose: verbose}
}

// Errorf prints an error line in red.
func (c *Console) Errorf(format string, args ...any) {
	red(os.Stderr, "[!] Error: "+line(format), args...)
}

// Infof prints an informational line in blue.
func (c *Console) Infof(format string, args ...any) {
	blue(os.Stderr, "[+] "+line(format), args...)
}

// Debugf prints a debug line in yellow when verbose is enabled.
func (c *Console) Debugf(format string, args ...any) {
	if !c.verbose {
		return
	}
	yellow(os.Stderr, "[*] "+line(format), args...)
}

func line(format string) string {
	if strings.HasSuffix(format, "\n") {
		return format
	}
	return format + "\n"
}

// Nop discards everything. Useful as an explicit default in wiring code.
type Nop struct{}

var _ api.Logger = Nop{}

func (Nop) Errorf(string, ...any) {}
func (Nop) Infof(string, ...any)  {}
func (Nop) Debugf(string, ...any) {}
