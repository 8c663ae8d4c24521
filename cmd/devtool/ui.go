package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// console is where command output goes. Colors are dropped when NO_COLOR is set.
var console = newConsole(os.Stdout, os.Getenv("NO_COLOR") == "")

type consoleWriter struct {
	w     io.Writer
	color bool
}

func newConsole(w io.Writer, color bool) *consoleWriter {
	return &consoleWriter{w: w, color: color}
}

func (c *consoleWriter) line(color, symbol, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if symbol != "" {
		msg = symbol + " " + msg
	}
	if c.color {
		msg = color + msg + colorReset
	}
	fmt.Fprintln(c.w, msg)
}

func PrintInfo(format string, a ...interface{}) {
	console.line(colorBlue, "ℹ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	console.line(colorGreen, "✓", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	console.line(colorYellow, "⚠", format, a...)
}

func PrintError(format string, a ...interface{}) {
	console.line(colorRed, "✗", format, a...)
}

// PrintHeader starts a section of output
func PrintHeader(title string) {
	fmt.Fprintln(console.w)
	console.line(colorYellow, "", "=== %s ===", title)
}
