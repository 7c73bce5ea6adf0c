// Package notify writes short, colored, user-facing messages. Diagnostics go
// through logrus instead.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// MessageType selects the symbol and color of a message.
type MessageType int

const (
	// ErrorType is red with a ✗ symbol.
	ErrorType MessageType = iota
	// WarningType is yellow with a ⚠ symbol.
	WarningType
	// SuccessType is green with a ✔ symbol.
	SuccessType
	// InfoType is blue with an ℹ symbol.
	InfoType
)

type style struct {
	symbol string
	color  *color.Color
}

var styles = map[MessageType]style{
	ErrorType:   {symbol: "✗", color: color.New(color.FgRed)},
	WarningType: {symbol: "⚠", color: color.New(color.FgYellow)},
	SuccessType: {symbol: "✔", color: color.New(color.FgGreen)},
	InfoType:    {symbol: "ℹ", color: color.New(color.FgBlue)},
}

// Write formats and prints one message of the given type. A nil writer
// means os.Stdout.
func Write(w io.Writer, t MessageType, format string, args ...any) {
	if w == nil {
		w = os.Stdout
	}
	s, ok := styles[t]
	if !ok {
		s = styles[InfoType]
	}
	msg := fmt.Sprintf(format, args...)
	s.color.Fprintf(w, "%s %s\n", s.symbol, msg)
}

// Errorf writes an error message.
func Errorf(w io.Writer, format string, args ...any) { Write(w, ErrorType, format, args...) }

// Warningf writes a warning message.
func Warningf(w io.Writer, format string, args ...any) { Write(w, WarningType, format, args...) }

// Successf writes a success message.
func Successf(w io.Writer, format string, args ...any) { Write(w, SuccessType, format, args...) }

// Infof writes an informational message.
func Infof(w io.Writer, format string, args ...any) { Write(w, InfoType, format, args...) }
