// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

// Code represents an ANSI SGR parameter.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
)

// Text attributes.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

var enabled atomic.Bool

func init() {
	enabled.Store(isColorCapable())
}

// Colorize wraps str in the given SGR codes followed by a reset sequence.
// When color output is disabled str is returned unchanged.
func Colorize(str string, codes ...Code) string {
	if !enabled.Load() {
		return str
	}

	return Paint(str, codes...)
}

// Paint is Colorize regardless of the enabled setting, for writers that decide
// on color themselves.
func Paint(str string, codes ...Code) string {
	if len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	writeSequence(&sb, codes)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

func writeSequence(sb *strings.Builder, codes []Code) {
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteByte(';')
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
}

// Enabled reports whether color output is enabled.
//
// The initial value is computed at package init: NO_COLOR disables color,
// otherwise FORCE_COLOR enables it, otherwise color is used when stderr, where logs go, is a terminal.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled overrides the detected setting. It is safe for concurrent use.
func SetEnabled(v bool) {
	enabled.Store(v)
}

// Detect re-runs environment and terminal detection and stores the result.
func Detect() bool {
	v := isColorCapable()
	enabled.Store(v)

	return v
}

func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stderr.Fd()))
}
