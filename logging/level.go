// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// LevelTrace is more verbose than slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// ErrInvalidLevel is returned when a level name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a level name. It accepts TRACE in addition to the names understood
// by slog.Level, including offsets such as "INFO+2". Matching is case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "TRACE") {
		return LevelTrace, nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Join(ErrInvalidLevel, fmt.Errorf("%q: %w", s, err))
	}

	return l, nil
}

// LevelString returns the display name of a level, using TRACE for LevelTrace.
func LevelString(l slog.Level) string {
	if l == LevelTrace {
		return "TRACE"
	}

	return l.String()
}
