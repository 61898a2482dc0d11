// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logstate holds the process-wide logger installation state.
//
// The logging package installs through it, and tests in any package of the module
// can Reset it to capture what the installed sink writes.
package logstate

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/matt-FFFFFF/prelude/internal/color"
)

var (
	once    = new(sync.Once)
	current atomic.Pointer[slog.Logger]

	// Writer is the sink destination when the configuration names none.
	// Logs go to stderr so that a command's stdout carries only its output.
	Writer io.Writer = os.Stderr
)

// Install stores the logger returned by build and makes it the slog default.
// build runs at most once until the next Reset; Install reports whether it ran.
func Install(build func() *slog.Logger) bool {
	installed := false

	once.Do(func() {
		l := build()
		current.Store(l)
		slog.SetDefault(l)

		installed = true
	})

	return installed
}

// Current returns the installed logger, or nil.
func Current() *slog.Logger {
	return current.Load()
}

// Reset forgets the installed logger, sends the default sink to w and disables color.
// The returned function restores the previous sink, slog default and color setting.
// It is meant for tests and is not safe to call while other goroutines are logging.
func Reset(w io.Writer) (restore func()) {
	prevWriter := Writer
	prevDefault := slog.Default()
	prevColour := color.Enabled()

	once = new(sync.Once)
	current.Store(nil)
	Writer = w
	color.SetEnabled(false)

	return func() {
		once = new(sync.Once)
		current.Store(nil)
		Writer = prevWriter
		slog.SetDefault(prevDefault)
		color.SetEnabled(prevColour)
	}
}
