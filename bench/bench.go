// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package bench times blocks of work in debug builds.
//
// Benchmark and BenchmarkErr return exactly what the wrapped function returns. In debug
// builds they also log one INFO line with the label and the elapsed wall-clock time once
// the function has returned successfully. In release builds (-tags release) they call the
// function and nothing else: the label is never evaluated.
//
// Panics are not recovered and errors are returned unchanged; in both cases no line is
// logged. The context only selects the logger, see logging.Logger.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/prelude/internal/buildmode"
	"github.com/matt-FFFFFF/prelude/logging"
)

// ElapsedKey is the attribute key holding the elapsed time.
const ElapsedKey = "elapsed"

// Benchmark runs fn and returns its result, logging msg() and the elapsed time in debug builds.
func Benchmark[T any](ctx context.Context, msg func() string, fn func() T) T {
	if !buildmode.Debug {
		return fn()
	}

	start := time.Now()
	result := fn()
	report(ctx, msg, time.Since(start))

	return result
}

// BenchmarkErr is Benchmark for functions that can fail. Nothing is logged when fn
// returns a non-nil error.
func BenchmarkErr[T any](ctx context.Context, msg func() string, fn func() (T, error)) (T, error) {
	if !buildmode.Debug {
		return fn()
	}

	start := time.Now()

	result, err := fn()
	if err != nil {
		return result, err
	}

	report(ctx, msg, time.Since(start))

	return result, nil
}

// Msgf returns a label that formats its arguments only when called.
func Msgf(format string, args ...any) func() string {
	return func() string {
		return fmt.Sprintf(format, args...)
	}
}

func report(ctx context.Context, msg func() string, elapsed time.Duration) {
	logging.Logger(ctx).InfoContext(ctx, msg(), ElapsedKey, elapsed.String())
}
