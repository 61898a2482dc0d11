// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prelude is the single import for the start-up helpers most tools need:
// installing the console logger and timing blocks of work in debug builds.
//
// The packages behind it can also be imported directly:
// logging, bench, parallel and walk.
package prelude

import (
	"context"

	"github.com/matt-FFFFFF/prelude/bench"
	"github.com/matt-FFFFFF/prelude/logging"
)

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// InitLog installs the process logger. Without arguments it behaves like logging.Init;
// with modules it behaves like logging.InitModules, tracing every module given.
// Only the first call in a process has any effect.
func InitLog(modules ...string) {
	logging.InitModules(modules...)
}

// Benchmark is bench.Benchmark.
func Benchmark[T any](ctx context.Context, msg func() string, fn func() T) T {
	return bench.Benchmark(ctx, msg, fn)
}

// BenchmarkErr is bench.BenchmarkErr.
func BenchmarkErr[T any](ctx context.Context, msg func() string, fn func() (T, error)) (T, error) {
	return bench.BenchmarkErr(ctx, msg, fn)
}
