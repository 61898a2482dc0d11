// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the prelude command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/prelude"
	"github.com/matt-FFFFFF/prelude/cmd"
	"github.com/matt-FFFFFF/prelude/internal/signalbroker"
	"github.com/matt-FFFFFF/prelude/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd := cmd.NewRootCmd()
	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", prelude.Version, prelude.Commit)

	// The logger is installed by the root command's Before hook; until then records are dropped.
	sigCh, stop := signalbroker.New(ctx)
	defer stop()

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	if ctx.Err() != nil {
		logging.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		logging.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}

	logging.Debug(ctx, "command completed successfully")
}
