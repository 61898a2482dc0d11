// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/prelude/cmd/cmdstate"
	"github.com/matt-FFFFFF/prelude/cmd/walk"
	"github.com/matt-FFFFFF/prelude/logging"
	"github.com/urfave/cli/v3"
)

const (
	logModuleFlag = "log-module"
	logConfigFlag = "log-config"
)

// ErrLogConfig is returned when the log configuration file cannot be loaded.
var ErrLogConfig = errors.New("failed to load log configuration")

// NewRootCmd returns the root command for the CLI.
func NewRootCmd() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			walk.New(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "prelude",
		Description: `Prelude bundles the start-up helpers a Go tool needs: a colorized leveled
console logger, debug-build timing of blocks of work, bounded parallel iteration and
directory walking. The walk command exercises all of them.

Build with -tags release to compile the timing instrumentation out and make the
log level follow the <EXE>_LOG_LEVEL environment variable.`,
		Usage:     "prelude walk ./src",
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: logModuleFlag,
				Usage: "Log this module (a slash-separated path) down to TRACE while the rest of the process " +
					"logs at INFO, or at the level of --log-config when both are given. Debug builds only.",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:      logConfigFlag,
				Usage:     "Read the log level, colour mode and module overrides from a YAML file.",
				TakesFile: true,
				OnlyOnce:  true,
			},
		},
		Before:                setupLogging,
		EnableShellCompletion: true,
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	module := cmd.String(logModuleFlag)

	switch {
	case cmd.String(logConfigFlag) != "":
		cfg, err := logging.LoadConfig(cmdstate.FsFactory(), cmd.String(logConfigFlag))
		if err != nil {
			// Install the default sink so the failure itself is reported.
			logging.Init()

			return logging.New(ctx, logging.Default()), errors.Join(ErrLogConfig, err)
		}

		if module != "" {
			cfg.Modules = logging.TraceModules(cfg.Modules, module)
		}

		logging.InitWith(cfg)
	case module != "":
		logging.InitModule(module)
	default:
		logging.Init()
	}

	ctx = logging.New(ctx, logging.Default())
	logging.Debug(ctx, "logging initialised",
		logConfigFlag, cmd.String(logConfigFlag),
		logModuleFlag, module,
	)

	return ctx, nil
}
