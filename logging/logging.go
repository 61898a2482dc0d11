// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logging

import (
	"context"
	"log/slog"

	"github.com/matt-FFFFFF/prelude/internal/buildmode"
	"github.com/matt-FFFFFF/prelude/internal/color"
	"github.com/matt-FFFFFF/prelude/internal/logstate"
)

type loggerKey struct{}

var discard = slog.New(slog.DiscardHandler)

// Init installs the console logger. In debug builds every module logs down to TRACE.
// Only the first call to Init, InitModule, InitModules or InitWith has any effect.
func Init() {
	InitWith(DefaultConfig())
}

// InitModule installs the console logger with extra verbosity for one module.
// In debug builds the process logs at INFO and module logs down to TRACE.
// In release builds module is ignored and InitModule behaves like Init.
func InitModule(module string) {
	InitModules(module)
}

// InitModules is InitModule for several modules at once. Every named module logs down
// to TRACE in debug builds. With no modules it behaves like Init.
func InitModules(modules ...string) {
	cfg := DefaultConfig()
	if buildmode.Debug && len(modules) > 0 {
		cfg.Level = slog.LevelInfo
		cfg.Modules = TraceModules(nil, modules...)
	}

	InitWith(cfg)
}

// TraceModules returns a copy of overrides with every module in modules set to TRACE.
func TraceModules(overrides map[string]slog.Level, modules ...string) map[string]slog.Level {
	out := make(map[string]slog.Level, len(overrides)+len(modules))
	for m, l := range overrides {
		out[m] = l
	}

	for _, m := range modules {
		if m != "" {
			out[m] = LevelTrace
		}
	}

	return out
}

// InitWith installs a console logger built from cfg. It reports whether this call
// installed the logger; false means a logger was already installed and cfg was ignored.
func InitWith(cfg Config) bool {
	return logstate.Install(func() *slog.Logger { return build(cfg) })
}

// Initialized reports whether a logger has been installed.
func Initialized() bool {
	return logstate.Current() != nil
}

func build(cfg Config) *slog.Logger {
	switch cfg.Colour {
	case ColourAlways:
		color.SetEnabled(true)
	case ColourNever:
		color.SetEnabled(false)
	case ColourAuto:
	}

	w := cfg.Writer
	if w == nil {
		w = logstate.Writer
	}

	modules := cfg.Modules
	if !buildmode.Debug {
		modules = nil
	}

	pretty := NewPrettyHandler(&slog.HandlerOptions{
		Level: LevelTrace,
	},
		WithAutoColour(),
		WithDestinationWriter(w),
	)

	return slog.New(NewModuleHandler(pretty, cfg.Level, modules))
}

// Default returns the installed logger. Before initialization it returns a logger
// that discards everything.
func Default() *slog.Logger {
	if l := logstate.Current(); l != nil {
		return l
	}

	return discard
}

// For returns the default logger tagged with module, so per-module levels apply to it.
func For(module string) *slog.Logger {
	return Default().With(ModuleKey, module)
}

// New creates a new context with the given logger.
// If logger is nil, the context carries no logger and Logger falls back to Default.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return Default()
	}

	return logger
}

// Trace logs a trace message with the given context.
func Trace(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Log(ctx, LevelTrace, msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).DebugContext(ctx, msg, args...)
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).InfoContext(ctx, msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).WarnContext(ctx, msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).ErrorContext(ctx, msg, args...)
}
