// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logging installs the process-wide colorized console logger and provides
// context-aware helpers around it.
//
// Call Init or InitModule once at process start, before the first log statement.
// Records logged through Default or Logger before that are dropped. Later calls to any
// of the Init functions are ignored, so racing start-up paths never register a second sink.
//
// In debug builds Init logs everything down to TRACE, and InitModule logs INFO and
// above except for the named module, which logs down to TRACE. InitModules does the
// same for several modules. In release builds
// (-tags release) both install the sink at INFO, or at the level named by the
// <EXE>_LOG_LEVEL environment variable, and module overrides are ignored.
//
// The sink writes to stderr unless Config.Writer names another destination, so a
// command's stdout carries only its own output.
//
// Modules are identified by the "module" attribute, usually attached with For.
// An override for "github.com/acme/tool/scan" also applies to
// "github.com/acme/tool/scan/fast" but not to "github.com/acme/tool/scanner".
package logging
