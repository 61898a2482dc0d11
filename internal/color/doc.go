// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the console log sink.
// Color is enabled unless NO_COLOR is set, forced by FORCE_COLOR, and otherwise
// follows whether stderr is a terminal (golang.org/x/term).
package color
