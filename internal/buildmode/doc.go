// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package buildmode exposes the debug/release distinction of the current build as a
// compile-time constant.
//
// Builds are debug by default. Pass `-tags release` to go build or go test to produce
// a release build, in which debug-only instrumentation is compiled out.
package buildmode
