// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build release

package buildmode

// Debug is false in builds made with -tags release.
const Debug = false
