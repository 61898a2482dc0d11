// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !release

package buildmode

// Debug reports whether the binary was built without the release tag.
// It is a constant so the compiler drops debug-only branches from release builds.
const Debug = true
