// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds process-wide seams shared by the subcommands.
package cmdstate

import "github.com/spf13/afero"

// FsFactory is a function that returns the filesystem the commands read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
