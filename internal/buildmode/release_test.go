// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build release

package buildmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebug_ReleaseBuild(t *testing.T) {
	assert.False(t, Debug)
}
