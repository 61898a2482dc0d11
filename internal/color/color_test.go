// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorCapable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, isColorCapable(), "Expected color output to be disabled")

	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, isColorCapable(), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv("NO_COLOR", "")
	assert.True(t, isColorCapable(), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")
}

func TestColorize(t *testing.T) {
	prev := Enabled()
	t.Cleanup(func() { SetEnabled(prev) })

	SetEnabled(true)
	assert.Equal(t, "\033[31mred\033[0m", Colorize("red", FgRed))
	assert.Equal(t, "\033[1;96mhi\033[0m", Colorize("hi", Bold, FgHiCyan))
	assert.Equal(t, "plain", Colorize("plain"))

	SetEnabled(false)
	assert.Equal(t, "red", Colorize("red", FgRed))
}

func TestPaint_IgnoresEnabled(t *testing.T) {
	prev := Enabled()
	t.Cleanup(func() { SetEnabled(prev) })

	SetEnabled(false)
	assert.Equal(t, "\033[33mWARN:\033[0m", Paint("WARN:", FgYellow))
	assert.Equal(t, "plain", Paint("plain"))
}

func TestDetect(t *testing.T) {
	prev := Enabled()
	t.Cleanup(func() { SetEnabled(prev) })

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, Detect())
	assert.True(t, Enabled())

	t.Setenv("NO_COLOR", "1")
	assert.False(t, Detect())
	assert.False(t, Enabled())
}
