// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/matt-FFFFFF/prelude/internal/logstate"
)

// resetForTest clears the installed logger and routes the default sink to a buffer.
func resetForTest(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	t.Cleanup(logstate.Reset(buf))

	return buf
}

var timeZero time.Time
