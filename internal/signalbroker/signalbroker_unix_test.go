// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package signalbroker

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DeliversUntilStopped(t *testing.T) {
	ch, stop := New(context.Background(), syscall.SIGUSR1)

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	select {
	case sig := <-ch:
		assert.Equal(t, syscall.SIGUSR1, sig)
	case <-time.After(5 * time.Second):
		t.Fatal("SIGUSR1 was not delivered")
	}

	stop()

	// Keep the process from dying on the next SIGUSR1 while checking nothing reaches ch.
	guard, stopGuard := New(context.Background(), syscall.SIGUSR1)
	defer stopGuard()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	select {
	case <-guard:
	case <-time.After(5 * time.Second):
		t.Fatal("SIGUSR1 was not delivered to the second subscriber")
	}

	select {
	case sig := <-ch:
		t.Fatalf("received %v after stop", sig)
	default:
	}
}
