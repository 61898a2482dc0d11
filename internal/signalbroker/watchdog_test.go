// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("os/signal.signal_recv"),
		goleak.IgnoreTopFunction("os/signal.loop"),
	)
}

func startWatch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) *sync.WaitGroup {
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()

	return wg
}

func TestWatch_FirstSignalNoCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	wg := startWatch(ctx, sigCh, cancel)

	sigCh <- os.Interrupt

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, ctx.Err(), "context should not be cancelled after first signal")

	close(sigCh)
	wg.Wait()
}

func TestWatch_SecondSignalCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)
	wg := startWatch(ctx, sigCh, cancel)

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	wg.Wait()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	_, ok := <-sigCh
	assert.False(t, ok, "signal channel should be closed after second signal")
}

func TestWatch_DifferentSignalsNoCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)
	wg := startWatch(ctx, sigCh, cancel)

	sigCh <- os.Interrupt
	sigCh <- os.Kill

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, ctx.Err(), "context should not be cancelled for different signals")

	close(sigCh)
	wg.Wait()
}

func TestWatch_ReturnsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	wg := startWatch(ctx, sigCh, cancel)

	cancel()
	wg.Wait()
}

func TestNew_DefaultSignals(t *testing.T) {
	ch, stop := New(context.Background())
	t.Cleanup(stop)

	assert.Equal(t, 1, cap(ch))
}

func TestNew_StopIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, stop := New(ctx, os.Interrupt)
	wg := startWatch(ctx, ch, cancel)

	ch <- os.Interrupt
	ch <- os.Interrupt
	wg.Wait()

	assert.NotPanics(t, func() {
		stop()
		stop()
	}, "stop after Watch closed the channel")
}
