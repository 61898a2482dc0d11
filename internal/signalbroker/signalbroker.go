// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker relays termination signals to the command so a long walk can be
// interrupted. The default set is SIGINT, SIGTERM and SIGQUIT.
//
// Watch turns the channel into cancellation: the first signal of a kind is only
// reported, the second one cancels the command's context.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/matt-FFFFFF/prelude/logging"
)

const module = "github.com/matt-FFFFFF/prelude/internal/signalbroker"

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New subscribes a buffered channel to sigs, or to the termination signals when none
// are given. The returned stop function ends delivery to the channel; it is safe to
// call more than once and after Watch has closed the channel.
func New(ctx context.Context, sigs ...os.Signal) (chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	logger := logging.Logger(ctx).With(logging.ModuleKey, module)
	logger.Debug("subscribing to signals", "signals", sigs)
	signal.Notify(ch, sigs...)

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			signal.Stop(ch)
			logger.Debug("unsubscribed from signals")
		})
	}
}
