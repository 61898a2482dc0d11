// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/matt-FFFFFF/prelude/logging"
)

// Watch monitors the signal channel until ctx is done or the channel is closed.
// The first signal of a given type is logged; the second one cancels the context,
// stops delivery to the channel and closes it.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})
	logger := logging.Logger(ctx).With("component", "watchdog")

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				logger.Warn("received second signal of type, forcefully terminating", "signal", sig.String())
				signal.Stop(sigCh)
				close(sigCh)
				cancel()

				return
			}

			logger.Info("received first signal of type, press again to terminate", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
