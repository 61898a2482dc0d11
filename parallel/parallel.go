// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/prelude/logging"
)

// ItemError records the failure of one item.
type ItemError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// Limit returns the effective concurrency for a requested limit.
// Values below one mean runtime.GOMAXPROCS(0).
func Limit(n int) int {
	if n < 1 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

// ForEach calls fn for every item with at most limit calls in flight.
// Items that have not started when ctx is cancelled are skipped and ctx.Err()
// is added to the returned error once.
func ForEach[T any](ctx context.Context, items []T, limit int, fn func(context.Context, T) error) error {
	_, err := Map(ctx, items, limit, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, fn(ctx, item)
	})

	return err
}

// Map calls fn for every item with at most limit calls in flight and returns the
// results in input order. The result of a failed or skipped item is the zero value.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error)) ([]R, error) {
	limit = Limit(limit)
	logger := logging.Logger(ctx).With("items", len(items), "limit", limit)
	logger.Debug("starting parallel map")

	results := make([]R, len(items))
	errCh := make(chan *ItemError, len(items))
	sem := make(chan struct{}, limit)
	wg := &sync.WaitGroup{}
	cancelled := false

	for i, item := range items {
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		select {
		case <-ctx.Done():
			cancelled = true
		case sem <- struct{}{}:
		}

		if cancelled {
			break
		}

		wg.Add(1)

		go func(i int, item T) {
			defer func() {
				<-sem
				wg.Done()
			}()

			r, err := fn(ctx, item)
			if err != nil {
				errCh <- &ItemError{Index: i, Err: err}
				return
			}

			results[i] = r
		}(i, item)
	}

	wg.Wait()
	close(errCh)

	failed := make([]*ItemError, 0, len(errCh))
	for err := range errCh {
		failed = append(failed, err)
	}

	slices.SortFunc(failed, func(a, b *ItemError) int {
		return a.Index - b.Index
	})

	var merr *multierror.Error
	for _, err := range failed {
		merr = multierror.Append(merr, err)
	}

	if cancelled {
		merr = multierror.Append(merr, ctx.Err())
	}

	if err := merr.ErrorOrNil(); err != nil {
		logger.Debug("parallel map finished with errors", "errors", merr.Len())
		return results, err
	}

	return results, nil
}
