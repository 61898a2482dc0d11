// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"errors"
	"os"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLimit(t *testing.T) {
	assert.Equal(t, runtime.GOMAXPROCS(0), Limit(0))
	assert.Equal(t, runtime.GOMAXPROCS(0), Limit(-3))
	assert.Equal(t, 4, Limit(4))
}

func TestMap_PreservesOrder(t *testing.T) {
	items := []int{5, 4, 3, 2, 1}

	got, err := Map(context.Background(), items, 3, func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * n, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{25, 16, 9, 4, 1}, got)
}

func TestMap_Empty(t *testing.T) {
	got, err := Map(context.Background(), []string{}, 2, func(_ context.Context, s string) (string, error) {
		return s, nil
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMap_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	items := make([]int, 20)

	_, err := Map(context.Background(), items, 3, func(_ context.Context, _ int) (int, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)

		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)

		return 0, nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Positive(t, peak.Load())
}

func TestMap_CollectsAllErrors(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	got, err := Map(context.Background(), items, 2, func(_ context.Context, n int) (string, error) {
		if n%2 == 1 {
			return "ignored", os.ErrPermission
		}

		return "ok", nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, []string{"ok", "", "ok", "", "ok"}, got)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)

	var first *ItemError
	require.ErrorAs(t, merr.Errors[0], &first)
	assert.Equal(t, 1, first.Index)
	assert.Contains(t, first.Error(), "item 1")

	var second *ItemError
	require.ErrorAs(t, merr.Errors[1], &second)
	assert.Equal(t, 3, second.Index)
}

func TestForEach_Success(t *testing.T) {
	var sum atomic.Int64

	err := ForEach(context.Background(), []int64{1, 2, 3, 4}, 0, func(_ context.Context, n int64) error {
		sum.Add(n)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), sum.Load())
}

func TestForEach_CancelledContextSkipsItems(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32

	err := ForEach(ctx, []int{1, 2, 3}, 1, func(_ context.Context, _ int) error {
		calls.Add(1)
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestForEach_CancelMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32

	errStop := errors.New("stop")

	err := ForEach(ctx, make([]int, 50), 1, func(_ context.Context, _ int) error {
		if calls.Add(1) == 2 {
			cancel()
			return errStop
		}

		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errStop)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, calls.Load(), int32(50))
}
