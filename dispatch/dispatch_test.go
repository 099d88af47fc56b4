// SPDX-License-Identifier: MIT
package dispatch_test

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/dispatch"
)

func TestPartition_Invariants(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, workers int }{
		{1, 1}, {1, 8}, {7, 3}, {8, 8}, {8, 3}, {257, 4}, {257, 16}, {1000, 7}, {5, 0},
	} {
		t.Run(fmt.Sprintf("rows=%d/workers=%d", tc.rows, tc.workers), func(t *testing.T) {
			ranges := dispatch.Partition(tc.rows, tc.workers)

			want := min(max(tc.workers, 1), tc.rows)
			require.Len(t, ranges, want)

			// Contiguous cover of [0, rows) with balanced lengths.
			next, shortest, longest := 0, tc.rows, 0
			for _, r := range ranges {
				assert.Equal(t, next, r.Lo, "ranges must be contiguous")
				assert.Greater(t, r.Len(), 0, "ranges must be non-empty")
				shortest = min(shortest, r.Len())
				longest = max(longest, r.Len())
				next = r.Hi
			}
			assert.Equal(t, tc.rows, next, "ranges must cover every row")
			assert.LessOrEqual(t, longest-shortest, 1, "chunk sizes must differ by at most one")
		})
	}
}

func TestPartition_Empty(t *testing.T) {
	assert.Nil(t, dispatch.Partition(0, 4))
	assert.Nil(t, dispatch.Partition(-3, 4))
}

func TestDispatcher_EachRowOnce(t *testing.T) {
	t.Parallel()

	const rows = 257
	d := dispatch.New(8, zerolog.Nop())
	hits := make([]int32, rows)

	err := d.Rows(rows, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
		return nil
	})
	require.NoError(t, err)
	for i, h := range hits {
		require.EqualValues(t, 1, h, "row %d visited %d times", i, h)
	}
}

func TestDispatcher_SerialRunsInline(t *testing.T) {
	t.Parallel()

	var calls int
	var got dispatch.Range
	err := dispatch.Serial().Rows(42, func(lo, hi int) error {
		calls++ // no synchronization needed: single inline call
		got = dispatch.Range{Lo: lo, Hi: hi}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, dispatch.Range{Lo: 0, Hi: 42}, got)
	assert.Equal(t, 1, dispatch.Serial().Workers())
}

func TestDispatcher_ZeroRowsNoCalls(t *testing.T) {
	called := false
	err := dispatch.New(4, zerolog.Nop()).Rows(0, func(lo, hi int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestDispatcher_ErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := dispatch.New(4, zerolog.Nop()).Rows(16, func(lo, hi int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestDispatcher_PanicBecomesError(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 4} {
		err := dispatch.New(workers, zerolog.Nop()).Rows(16, func(lo, hi int) error {
			if hi == 16 {
				panic("index out of range")
			}
			return nil
		})
		require.ErrorIs(t, err, dispatch.ErrWorkerFailed, "workers=%d", workers)
		assert.Contains(t, err.Error(), "index out of range")
	}
}

func TestNew_DefaultWorkers(t *testing.T) {
	d := dispatch.New(0, zerolog.Nop())
	assert.Equal(t, dispatch.DefaultWorkers(), d.Workers())
	assert.GreaterOrEqual(t, d.Workers(), 1)
}

func ExamplePartition() {
	for _, r := range dispatch.Partition(10, 4) {
		fmt.Println(r.Lo, r.Hi)
	}
	// Output:
	// 0 3
	// 3 6
	// 6 8
	// 8 10
}
