//go:build unit
// +build unit

package matchmaking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 1, Capacity(0))
	assert.Equal(t, 2, Capacity(1))
	assert.Equal(t, 4, Capacity(2))
	assert.Equal(t, 8, Capacity(3))
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16}
	for in, want := range tests {
		assert.Equal(t, want, NextPowerOfTwo(in), "input %d", in)
	}
	assert.Equal(t, 1, BracketSize(1))
	assert.Equal(t, 4, BracketSize(3))
}

func TestSplitIntoChunks(t *testing.T) {
	t.Run("Even split", func(t *testing.T) {
		assert.Equal(t, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}, SplitIntoChunks(seq(8), 4))
	})

	t.Run("Trailing single steals from a large chunk", func(t *testing.T) {
		assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, SplitIntoChunks(seq(5), 4))
	})

	t.Run("Trailing single merges when it fits", func(t *testing.T) {
		// capacity 2 gives [1 2] [3]; the previous chunk is too small to
		// give one away and the merge would exceed the capacity.
		assert.Equal(t, [][]int{{1, 2}, {3}}, SplitIntoChunks(seq(3), 2))
	})

	t.Run("Single capacity keeps singletons", func(t *testing.T) {
		assert.Equal(t, [][]int{{1}, {2}}, SplitIntoChunks(seq(2), 1))
	})

	t.Run("Empty input yields one empty chunk", func(t *testing.T) {
		assert.Equal(t, [][]int{{}}, SplitIntoChunks([]int{}, 2))
	})

	t.Run("Input is not modified", func(t *testing.T) {
		in := seq(5)
		SplitIntoChunks(in, 4)
		assert.Equal(t, seq(5), in)
	})
}
