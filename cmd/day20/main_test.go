package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `1
2
-3
3
-2
0
4
`

func TestPart1(t *testing.T) {
	nums, err := parseNumbers(sample)
	require.NoError(t, err)
	mixed := mix(nums, 1, 1)
	assert.Equal(t, 3, groveSum(mixed))
}

func TestMixOrder(t *testing.T) {
	nums, err := parseNumbers(sample)
	require.NoError(t, err)
	mixed := mix(nums, 1, 1)
	// Rotate so the zero leads; the circle has no canonical start.
	zero := 0
	for i, v := range mixed {
		if v == 0 {
			zero = i
			break
		}
	}
	rotated := append(mixed[zero:], mixed[:zero]...)
	assert.Equal(t, []int{0, 3, -2, 1, 2, -3, 4}, rotated)
}

func TestPart2(t *testing.T) {
	nums, err := parseNumbers(sample)
	require.NoError(t, err)
	mixed := mix(nums, decryptionKey, 10)
	assert.Equal(t, 1623178306, groveSum(mixed))
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "1 x 3", "1 2 3"} {
		_, err := parseNumbers(input)
		assert.Error(t, err, "input %q", input)
	}
}
