package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
`

const largerSample = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
`

func TestTwoKnots(t *testing.T) {
	moves, err := parseMoves(sample)
	require.NoError(t, err)
	assert.Equal(t, 13, tailVisits(moves, 2))
}

func TestTenKnots(t *testing.T) {
	moves, err := parseMoves(sample)
	require.NoError(t, err)
	assert.Equal(t, 1, tailVisits(moves, 10))

	moves, err = parseMoves(largerSample)
	require.NoError(t, err)
	assert.Equal(t, 36, tailVisits(moves, 10))
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"X 4", "R four", "R"} {
		_, err := parseMoves(input)
		assert.Error(t, err, "input %q", input)
	}
}
