package main

import (
	"testing"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func TestPart1(t *testing.T) {
	hm, err := parseHeightmap(sample)
	require.NoError(t, err)
	dist, err := solvePart1(hm)
	require.NoError(t, err)
	assert.Equal(t, 31, dist)
}

func TestPart2(t *testing.T) {
	hm, err := parseHeightmap(sample)
	require.NoError(t, err)
	dist, err := solvePart2(hm)
	require.NoError(t, err)
	assert.Equal(t, 29, dist)
}

func TestParse(t *testing.T) {
	hm, err := parseHeightmap(sample)
	require.NoError(t, err)
	assert.Equal(t, aoclib.Pt{X: 0, Y: 0}, hm.start)
	assert.Equal(t, aoclib.Pt{X: 5, Y: 2}, hm.end)
	assert.Equal(t, byte('a'), hm.elevations.At(hm.start))
	assert.Equal(t, byte('z'), hm.elevations.At(hm.end))
}

func TestNoPath(t *testing.T) {
	hm, err := parseHeightmap("Sz\nzE")
	require.NoError(t, err)
	_, err = solvePart1(hm)
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "Sbc", "S1E", "Sab\nab"} {
		_, err := parseHeightmap(input)
		assert.Error(t, err, "input %q", input)
	}
}
