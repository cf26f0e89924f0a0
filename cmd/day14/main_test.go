package main

import (
	"testing"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`

func TestPart1(t *testing.T) {
	paths, err := parsePaths(sample)
	require.NoError(t, err)
	assert.Equal(t, 24, pourSand(buildCave(paths, false)))
}

func TestPart2(t *testing.T) {
	paths, err := parsePaths(sample)
	require.NoError(t, err)
	assert.Equal(t, 93, pourSand(buildCave(paths, true)))
}

func TestBuildCave(t *testing.T) {
	paths, err := parsePaths(sample)
	require.NoError(t, err)
	cave := buildCave(paths, false)
	assert.Equal(t, rock, cave.At(aoclib.Pt{X: 498, Y: 5}))
	assert.Equal(t, rock, cave.At(aoclib.Pt{X: 497, Y: 9}))
	assert.Equal(t, empty, cave.At(aoclib.Pt{X: 500, Y: 0}))

	floored := buildCave(paths, true)
	assert.Equal(t, rock, floored.At(aoclib.Pt{X: 500, Y: 11}))
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"498,4", "498,4 -> x,6", "498 -> 496,6"} {
		_, err := parsePaths(input)
		assert.Error(t, err, "input %q", input)
	}
}
