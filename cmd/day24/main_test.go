package main

import (
	"testing"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
`

func TestPart1(t *testing.T) {
	v, err := parseValley(sample)
	require.NoError(t, err)
	minutes, err := crossingTime(v, 1)
	require.NoError(t, err)
	assert.Equal(t, 18, minutes)
}

func TestPart2(t *testing.T) {
	v, err := parseValley(sample)
	require.NoError(t, err)
	minutes, err := crossingTime(v, 3)
	require.NoError(t, err)
	assert.Equal(t, 54, minutes)
}

func TestParse(t *testing.T) {
	v, err := parseValley(sample)
	require.NoError(t, err)
	assert.Equal(t, 6, v.width)
	assert.Equal(t, 4, v.height)
	assert.Equal(t, aoclib.Pt{X: 0, Y: -1}, v.start)
	assert.Equal(t, aoclib.Pt{X: 5, Y: 4}, v.goal)
	assert.Len(t, v.blizzards, 19)
}

func TestBlizzardWrap(t *testing.T) {
	v, err := parseValley("#.###\n#..>#\n#...#\n###.#")
	require.NoError(t, err)
	assert.True(t, v.occupiedAt(0)[aoclib.Pt{X: 2, Y: 0}])
	assert.True(t, v.occupiedAt(1)[aoclib.Pt{X: 0, Y: 0}])
	assert.True(t, v.occupiedAt(3)[aoclib.Pt{X: 2, Y: 0}])
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"#.##\n#z.#\n##.#",
		"#.##\n#.#\n##.#",
		"####\n#..#\n##.#",
	} {
		_, err := parseValley(input)
		assert.Error(t, err, "input %q", input)
	}
}
