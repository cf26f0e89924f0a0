package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>"

func TestShortRuns(t *testing.T) {
	jets, err := parseJets(sample)
	require.NoError(t, err)
	for _, tc := range []struct{ rocks, height int }{
		{1, 1},
		{2, 4},
		{3, 6},
		{10, 17},
	} {
		assert.Equal(t, tc.height, towerHeight(jets, tc.rocks), "rocks %d", tc.rocks)
	}
}

func TestPart1(t *testing.T) {
	jets, err := parseJets(sample)
	require.NoError(t, err)
	assert.Equal(t, 3068, towerHeight(jets, 2022))
}

func TestPart2(t *testing.T) {
	jets, err := parseJets(sample)
	require.NoError(t, err)
	assert.Equal(t, 1514285714288, towerHeight(jets, 1000000000000))
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "><x>", "  \n"} {
		_, err := parseJets(input)
		assert.Error(t, err, "input %q", input)
	}
}
