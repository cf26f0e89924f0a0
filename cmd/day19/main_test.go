package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`

func TestMaxGeodes24(t *testing.T) {
	blueprints, err := parseBlueprints(sample)
	require.NoError(t, err)
	assert.Equal(t, 9, maxGeodes(blueprints[0], 24))
	assert.Equal(t, 12, maxGeodes(blueprints[1], 24))
}

func TestQualitySum(t *testing.T) {
	blueprints, err := parseBlueprints(sample)
	require.NoError(t, err)
	assert.Equal(t, 33, qualitySum(blueprints))
}

func TestTopThreeProduct(t *testing.T) {
	blueprints, err := parseBlueprints(sample)
	require.NoError(t, err)
	assert.Equal(t, 56*62, topThreeProduct(blueprints))
}

func TestParse(t *testing.T) {
	blueprints, err := parseBlueprints(sample)
	require.NoError(t, err)
	require.Len(t, blueprints, 2)
	assert.Equal(t, blueprint{
		id:                1,
		oreRobotOre:       4,
		clayRobotOre:      2,
		obsidianRobotOre:  3,
		obsidianRobotClay: 14,
		geodeRobotOre:     2,
		geodeRobotObs:     7,
	}, blueprints[0])
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "Blueprint 1: free robots"} {
		_, err := parseBlueprints(input)
		assert.Error(t, err, "input %q", input)
	}
}
