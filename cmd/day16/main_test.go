package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

func TestPart1(t *testing.T) {
	net, err := parseNetwork(sample)
	require.NoError(t, err)
	assert.Equal(t, 1651, maxPressure(net, 30, false))
}

func TestPart2(t *testing.T) {
	net, err := parseNetwork(sample)
	require.NoError(t, err)
	assert.Equal(t, 1707, maxPressure(net, 26, true))
}

func TestParse(t *testing.T) {
	net, err := parseNetwork(sample)
	require.NoError(t, err)
	require.Len(t, net, 10)
	assert.Equal(t, 20, net["DD"].flow)
	assert.Equal(t, []string{"GG"}, net["HH"].tunnels)
	assert.Zero(t, net["AA"].bit)
	assert.NotZero(t, net["BB"].bit)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"Valve AA has flow rate=0",
		"Valve AA has flow rate=0; pipes go to BB",
		"Valve AA has flow rate=0; tunnel leads to valve ZZ",
		"Valve BB has flow rate=1; tunnel leads to valve BB",
	} {
		_, err := parseNetwork(input)
		assert.Error(t, err, "input %q", input)
	}
}
