package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
lgvd: ljgn * ptdq
drzm: hmdt - zczc
hmdt: 32
pppw: cczh / lfqf
`

func TestPart1(t *testing.T) {
	monkeys, err := parseTroop(sample)
	require.NoError(t, err)
	got, err := monkeys.eval(rootMonkey)
	require.NoError(t, err)
	assert.Equal(t, int64(152), got)
}

func TestPart2(t *testing.T) {
	monkeys, err := parseTroop(sample)
	require.NoError(t, err)
	got, err := monkeys.solveForHuman()
	require.NoError(t, err)
	assert.Equal(t, int64(301), got)
}

func TestSolveRightSideHuman(t *testing.T) {
	monkeys, err := parseTroop("root: a + b\na: 10\nb: c - humn\nc: 30\nhumn: 0")
	require.NoError(t, err)
	got, err := monkeys.solveForHuman()
	require.NoError(t, err)
	assert.Equal(t, int64(20), got)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"root 5",
		"root: a % b\na: 1\nb: 2",
		"root: a + b\na: 1",
		"notroot: 5",
	} {
		_, err := parseTroop(input)
		assert.Error(t, err, "input %q", input)
	}
}
