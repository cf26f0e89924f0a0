package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func TestPart1(t *testing.T) {
	monkeys, err := parseMonkeys(sample)
	require.NoError(t, err)
	assert.Equal(t, 10605, monkeyBusiness(monkeys, 20, true))
}

func TestPart2(t *testing.T) {
	monkeys, err := parseMonkeys(sample)
	require.NoError(t, err)
	assert.Equal(t, 2713310158, monkeyBusiness(monkeys, 10000, false))
}

func TestParse(t *testing.T) {
	monkeys, err := parseMonkeys(sample)
	require.NoError(t, err)
	require.Len(t, monkeys, 4)
	assert.Equal(t, []int{79, 98}, monkeys[0].items)
	assert.Equal(t, operand(19), monkeys[0].operand)
	assert.True(t, monkeys[0].multiply)
	assert.Equal(t, square, monkeys[2].operand)
	assert.Equal(t, 17, monkeys[3].divisor)
	assert.Equal(t, 0, monkeys[3].onTrue)
	assert.Equal(t, 1, monkeys[3].onFalse)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"Monkey 0:\n  Starting items: 1\n  Operation: new = old + old\n  Test: divisible by 2\n    If true: throw to monkey 0\n    If false: throw to monkey 0",
		"Monkey 0:\n  Starting items: 1\n  Operation: new = old * 2\n  Test: divisible by 2\n    If true: throw to monkey 5\n    If false: throw to monkey 0",
		"just some text",
	} {
		_, err := parseMonkeys(input)
		assert.Error(t, err, "input %q", input)
	}
}
