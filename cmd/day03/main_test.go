package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func TestSolve(t *testing.T) {
	got, err := solvePart1(sample)
	require.NoError(t, err)
	assert.Equal(t, 157, got)

	got, err = solvePart2(sample)
	require.NoError(t, err)
	assert.Equal(t, 70, got)
}

func TestPriority(t *testing.T) {
	for r, want := range map[rune]int{'a': 1, 'z': 26, 'A': 27, 'Z': 52} {
		got, err := priority(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := priority('3')
	assert.Error(t, err)
}

func TestFindDuplicate(t *testing.T) {
	dup, err := findDuplicate("vJrwpWtwJgWr", "hcsFMMfFFhFp")
	require.NoError(t, err)
	assert.Equal(t, 'p', dup)

	_, err = findDuplicate("abc", "def")
	assert.Error(t, err)
}
