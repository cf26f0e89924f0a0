package aoclib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridSingleCell(t *testing.T) {
	origin := Pt{10, 10}
	g := NewDenseGrid[byte](origin, origin, 0)
	assert.Equal(t, 1, g.Size())

	_, ok := g.AtOk(Pt{0, 0})
	assert.False(t, ok)

	v, ok := g.AtOk(origin)
	require.True(t, ok)
	assert.EqualValues(t, 0, v)

	require.True(t, g.Set(origin, 255))
	assert.EqualValues(t, 255, g.At(origin))
}

func TestGridBasic(t *testing.T) {
	g := NewDenseGrid[byte](Pt{0, 0}, Pt{99, 99}, 0)
	assert.Equal(t, 10000, g.Size())
	assert.EqualValues(t, 0, g.At(Pt{50, 50}))
	g.Set(Pt{50, 50}, 4)
	assert.EqualValues(t, 0, g.At(Pt{49, 50}))
	assert.EqualValues(t, 4, g.At(Pt{50, 50}))
}

func TestGridCornersAnyOrder(t *testing.T) {
	g := NewDenseGrid(Pt{5, 9}, Pt{-2, -3}, '.')
	assert.Equal(t, Pt{-2, -3}, g.Min())
	assert.Equal(t, Pt{5, 9}, g.Max())
	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 13, g.Height())
	assert.True(t, g.Contains(Pt{0, 0}))
	assert.False(t, g.Contains(Pt{6, 0}))
	assert.False(t, g.Set(Pt{6, 0}, '#'))
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewDenseGrid[byte](Pt{0, 0}, Pt{1, 1}, 0)
	assert.Panics(t, func() { g.At(Pt{2, 0}) })
}

func TestGridDump(t *testing.T) {
	g := NewDenseGrid(Pt{0, 0}, Pt{2, 1}, '.')
	g.Set(Pt{1, 0}, '#')
	var buf bytes.Buffer
	g.DumpTo(&buf, func(c rune) rune { return c })
	assert.Equal(t, ".#.\n...\n", buf.String())
}
