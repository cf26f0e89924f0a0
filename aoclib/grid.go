package aoclib

import (
	"bufio"
	"io"
	"os"
)

// DenseGrid is a flat-backed 2D grid covering an inclusive bounding box.
// The box may start anywhere; coordinates outside it are rejected rather
// than wrapped.
type DenseGrid[T any] struct {
	minX, minY int
	maxX, maxY int
	width      int
	height     int
	cells      []T
}

// NewDenseGrid builds a grid spanning the box with corners a and b (in
// any order), with every cell set to empty.
func NewDenseGrid[T any](a, b Pt, empty T) *DenseGrid[T] {
	g := &DenseGrid[T]{
		minX: min(a.X, b.X),
		maxX: max(a.X, b.X),
		minY: min(a.Y, b.Y),
		maxY: max(a.Y, b.Y),
	}
	g.width = g.maxX - g.minX + 1
	g.height = g.maxY - g.minY + 1
	g.cells = make([]T, g.width*g.height)
	for i := range g.cells {
		g.cells[i] = empty
	}
	return g
}

func (g *DenseGrid[T]) Width() int  { return g.width }
func (g *DenseGrid[T]) Height() int { return g.height }
func (g *DenseGrid[T]) Size() int   { return g.width * g.height }

func (g *DenseGrid[T]) Min() Pt { return Pt{g.minX, g.minY} }
func (g *DenseGrid[T]) Max() Pt { return Pt{g.maxX, g.maxY} }

func (g *DenseGrid[T]) Contains(p Pt) bool {
	return p.X >= g.minX && p.X <= g.maxX && p.Y >= g.minY && p.Y <= g.maxY
}

func (g *DenseGrid[T]) index(p Pt) int {
	return (p.Y-g.minY)*g.width + (p.X - g.minX)
}

// At returns the cell at p. It panics if p is outside the bounding box.
func (g *DenseGrid[T]) At(p Pt) T {
	if !g.Contains(p) {
		panic("aoclib: grid access out of bounds")
	}
	return g.cells[g.index(p)]
}

func (g *DenseGrid[T]) AtOk(p Pt) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(p)], true
}

// Set stores v at p and reports whether p was inside the bounding box.
func (g *DenseGrid[T]) Set(p Pt, v T) bool {
	if !g.Contains(p) {
		return false
	}
	g.cells[g.index(p)] = v
	return true
}

// Dump renders the grid row by row to stdout using f to pick a rune per
// cell. Used by the -v modes.
func (g *DenseGrid[T]) Dump(f func(T) rune) {
	g.DumpTo(os.Stdout, f)
}

func (g *DenseGrid[T]) DumpTo(w io.Writer, f func(T) rune) {
	bw := bufio.NewWriter(w)
	for y := g.minY; y <= g.maxY; y++ {
		for x := g.minX; x <= g.maxX; x++ {
			bw.WriteRune(f(g.cells[g.index(Pt{x, y})]))
		}
		bw.WriteByte('\n')
	}
	bw.Flush()
}
