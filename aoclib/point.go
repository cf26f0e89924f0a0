// Package aoclib holds the small grab bag of geometry, grid, and
// container helpers shared by the daily puzzle binaries.
package aoclib

import "golang.org/x/exp/constraints"

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the point type nearly every day wants.
type Pt = Pt2[int]

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Scale(n T) Pt2[T] {
	return Pt2[T]{p.X * n, p.Y * n}
}

func (p Pt2[T]) Transpose() Pt2[T] {
	return Pt2[T]{p.Y, p.X}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// LineTo calls f for every point on the axis-aligned segment from p to q,
// inclusive of both ends, walking from p toward q. It stops early if f
// returns false. Diagonal segments are a caller bug.
func (p Pt2[T]) LineTo(q Pt2[T], f func(Pt2[T]) (keepGoing bool)) {
	if p.X != q.X && p.Y != q.Y {
		panic("aoclib: LineTo on a diagonal segment")
	}
	d := Pt2[T]{Sign(q.X - p.X), Sign(q.Y - p.Y)}
	for cur := p; ; cur = cur.Add(d) {
		if !f(cur) {
			return
		}
		if cur == q {
			return
		}
	}
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt3Int = Pt3[int]

// Neighbors returns the six orthogonally adjacent points.
func (p Pt3[T]) Neighbors() [6]Pt3[T] {
	return [6]Pt3[T]{
		{p.X + 1, p.Y, p.Z},
		{p.X - 1, p.Y, p.Z},
		{p.X, p.Y + 1, p.Z},
		{p.X, p.Y - 1, p.Z},
		{p.X, p.Y, p.Z + 1},
		{p.X, p.Y, p.Z - 1},
	}
}
