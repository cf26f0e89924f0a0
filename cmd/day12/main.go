// Day 12: hill climbing algorithm. Shortest walk over a heightmap where
// each step may climb at most one unit.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

type heightmap struct {
	elevations *aoclib.DenseGrid[byte]
	start      aoclib.Pt
	end        aoclib.Pt
}

func parseHeightmap(input string) (*heightmap, error) {
	lines := strings.Fields(strings.TrimSpace(input))
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty heightmap")
	}
	width := len(lines[0])
	hm := &heightmap{
		elevations: aoclib.NewDenseGrid(aoclib.Pt{}, aoclib.Pt{X: width - 1, Y: len(lines) - 1}, byte(0)),
		start:      aoclib.Pt{X: -1, Y: -1},
		end:        aoclib.Pt{X: -1, Y: -1},
	}
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(line), width)
		}
		for x := 0; x < len(line); x++ {
			p := aoclib.Pt{X: x, Y: y}
			c := line[x]
			switch c {
			case 'S':
				hm.start = p
				c = 'a'
			case 'E':
				hm.end = p
				c = 'z'
			}
			if c < 'a' || c > 'z' {
				return nil, fmt.Errorf("invalid elevation %q at %v", c, p)
			}
			hm.elevations.Set(p, c)
		}
	}
	if hm.start.X < 0 {
		return nil, fmt.Errorf("no start marker")
	}
	if hm.end.X < 0 {
		return nil, fmt.Errorf("no end marker")
	}
	return hm, nil
}

// graph connects each cell to the orthogonal neighbors it can step to,
// climbing at most one unit of elevation.
func (hm *heightmap) graph() *aoclib.Graph[aoclib.Pt] {
	g := &aoclib.Graph[aoclib.Pt]{}
	for y := 0; y < hm.elevations.Height(); y++ {
		for x := 0; x < hm.elevations.Width(); x++ {
			p := aoclib.Pt{X: x, Y: y}
			from := hm.elevations.At(p)
			p.ForImmediateNeighbors(func(q aoclib.Pt) bool {
				if to, ok := hm.elevations.AtOk(q); ok && to <= from+1 {
					g.AddEdge(p, q, 1)
				}
				return true
			})
		}
	}
	return g
}

func solvePart1(hm *heightmap) (int, error) {
	dist, ok := hm.graph().BFSDist(hm.start)[hm.end]
	if !ok {
		return 0, fmt.Errorf("no path from %v to %v", hm.start, hm.end)
	}
	return dist, nil
}

// solvePart2 finds the shortest trail from any lowest-elevation cell by
// searching backward from the end.
func solvePart2(hm *heightmap) (int, error) {
	dist := hm.graph().Reverse().BFSDist(hm.end)
	best, found := 0, false
	for y := 0; y < hm.elevations.Height(); y++ {
		for x := 0; x < hm.elevations.Width(); x++ {
			p := aoclib.Pt{X: x, Y: y}
			if hm.elevations.At(p) != 'a' {
				continue
			}
			if d, ok := dist[p]; ok && (!found || d < best) {
				best, found = d, true
			}
		}
	}
	if !found {
		return 0, fmt.Errorf("no lowest-elevation cell reaches %v", hm.end)
	}
	return best, nil
}

func main() {
	mode := cli.Parse()
	hm, err := parseHeightmap(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	solve := solvePart1
	if mode == cli.Part2 {
		solve = solvePart2
	}
	dist, err := solve(hm)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dist)
}
