// Day 14: regolith reservoir. Sand pours from (500,0) into a cave of
// rock paths until it escapes or plugs the source.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

var source = aoclib.Pt{X: 500, Y: 0}

type cell byte

const (
	empty cell = iota
	rock
	sand
)

func parsePaths(input string) ([][]aoclib.Pt, error) {
	var paths [][]aoclib.Pt
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var path []aoclib.Pt
		for _, part := range strings.Split(line, " -> ") {
			var p aoclib.Pt
			if _, err := fmt.Sscanf(part, "%d,%d", &p.X, &p.Y); err != nil {
				return nil, fmt.Errorf("invalid point %q: %w", part, err)
			}
			path = append(path, p)
		}
		if len(path) < 2 {
			return nil, fmt.Errorf("path %q has fewer than two points", line)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// buildCave rasterizes the rock paths into a grid that also covers the
// sand source. With a floor, the grid is widened so the resulting sand
// pile always fits and a rock floor is drawn two rows below the lowest
// rock.
func buildCave(paths [][]aoclib.Pt, withFloor bool) *aoclib.DenseGrid[cell] {
	min, max := source, source
	for _, path := range paths {
		for _, p := range path {
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	if withFloor {
		max.Y += 2
		// A full pile is a triangle of height maxY, so this is wide enough.
		min.X = source.X - max.Y - 1
		max.X = source.X + max.Y + 1
	}
	cave := aoclib.NewDenseGrid(min, max, empty)
	for _, path := range paths {
		for i := 1; i < len(path); i++ {
			path[i-1].LineTo(path[i], func(p aoclib.Pt) bool {
				cave.Set(p, rock)
				return true
			})
		}
	}
	if withFloor {
		floorY := max.Y
		for x := min.X; x <= max.X; x++ {
			cave.Set(aoclib.Pt{X: x, Y: floorY}, rock)
		}
	}
	return cave
}

// pourSand drops sand grains from the source until one falls out of the
// cave or the source itself is blocked, and returns how many came to
// rest.
func pourSand(cave *aoclib.DenseGrid[cell]) int {
	resting := 0
	for cave.At(source) == empty {
		p := source
		settled := false
		for !settled {
			moved := false
			for _, d := range []aoclib.Pt{{Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}} {
				next := p.Add(d)
				if !cave.Contains(next) {
					slog.Debug("sand escaped", "at", p, "resting", resting)
					return resting
				}
				if cave.At(next) == empty {
					p = next
					moved = true
					break
				}
			}
			settled = !moved
		}
		cave.Set(p, sand)
		resting++
	}
	return resting
}

func main() {
	mode := cli.Parse()
	paths, err := parsePaths(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	cave := buildCave(paths, mode == cli.Part2)
	count := pourSand(cave)
	if cli.Verbose() {
		cave.Dump(func(c cell) rune {
			switch c {
			case rock:
				return '#'
			case sand:
				return 'o'
			}
			return '.'
		})
	}
	fmt.Println(count)
}
