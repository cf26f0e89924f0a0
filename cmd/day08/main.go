// Day 8: treetop tree house. Sight lines across a grid of tree heights.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

var directions = []aoclib.Pt{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

func parseForest(input string) (*aoclib.DenseGrid[int], error) {
	lines := strings.Fields(strings.TrimSpace(input))
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty forest")
	}
	width := len(lines[0])
	forest := aoclib.NewDenseGrid(aoclib.Pt{}, aoclib.Pt{X: width - 1, Y: len(lines) - 1}, 0)
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("row %d has %d trees, want %d", y, len(line), width)
		}
		for x, c := range line {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("invalid tree height %q", c)
			}
			forest.Set(aoclib.Pt{X: x, Y: y}, int(c-'0'))
		}
	}
	return forest, nil
}

// visible reports whether the tree at p can be seen from outside the
// forest along at least one axis.
func visible(forest *aoclib.DenseGrid[int], p aoclib.Pt) bool {
	height := forest.At(p)
	for _, d := range directions {
		blocked := false
		for q := p.Add(d); forest.Contains(q); q = q.Add(d) {
			if forest.At(q) >= height {
				blocked = true
				break
			}
		}
		if !blocked {
			return true
		}
	}
	return false
}

// scenicScore multiplies the viewing distances from p in all four
// directions. Edge trees score zero.
func scenicScore(forest *aoclib.DenseGrid[int], p aoclib.Pt) int {
	height := forest.At(p)
	score := 1
	for _, d := range directions {
		dist := 0
		for q := p.Add(d); forest.Contains(q); q = q.Add(d) {
			dist++
			if forest.At(q) >= height {
				break
			}
		}
		score *= dist
	}
	return score
}

func solvePart1(forest *aoclib.DenseGrid[int]) int {
	count := 0
	for y := 0; y < forest.Height(); y++ {
		for x := 0; x < forest.Width(); x++ {
			if visible(forest, aoclib.Pt{X: x, Y: y}) {
				count++
			}
		}
	}
	return count
}

func solvePart2(forest *aoclib.DenseGrid[int]) int {
	best := 0
	for y := 0; y < forest.Height(); y++ {
		for x := 0; x < forest.Width(); x++ {
			if score := scenicScore(forest, aoclib.Pt{X: x, Y: y}); score > best {
				best = score
			}
		}
	}
	return best
}

func main() {
	mode := cli.Parse()
	forest, err := parseForest(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		fmt.Println(solvePart1(forest))
	} else {
		fmt.Println(solvePart2(forest))
	}
}
