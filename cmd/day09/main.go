// Day 9: rope bridge. A rope of knots follows head movements; count the
// positions the tail visits.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

type move struct {
	dir   aoclib.Pt
	steps int
}

func parseMoves(input string) ([]move, error) {
	var moves []move
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var dir string
		var steps int
		if _, err := fmt.Sscanf(line, "%s %d", &dir, &steps); err != nil {
			return nil, fmt.Errorf("invalid move %q: %w", line, err)
		}
		var d aoclib.Pt
		switch dir {
		case "U":
			d = aoclib.Pt{Y: -1}
		case "D":
			d = aoclib.Pt{Y: 1}
		case "L":
			d = aoclib.Pt{X: -1}
		case "R":
			d = aoclib.Pt{X: 1}
		default:
			return nil, fmt.Errorf("invalid direction %q", dir)
		}
		moves = append(moves, move{d, steps})
	}
	return moves, nil
}

// touching reports whether two knots are within one step of each other,
// diagonals included.
func touching(a, b aoclib.Pt) bool {
	return aoclib.AbsDiff(a.X, b.X) <= 1 && aoclib.AbsDiff(a.Y, b.Y) <= 1
}

// tailVisits simulates a rope of knotCount knots and returns the number
// of distinct positions the last knot occupies.
func tailVisits(moves []move, knotCount int) int {
	rope := make([]aoclib.Pt, knotCount)
	visited := map[aoclib.Pt]bool{rope[knotCount-1]: true}
	for _, m := range moves {
		for s := 0; s < m.steps; s++ {
			rope[0] = rope[0].Add(m.dir)
			for i := 1; i < len(rope); i++ {
				if touching(rope[i], rope[i-1]) {
					break
				}
				rope[i] = rope[i].Toward(rope[i-1])
			}
			visited[rope[knotCount-1]] = true
		}
		slog.Debug("rope state", "move", m, "head", rope[0], "tail", rope[knotCount-1])
	}
	return len(visited)
}

func main() {
	knots := pflag.IntP("knots", "k", 2, "number of knots in the rope")
	cli.ParseNoMode()
	if *knots < 2 {
		cli.Fatalf("need at least 2 knots, got %d", *knots)
	}
	moves, err := parseMoves(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tailVisits(moves, *knots))
}
