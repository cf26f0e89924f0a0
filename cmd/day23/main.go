// Day 23: unstable diffusion. Elves spread out over an infinite grove
// with a rotating set of movement proposals.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

type elves map[aoclib.Pt]bool

func parseElves(input string) (elves, error) {
	grove := elves{}
	for y, line := range strings.Split(strings.TrimSpace(input), "\n") {
		for x, c := range line {
			switch c {
			case '#':
				grove[aoclib.Pt{X: x, Y: y}] = true
			case '.':
			default:
				return nil, fmt.Errorf("invalid grove cell %q at row %d", c, y)
			}
		}
	}
	if len(grove) == 0 {
		return nil, fmt.Errorf("no elves")
	}
	return grove, nil
}

// proposal lists the three cells that must be empty and the move taken
// when they are.
type proposal struct {
	checks [3]aoclib.Pt
	move   aoclib.Pt
}

var proposals = []proposal{
	{[3]aoclib.Pt{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}}, aoclib.Pt{Y: -1}},
	{[3]aoclib.Pt{{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}}, aoclib.Pt{Y: 1}},
	{[3]aoclib.Pt{{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}}, aoclib.Pt{X: -1}},
	{[3]aoclib.Pt{{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}}, aoclib.Pt{X: 1}},
}

// round moves the elves once. firstProposal rotates by one each round.
// It reports whether anyone moved.
func round(grove elves, firstProposal int) bool {
	proposed := map[aoclib.Pt]aoclib.Pt{} // destination -> source
	blocked := map[aoclib.Pt]bool{}
	for elf := range grove {
		alone := true
		elf.ForNeighbors(func(n aoclib.Pt) bool {
			if grove[n] {
				alone = false
				return false
			}
			return true
		})
		if alone {
			continue
		}
		for i := 0; i < len(proposals); i++ {
			p := proposals[(firstProposal+i)%len(proposals)]
			clear := true
			for _, c := range p.checks {
				if grove[elf.Add(c)] {
					clear = false
					break
				}
			}
			if !clear {
				continue
			}
			dest := elf.Add(p.move)
			if _, taken := proposed[dest]; taken {
				blocked[dest] = true
			} else {
				proposed[dest] = elf
			}
			break
		}
	}
	moved := false
	for dest, src := range proposed {
		if blocked[dest] {
			continue
		}
		delete(grove, src)
		grove[dest] = true
		moved = true
	}
	return moved
}

// emptyGround runs the given number of rounds and counts the empty
// cells in the elves' bounding box.
func emptyGround(grove elves, rounds int) int {
	for r := 0; r < rounds; r++ {
		round(grove, r%len(proposals))
	}
	var min, max aoclib.Pt
	first := true
	for elf := range grove {
		if first {
			min, max = elf, elf
			first = false
			continue
		}
		if elf.X < min.X {
			min.X = elf.X
		}
		if elf.Y < min.Y {
			min.Y = elf.Y
		}
		if elf.X > max.X {
			max.X = elf.X
		}
		if elf.Y > max.Y {
			max.Y = elf.Y
		}
	}
	return (max.X-min.X+1)*(max.Y-min.Y+1) - len(grove)
}

// settleRound returns the 1-based number of the first round where no
// elf moves.
func settleRound(grove elves) int {
	for r := 0; ; r++ {
		if !round(grove, r%len(proposals)) {
			slog.Debug("grove settled", "round", r+1, "elves", len(grove))
			return r + 1
		}
	}
}

func main() {
	mode := cli.Parse()
	grove, err := parseElves(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		fmt.Println(emptyGround(grove, 10))
	} else {
		fmt.Println(settleRound(grove))
	}
}
