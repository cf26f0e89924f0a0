// Day 22: monkey map. Walk a path over a board with gaps, wrapping
// around rows and columns.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

type cell byte

const (
	void cell = iota
	open
	wall
)

// facings in password order: right, down, left, up.
var facings = []aoclib.Pt{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

type step struct {
	forward int
	// turn is 'L', 'R', or zero for a plain move.
	turn byte
}

type board struct {
	cells *aoclib.DenseGrid[cell]
	start aoclib.Pt
}

func parseNotes(input string) (*board, []step, error) {
	boardText, pathText, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("missing blank line between board and path")
	}
	lines := strings.Split(strings.TrimRight(boardText, "\n"), "\n")
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width == 0 {
		return nil, nil, fmt.Errorf("empty board")
	}
	b := &board{
		cells: aoclib.NewDenseGrid(aoclib.Pt{X: 1, Y: 1}, aoclib.Pt{X: width, Y: len(lines)}, void),
		start: aoclib.Pt{X: -1, Y: -1},
	}
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			p := aoclib.Pt{X: x + 1, Y: y + 1}
			switch line[x] {
			case ' ':
			case '.':
				b.cells.Set(p, open)
				if b.start.X < 0 {
					b.start = p
				}
			case '#':
				b.cells.Set(p, wall)
			default:
				return nil, nil, fmt.Errorf("invalid board cell %q at %v", line[x], p)
			}
		}
	}
	if b.start.X < 0 {
		return nil, nil, fmt.Errorf("board has no open cell")
	}
	steps, err := parsePath(strings.TrimSpace(pathText))
	if err != nil {
		return nil, nil, err
	}
	return b, steps, nil
}

func parsePath(s string) ([]step, error) {
	var steps []step
	n := -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			if n < 0 {
				n = 0
			}
			n = n*10 + int(c-'0')
		case c == 'L' || c == 'R':
			if n >= 0 {
				steps = append(steps, step{forward: n})
				n = -1
			}
			steps = append(steps, step{turn: c})
		default:
			return nil, fmt.Errorf("invalid path character %q", c)
		}
	}
	if n >= 0 {
		steps = append(steps, step{forward: n})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	return steps, nil
}

// next returns the cell one step from p in dir, wrapping across the
// board and skipping the gaps.
func (b *board) next(p, dir aoclib.Pt) aoclib.Pt {
	for {
		p = p.Add(dir)
		if !b.cells.Contains(p) {
			switch {
			case p.X > b.cells.Max().X:
				p.X = b.cells.Min().X
			case p.X < b.cells.Min().X:
				p.X = b.cells.Max().X
			case p.Y > b.cells.Max().Y:
				p.Y = b.cells.Min().Y
			case p.Y < b.cells.Min().Y:
				p.Y = b.cells.Max().Y
			}
		}
		if b.cells.At(p) != void {
			return p
		}
	}
}

// walk follows the path from the leftmost open cell of the top row,
// facing right, and returns the final password.
func (b *board) walk(steps []step) int {
	pos := b.start
	facing := 0
	for _, st := range steps {
		switch st.turn {
		case 'L':
			facing = (facing + 3) % 4
			continue
		case 'R':
			facing = (facing + 1) % 4
			continue
		}
		for i := 0; i < st.forward; i++ {
			n := b.next(pos, facings[facing])
			if b.cells.At(n) == wall {
				break
			}
			pos = n
		}
	}
	return 1000*pos.Y + 4*pos.X + facing
}

func main() {
	mode := cli.Parse()
	if mode == cli.Part2 {
		cli.Fatalf("cube folding is not implemented")
	}
	b, steps, err := parseNotes(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(b.walk(steps))
}
