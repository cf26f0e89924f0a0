// Day 24: blizzard basin. Cross a valley of cycling blizzards, possibly
// going back for the snacks.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

type blizzard struct {
	pos aoclib.Pt
	dir aoclib.Pt
}

type valley struct {
	width, height int // interior size, walls excluded
	blizzards     []blizzard
	start, goal   aoclib.Pt
	// occupied caches blizzard positions per minute.
	occupied []map[aoclib.Pt]bool
}

func parseValley(input string) (*valley, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("valley too small")
	}
	v := &valley{
		width:  len(lines[0]) - 2,
		height: len(lines) - 2,
	}
	if v.width < 1 {
		return nil, fmt.Errorf("valley too narrow")
	}
	for y, line := range lines {
		if len(line) != v.width+2 {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(line), v.width+2)
		}
		for x, c := range line {
			p := aoclib.Pt{X: x - 1, Y: y - 1}
			onEdge := x == 0 || x == len(line)-1 || y == 0 || y == len(lines)-1
			switch c {
			case '#':
				if !onEdge {
					return nil, fmt.Errorf("wall inside the valley at %v", p)
				}
			case '.':
				if y == 0 {
					v.start = p
				} else if y == len(lines)-1 {
					v.goal = p
				}
			case '^', 'v', '<', '>':
				if onEdge {
					return nil, fmt.Errorf("blizzard on the wall at %v", p)
				}
				dir := map[rune]aoclib.Pt{
					'^': {Y: -1}, 'v': {Y: 1}, '<': {X: -1}, '>': {X: 1},
				}[c]
				v.blizzards = append(v.blizzards, blizzard{p, dir})
			default:
				return nil, fmt.Errorf("invalid valley cell %q at %v", c, p)
			}
		}
	}
	if v.start.Y != -1 || v.goal.Y != v.height {
		return nil, fmt.Errorf("missing start or goal opening")
	}
	return v, nil
}

// occupiedAt returns the blizzard-covered cells at the given minute,
// computing and caching any minutes not seen yet.
func (v *valley) occupiedAt(minute int) map[aoclib.Pt]bool {
	for len(v.occupied) <= minute {
		t := len(v.occupied)
		cells := make(map[aoclib.Pt]bool, len(v.blizzards))
		for _, b := range v.blizzards {
			p := b.pos.Add(b.dir.Scale(t))
			p.X = ((p.X % v.width) + v.width) % v.width
			p.Y = ((p.Y % v.height) + v.height) % v.height
			cells[p] = true
		}
		v.occupied = append(v.occupied, cells)
	}
	return v.occupied[minute]
}

func (v *valley) walkable(p aoclib.Pt) bool {
	if p == v.start || p == v.goal {
		return true
	}
	return p.X >= 0 && p.X < v.width && p.Y >= 0 && p.Y < v.height
}

// trip returns the earliest arrival minute at to, leaving from at the
// given minute.
func (v *valley) trip(from, to aoclib.Pt, minute int) (int, error) {
	type state struct {
		pos    aoclib.Pt
		minute int
	}
	seen := map[state]bool{{from, minute}: true}
	q := aoclib.NewQueue(state{from, minute})
	found := -1
	q.While(func(s state) bool {
		if s.pos == to {
			found = s.minute
			return false
		}
		next := s.minute + 1
		occupied := v.occupiedAt(next)
		moves := []aoclib.Pt{s.pos, s.pos.Add(aoclib.Pt{X: 1}), s.pos.Add(aoclib.Pt{X: -1}),
			s.pos.Add(aoclib.Pt{Y: 1}), s.pos.Add(aoclib.Pt{Y: -1})}
		for _, m := range moves {
			if !v.walkable(m) || occupied[m] {
				continue
			}
			ns := state{m, next}
			if seen[ns] {
				continue
			}
			seen[ns] = true
			q.Push(ns)
		}
		return true
	})
	if found < 0 {
		return 0, fmt.Errorf("no route from %v to %v", from, to)
	}
	return found, nil
}

func crossingTime(v *valley, trips int) (int, error) {
	minute := 0
	from, to := v.start, v.goal
	for i := 0; i < trips; i++ {
		var err error
		minute, err = v.trip(from, to, minute)
		if err != nil {
			return 0, err
		}
		slog.Debug("leg complete", "leg", i+1, "minute", minute)
		from, to = to, from
	}
	return minute, nil
}

func main() {
	mode := cli.Parse()
	v, err := parseValley(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	trips := 1
	if mode == cli.Part2 {
		trips = 3
	}
	minutes, err := crossingTime(v, trips)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(minutes)
}
