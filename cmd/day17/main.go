// Day 17: pyroclastic flow. Rocks fall tetris-style in a narrow chamber
// pushed by a jet pattern. Long runs are collapsed by detecting when the
// surface, rock, and jet state repeats.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"tailscale.com/util/deephash"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

const chamberWidth = 7

// shapes holds the five rock shapes as offsets from the bottom-left
// corner, with y growing upward.
var shapes = [][]aoclib.Pt{
	{{X: 0}, {X: 1}, {X: 2}, {X: 3}},
	{{X: 1}, {Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
	{{X: 0}, {X: 1}, {X: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	{{Y: 0}, {Y: 1}, {Y: 2}, {Y: 3}},
	{{X: 0}, {X: 1}, {Y: 1}, {X: 1, Y: 1}},
}

func parseJets(input string) (string, error) {
	jets := strings.TrimSpace(input)
	if jets == "" {
		return "", fmt.Errorf("empty jet pattern")
	}
	for _, c := range jets {
		if c != '<' && c != '>' {
			return "", fmt.Errorf("invalid jet %q", c)
		}
	}
	return jets, nil
}

type chamber struct {
	stuck map[aoclib.Pt]bool
	top   int // height of the tower, floor is y -1
	jets  string
	jet   int
	shape int
}

func newChamber(jets string) *chamber {
	return &chamber{stuck: map[aoclib.Pt]bool{}, jets: jets}
}

func (c *chamber) collides(pos aoclib.Pt, shape []aoclib.Pt) bool {
	for _, off := range shape {
		p := pos.Add(off)
		if p.X < 0 || p.X >= chamberWidth || p.Y < 0 || c.stuck[p] {
			return true
		}
	}
	return false
}

// drop lets one rock fall until it settles.
func (c *chamber) drop() {
	shape := shapes[c.shape]
	c.shape = (c.shape + 1) % len(shapes)
	pos := aoclib.Pt{X: 2, Y: c.top + 3}
	for {
		push := aoclib.Pt{X: 1}
		if c.jets[c.jet] == '<' {
			push.X = -1
		}
		c.jet = (c.jet + 1) % len(c.jets)
		if next := pos.Add(push); !c.collides(next, shape) {
			pos = next
		}
		if next := pos.Add(aoclib.Pt{Y: -1}); !c.collides(next, shape) {
			pos = next
			continue
		}
		break
	}
	for _, off := range shape {
		p := pos.Add(off)
		c.stuck[p] = true
		if p.Y+1 > c.top {
			c.top = p.Y + 1
		}
	}
}

// surfaceKey captures everything that determines the chamber's future:
// the next rock, the jet cursor, and how deep each column's highest
// rock sits below the top.
type surfaceKey struct {
	Shape  int
	Jet    int
	Depths [chamberWidth]int
}

func (c *chamber) key() deephash.Sum {
	k := surfaceKey{Shape: c.shape, Jet: c.jet}
	for x := 0; x < chamberWidth; x++ {
		depth := c.top
		for y := c.top - 1; y >= 0; y-- {
			if c.stuck[aoclib.Pt{X: x, Y: y}] {
				depth = c.top - 1 - y
				break
			}
		}
		k.Depths[x] = depth
	}
	return deephash.Hash(&k)
}

// towerHeight drops rocks rocks and returns the resulting tower height.
// Once a surface state repeats, whole cycles are skipped arithmetically.
func towerHeight(jets string, rocks int) int {
	c := newChamber(jets)
	type mark struct {
		dropped int
		top     int
	}
	seen := map[deephash.Sum]mark{}
	skipped := 0
	for dropped := 0; dropped < rocks; dropped++ {
		if skipped == 0 {
			k := c.key()
			if prev, ok := seen[k]; ok {
				cycle := dropped - prev.dropped
				gain := c.top - prev.top
				n := (rocks - dropped) / cycle
				skipped = n * gain
				dropped += n * cycle
				slog.Debug("cycle detected",
					"at", dropped, "length", cycle, "gain", gain, "skipped_cycles", n)
				if dropped >= rocks {
					break
				}
			} else {
				seen[k] = mark{dropped, c.top}
			}
		}
		c.drop()
	}
	return c.top + skipped
}

func main() {
	mode := cli.Parse()
	jets, err := parseJets(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	rocks := 2022
	if mode == cli.Part2 {
		rocks = 1000000000000
	}
	fmt.Println(towerHeight(jets, rocks))
}
