// Day 19: not enough minerals. Rank robot-factory blueprints by the
// geodes they can crack, using a pruned breadth-first search over
// per-minute factory states.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"golang.org/x/exp/slices"
	"tailscale.com/util/lru"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

// beamWidth bounds how many candidate states survive each minute.
const beamWidth = 10000

type blueprint struct {
	id                int
	oreRobotOre       int
	clayRobotOre      int
	obsidianRobotOre  int
	obsidianRobotClay int
	geodeRobotOre     int
	geodeRobotObs     int
}

func parseBlueprints(input string) ([]blueprint, error) {
	var blueprints []blueprint
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var bp blueprint
		_, err := fmt.Sscanf(line,
			"Blueprint %d: Each ore robot costs %d ore. Each clay robot costs %d ore. "+
				"Each obsidian robot costs %d ore and %d clay. Each geode robot costs %d ore and %d obsidian.",
			&bp.id, &bp.oreRobotOre, &bp.clayRobotOre,
			&bp.obsidianRobotOre, &bp.obsidianRobotClay,
			&bp.geodeRobotOre, &bp.geodeRobotObs)
		if err != nil {
			return nil, fmt.Errorf("invalid blueprint %q: %w", line, err)
		}
		blueprints = append(blueprints, bp)
	}
	if len(blueprints) == 0 {
		return nil, fmt.Errorf("no blueprints")
	}
	return blueprints, nil
}

type factory struct {
	ore, clay, obsidian, geode                         int
	oreRobots, clayRobots, obsidianRobots, geodeRobots int
}

func (f factory) collect() factory {
	f.ore += f.oreRobots
	f.clay += f.clayRobots
	f.obsidian += f.obsidianRobots
	f.geode += f.geodeRobots
	return f
}

// better orders factories by how promising they look, geodes first.
func better(a, b factory) int {
	for _, d := range []int{
		b.geode - a.geode,
		b.geodeRobots - a.geodeRobots,
		b.obsidian - a.obsidian,
		b.obsidianRobots - a.obsidianRobots,
		b.clay - a.clay,
		b.clayRobots - a.clayRobots,
		b.ore - a.ore,
		b.oreRobots - a.oreRobots,
	} {
		if d != 0 {
			return d
		}
	}
	return 0
}

// maxGeodes runs a beam search over factory states minute by minute.
// Building a geode robot is always taken when affordable, and robot
// counts are capped at the highest per-minute spend of their resource.
func maxGeodes(bp blueprint, minutes int) int {
	maxOre := bp.oreRobotOre
	for _, c := range []int{bp.clayRobotOre, bp.obsidianRobotOre, bp.geodeRobotOre} {
		if c > maxOre {
			maxOre = c
		}
	}
	states := []factory{{oreRobots: 1}}
	for minute := 0; minute < minutes; minute++ {
		// Dedupe within the minute; states from other minutes differ in
		// remaining time and must not collide.
		seen := &lru.Cache[factory, bool]{MaxEntries: 1 << 20}
		var next []factory
		push := func(f factory) {
			if _, ok := seen.GetOk(f); ok {
				return
			}
			seen.Set(f, true)
			next = append(next, f)
		}
		for _, f := range states {
			if f.ore >= bp.geodeRobotOre && f.obsidian >= bp.geodeRobotObs {
				g := f.collect()
				g.ore -= bp.geodeRobotOre
				g.obsidian -= bp.geodeRobotObs
				g.geodeRobots++
				push(g)
				continue
			}
			push(f.collect())
			if f.ore >= bp.oreRobotOre && f.oreRobots < maxOre {
				g := f.collect()
				g.ore -= bp.oreRobotOre
				g.oreRobots++
				push(g)
			}
			if f.ore >= bp.clayRobotOre && f.clayRobots < bp.obsidianRobotClay {
				g := f.collect()
				g.ore -= bp.clayRobotOre
				g.clayRobots++
				push(g)
			}
			if f.ore >= bp.obsidianRobotOre && f.clay >= bp.obsidianRobotClay &&
				f.obsidianRobots < bp.geodeRobotObs {
				g := f.collect()
				g.ore -= bp.obsidianRobotOre
				g.clay -= bp.obsidianRobotClay
				g.obsidianRobots++
				push(g)
			}
		}
		slices.SortFunc(next, better)
		if len(next) > beamWidth {
			next = next[:beamWidth]
		}
		states = next
	}
	best := 0
	for _, f := range states {
		if f.geode > best {
			best = f.geode
		}
	}
	slog.Debug("blueprint searched", "id", bp.id, "minutes", minutes, "geodes", best)
	return best
}

func qualitySum(blueprints []blueprint) int {
	return aoclib.Sum(aoclib.Parallel(blueprints, func(bp blueprint) int {
		return bp.id * maxGeodes(bp, 24)
	})...)
}

func topThreeProduct(blueprints []blueprint) int {
	if len(blueprints) > 3 {
		blueprints = blueprints[:3]
	}
	product := 1
	for _, g := range aoclib.Parallel(blueprints, func(bp blueprint) int {
		return maxGeodes(bp, 32)
	}) {
		product *= g
	}
	return product
}

func main() {
	mode := cli.Parse()
	blueprints, err := parseBlueprints(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		fmt.Println(qualitySum(blueprints))
	} else {
		fmt.Println(topThreeProduct(blueprints))
	}
}
