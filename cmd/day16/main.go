// Day 16: proboscidea volcanium. Open valves in a tunnel network to
// release the most pressure, optionally with an elephant helping.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

const startValve = "AA"

type valve struct {
	flow    int
	tunnels []string
	// bit is this valve's position in the open-set mask, or zero for
	// valves with no flow.
	bit uint64
}

type network map[string]*valve

func parseNetwork(input string) (network, error) {
	net := network{}
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		head, tail, ok := strings.Cut(line, "; ")
		if !ok {
			return nil, fmt.Errorf("invalid valve line %q", line)
		}
		v := &valve{}
		var name string
		if _, err := fmt.Sscanf(head, "Valve %s has flow rate=%d", &name, &v.flow); err != nil {
			return nil, fmt.Errorf("invalid valve %q: %w", head, err)
		}
		list, ok := strings.CutPrefix(tail, "tunnels lead to valves ")
		if !ok {
			list, ok = strings.CutPrefix(tail, "tunnel leads to valve ")
		}
		if !ok {
			return nil, fmt.Errorf("invalid tunnel list %q", tail)
		}
		v.tunnels = strings.Split(list, ", ")
		net[name] = v
	}
	bits := 0
	for _, name := range aoclib.SortedKeys(net) {
		v := net[name]
		if v.flow > 0 {
			v.bit = 1 << bits
			bits++
		}
		for _, t := range v.tunnels {
			if _, ok := net[t]; !ok {
				return nil, fmt.Errorf("valve %s tunnels to unknown valve %s", name, t)
			}
		}
	}
	if bits > 64 {
		return nil, fmt.Errorf("%d working valves, can track at most 64", bits)
	}
	if _, ok := net[startValve]; !ok {
		return nil, fmt.Errorf("no valve %s", startValve)
	}
	return net, nil
}

type searchKey struct {
	pos       string
	remaining int
	open      uint64
	elephant  bool
}

type search struct {
	net  network
	memo map[searchKey]int
}

// best returns the most pressure releasable from pos with the given
// minutes left and valves already open. When elephant is set, running
// out of time hands the open set to a second actor starting fresh at
// the start valve.
func (s *search) best(key searchKey) int {
	if key.remaining == 0 {
		if key.elephant {
			return s.best(searchKey{startValve, 26, key.open, false})
		}
		return 0
	}
	if v, ok := s.memo[key]; ok {
		return v
	}
	v := s.net[key.pos]
	best := 0
	if v.bit != 0 && key.open&v.bit == 0 {
		released := v.flow * (key.remaining - 1)
		best = released + s.best(searchKey{key.pos, key.remaining - 1, key.open | v.bit, key.elephant})
	}
	for _, t := range v.tunnels {
		if got := s.best(searchKey{t, key.remaining - 1, key.open, key.elephant}); got > best {
			best = got
		}
	}
	s.memo[key] = best
	return best
}

func maxPressure(net network, minutes int, elephant bool) int {
	s := &search{net: net, memo: map[searchKey]int{}}
	got := s.best(searchKey{startValve, minutes, 0, elephant})
	slog.Debug("search finished", "memo_entries", len(s.memo))
	return got
}

func main() {
	mode := cli.Parse()
	net, err := parseNetwork(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		fmt.Println(maxPressure(net, 30, false))
	} else {
		fmt.Println(maxPressure(net, 26, true))
	}
}
