// Day 15: beacon exclusion zone. Sensors rule out beacon positions by
// manhattan radius; find coverage on one row, then the single gap.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

const tuningMultiplier = 4000000

type sensor struct {
	pos    aoclib.Pt
	beacon aoclib.Pt
	radius int
}

func parseSensors(input string) ([]sensor, error) {
	var sensors []sensor
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var s sensor
		_, err := fmt.Sscanf(line, "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.pos.X, &s.pos.Y, &s.beacon.X, &s.beacon.Y)
		if err != nil {
			return nil, fmt.Errorf("invalid sensor line %q: %w", line, err)
		}
		s.radius = s.pos.MDist(s.beacon)
		sensors = append(sensors, s)
	}
	return sensors, nil
}

// span is an inclusive range of x coordinates.
type span struct {
	lo, hi int
}

// rowSpans collects each sensor's coverage on the given row, merged
// into disjoint spans sorted by lo.
func rowSpans(sensors []sensor, row int) []span {
	var spans []span
	for _, s := range sensors {
		reach := s.radius - aoclib.AbsDiff(s.pos.Y, row)
		if reach < 0 {
			continue
		}
		spans = append(spans, span{s.pos.X - reach, s.pos.X + reach})
	}
	slices.SortFunc(spans, func(a, b span) int { return a.lo - b.lo })
	merged := spans[:0]
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.lo <= merged[n-1].hi+1 {
			if sp.hi > merged[n-1].hi {
				merged[n-1].hi = sp.hi
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// coveredOnRow counts positions on the row that cannot hold a beacon.
func coveredOnRow(sensors []sensor, row int) int {
	total := 0
	spans := rowSpans(sensors, row)
	for _, sp := range spans {
		total += sp.hi - sp.lo + 1
	}
	beacons := map[int]bool{}
	for _, s := range sensors {
		if s.beacon.Y != row || beacons[s.beacon.X] {
			continue
		}
		for _, sp := range spans {
			if s.beacon.X >= sp.lo && s.beacon.X <= sp.hi {
				beacons[s.beacon.X] = true
				break
			}
		}
	}
	return total - len(beacons)
}

// findBeacon scans rows 0..bound for the one x in [0, bound] no sensor
// covers. Rows are checked in parallel chunks.
func findBeacon(sensors []sensor, bound int) (aoclib.Pt, error) {
	type chunk struct {
		from, to int
	}
	const chunkRows = 4096
	var chunks []chunk
	for from := 0; from <= bound; from += chunkRows {
		to := from + chunkRows - 1
		if to > bound {
			to = bound
		}
		chunks = append(chunks, chunk{from, to})
	}
	results := aoclib.Parallel(chunks, func(c chunk) (found []aoclib.Pt) {
		for row := c.from; row <= c.to; row++ {
			x := 0
			for _, sp := range rowSpans(sensors, row) {
				if x < sp.lo {
					break
				}
				if sp.hi >= x {
					x = sp.hi + 1
				}
			}
			if x <= bound {
				found = append(found, aoclib.Pt{X: x, Y: row})
			}
		}
		return found
	})
	for _, found := range results {
		if len(found) > 0 {
			slog.Debug("distress beacon located", "pos", found[0])
			return found[0], nil
		}
	}
	return aoclib.Pt{}, fmt.Errorf("no uncovered position within bound %d", bound)
}

func main() {
	param := pflag.IntP("param", "p", 0,
		"row to survey (part1, default 2000000) or search bound (part2, default 4000000)")
	mode := cli.Parse()
	sensors, err := parseSensors(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		row := *param
		if row == 0 {
			row = 2000000
		}
		fmt.Println(coveredOnRow(sensors, row))
		return
	}
	bound := *param
	if bound == 0 {
		bound = tuningMultiplier
	}
	beacon, err := findBeacon(sensors, bound)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(beacon.X*tuningMultiplier + beacon.Y)
}
