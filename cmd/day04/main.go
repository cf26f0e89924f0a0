// Day 4: camp cleanup. Count assignment pairs where one inclusive range
// fully contains the other (part 1) or where they overlap at all (part 2).
package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

type assignment struct {
	start, end int
}

func parseAssignment(s string) (assignment, error) {
	lhs, rhs, ok := strings.Cut(s, "-")
	if !ok {
		return assignment{}, fmt.Errorf("assignment %q has no -", s)
	}
	start, err := strconv.Atoi(lhs)
	if err != nil {
		return assignment{}, err
	}
	end, err := strconv.Atoi(rhs)
	if err != nil {
		return assignment{}, err
	}
	return assignment{start, end}, nil
}

func (a assignment) contains(n int) bool {
	return n >= a.start && n <= a.end
}

func (a assignment) fullyContains(b assignment) bool {
	return a.contains(b.start) && a.contains(b.end)
}

func (a assignment) overlaps(b assignment) bool {
	return a.contains(b.start) || a.contains(b.end) ||
		(b.start <= a.start && b.end >= a.start)
}

func solve(input string, mode cli.Mode) (int, error) {
	count := 0
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lhs, rhs, ok := strings.Cut(line, ",")
		if !ok {
			return 0, fmt.Errorf("pair %q has no ,", line)
		}
		first, err := parseAssignment(lhs)
		if err != nil {
			return 0, err
		}
		second, err := parseAssignment(rhs)
		if err != nil {
			return 0, err
		}
		switch mode {
		case cli.Part1:
			if first.fullyContains(second) || second.fullyContains(first) {
				count++
			}
		case cli.Part2:
			if first.overlaps(second) {
				count++
			}
		}
	}
	return count, nil
}

func main() {
	mode := cli.Parse()
	count, err := solve(cli.Input(), mode)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(count)
}
