// Day 3: rucksack reorganization. Find the item common to both halves of
// each line (part 1) or to each group of three lines (part 2) and sum the
// item priorities.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

func priority(r rune) (int, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1, nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 27, nil
	}
	return 0, fmt.Errorf("item %q has no priority", r)
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// findDuplicate returns the single rune present in every string.
func findDuplicate(parts ...string) (rune, error) {
	common := runeSet(parts[0])
	for _, p := range parts[1:] {
		next := runeSet(p)
		for r := range common {
			if !next[r] {
				delete(common, r)
			}
		}
	}
	for r := range common {
		return r, nil
	}
	return 0, fmt.Errorf("no duplicate item in %q", parts)
}

func inputLines(input string) []string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func solvePart1(input string) (int, error) {
	total := 0
	for _, line := range inputLines(input) {
		dup, err := findDuplicate(line[:len(line)/2], line[len(line)/2:])
		if err != nil {
			return 0, err
		}
		p, err := priority(dup)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

func solvePart2(input string) (int, error) {
	lines := inputLines(input)
	if len(lines)%3 != 0 {
		return 0, fmt.Errorf("%d rucksacks do not form whole elf groups", len(lines))
	}
	total := 0
	for i := 0; i < len(lines); i += 3 {
		dup, err := findDuplicate(lines[i], lines[i+1], lines[i+2])
		if err != nil {
			return 0, err
		}
		p, err := priority(dup)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

func main() {
	mode := cli.Parse()
	solve := solvePart1
	if mode == cli.Part2 {
		solve = solvePart2
	}
	total, err := solve(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(total)
}
