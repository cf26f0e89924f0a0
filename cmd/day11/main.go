// Day 11: monkey in the middle. Monkeys inspect worry levels and throw
// items around; rank them by inspection count.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

type operand int

// square marks an "old * old" operation.
const square operand = -1

type monkey struct {
	items       []int
	multiply    bool
	operand     operand
	divisor     int
	onTrue      int
	onFalse     int
	inspections int
}

func (m *monkey) inspect(worry int) int {
	arg := int(m.operand)
	if m.operand == square {
		arg = worry
	}
	m.inspections++
	if m.multiply {
		return worry * arg
	}
	return worry + arg
}

func parseMonkeys(input string) ([]*monkey, error) {
	var monkeys []*monkey
	for _, block := range strings.Split(strings.TrimSpace(input), "\n\n") {
		lines := strings.Split(block, "\n")
		if len(lines) != 6 {
			return nil, fmt.Errorf("monkey block has %d lines, want 6", len(lines))
		}
		m := &monkey{}
		items, ok := strings.CutPrefix(strings.TrimSpace(lines[1]), "Starting items: ")
		if !ok {
			return nil, fmt.Errorf("invalid items line %q", lines[1])
		}
		for _, item := range strings.Split(items, ", ") {
			var worry int
			if _, err := fmt.Sscanf(item, "%d", &worry); err != nil {
				return nil, fmt.Errorf("invalid item %q: %w", item, err)
			}
			m.items = append(m.items, worry)
		}
		op, ok := strings.CutPrefix(strings.TrimSpace(lines[2]), "Operation: new = old ")
		if !ok {
			return nil, fmt.Errorf("invalid operation line %q", lines[2])
		}
		var opChar string
		var arg string
		if _, err := fmt.Sscanf(op, "%s %s", &opChar, &arg); err != nil {
			return nil, fmt.Errorf("invalid operation %q: %w", op, err)
		}
		switch opChar {
		case "*":
			m.multiply = true
		case "+":
		default:
			return nil, fmt.Errorf("invalid operator %q", opChar)
		}
		if arg == "old" {
			if !m.multiply {
				return nil, fmt.Errorf("unsupported operation %q", op)
			}
			m.operand = square
		} else {
			var n int
			if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
				return nil, fmt.Errorf("invalid operand %q: %w", arg, err)
			}
			m.operand = operand(n)
		}
		if _, err := fmt.Sscanf(strings.TrimSpace(lines[3]), "Test: divisible by %d", &m.divisor); err != nil {
			return nil, fmt.Errorf("invalid test line %q: %w", lines[3], err)
		}
		if _, err := fmt.Sscanf(strings.TrimSpace(lines[4]), "If true: throw to monkey %d", &m.onTrue); err != nil {
			return nil, fmt.Errorf("invalid true branch %q: %w", lines[4], err)
		}
		if _, err := fmt.Sscanf(strings.TrimSpace(lines[5]), "If false: throw to monkey %d", &m.onFalse); err != nil {
			return nil, fmt.Errorf("invalid false branch %q: %w", lines[5], err)
		}
		monkeys = append(monkeys, m)
	}
	for i, m := range monkeys {
		if m.onTrue >= len(monkeys) || m.onFalse >= len(monkeys) {
			return nil, fmt.Errorf("monkey %d throws out of range", i)
		}
	}
	return monkeys, nil
}

// monkeyBusiness runs the given number of rounds and multiplies the two
// highest inspection counts. Worry levels are kept bounded by the
// product of all test divisors; with relief enabled they are also
// divided by three after each inspection.
func monkeyBusiness(monkeys []*monkey, rounds int, relief bool) int {
	modulus := 1
	for _, m := range monkeys {
		modulus *= m.divisor
	}
	for round := 0; round < rounds; round++ {
		for _, m := range monkeys {
			for _, worry := range m.items {
				worry = m.inspect(worry) % modulus
				if relief {
					worry /= 3
				}
				target := m.onFalse
				if worry%m.divisor == 0 {
					target = m.onTrue
				}
				monkeys[target].items = append(monkeys[target].items, worry)
			}
			m.items = m.items[:0]
		}
	}
	counts := make([]int, len(monkeys))
	for i, m := range monkeys {
		counts[i] = m.inspections
		slog.Debug("inspection count", "monkey", i, "count", m.inspections)
	}
	slices.SortFunc(counts, func(a, b int) int { return b - a })
	return counts[0] * counts[1]
}

func main() {
	rounds := pflag.IntP("rounds", "r", 0, "override the round count (default 20 or 10000)")
	mode := cli.Parse()
	monkeys, err := parseMonkeys(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if *rounds == 0 {
		*rounds = 10000
		if mode == cli.Part1 {
			*rounds = 20
		}
	}
	fmt.Println(monkeyBusiness(monkeys, *rounds, mode == cli.Part1))
}
