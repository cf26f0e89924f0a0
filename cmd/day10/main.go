// Day 10: cathode-ray tube. A two-instruction CPU drives a 40x6 CRT.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

const (
	crtWidth  = 40
	crtHeight = 6
)

type instruction struct {
	cycles int
	addx   int
}

func parseProgram(input string) ([]instruction, error) {
	var program []instruction
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		op, arg, _ := strings.Cut(line, " ")
		switch op {
		case "noop":
			program = append(program, instruction{cycles: 1})
		case "addx":
			var v int
			if _, err := fmt.Sscanf(arg, "%d", &v); err != nil {
				return nil, fmt.Errorf("invalid addx operand %q: %w", arg, err)
			}
			program = append(program, instruction{cycles: 2, addx: v})
		default:
			return nil, fmt.Errorf("invalid instruction %q", line)
		}
	}
	return program, nil
}

// run executes the program and calls tick with the X register value
// during each cycle, starting at cycle 1.
func run(program []instruction, tick func(cycle, x int)) {
	x := 1
	cycle := 1
	for _, inst := range program {
		for c := 0; c < inst.cycles; c++ {
			tick(cycle, x)
			cycle++
		}
		x += inst.addx
	}
}

func signalStrengthSum(program []instruction) int {
	total := 0
	run(program, func(cycle, x int) {
		if cycle%40 == 20 {
			total += cycle * x
		}
	})
	return total
}

func render(program []instruction) string {
	var sb strings.Builder
	run(program, func(cycle, x int) {
		col := (cycle - 1) % crtWidth
		if col >= x-1 && col <= x+1 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if col == crtWidth-1 {
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

func main() {
	mode := cli.Parse()
	program, err := parseProgram(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		fmt.Println(signalStrengthSum(program))
	} else {
		fmt.Print(render(program))
	}
}
