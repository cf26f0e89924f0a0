// Day 2: rock paper scissors strategy guide. In part 1 the second column
// is the shape to play; in part 2 it is the outcome to arrange.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

type shape int

const (
	rock shape = iota + 1
	paper
	scissors
)

func (s shape) score() int { return int(s) }

// beats returns the shape s defeats.
func (s shape) beats() shape {
	switch s {
	case rock:
		return scissors
	case paper:
		return rock
	default:
		return paper
	}
}

// beatenBy returns the shape that defeats s.
func (s shape) beatenBy() shape {
	switch s {
	case rock:
		return paper
	case paper:
		return scissors
	default:
		return rock
	}
}

type outcome int

const (
	loss outcome = iota
	tie
	win
)

func (o outcome) score() int { return int(o) * 3 }

func play(you, they shape) outcome {
	switch {
	case you == they:
		return tie
	case you.beats() == they:
		return win
	default:
		return loss
	}
}

func theyPlay(c byte) (shape, error) {
	if c < 'A' || c > 'C' {
		return 0, fmt.Errorf("unexpected opponent column %q", c)
	}
	return shape(c-'A') + rock, nil
}

func youPlay(c byte) (shape, error) {
	if c < 'X' || c > 'Z' {
		return 0, fmt.Errorf("unexpected response column %q", c)
	}
	return shape(c-'X') + rock, nil
}

func youShould(c byte) (outcome, error) {
	if c < 'X' || c > 'Z' {
		return 0, fmt.Errorf("unexpected outcome column %q", c)
	}
	return outcome(c - 'X'), nil
}

func scoreLine(line string, mode cli.Mode) (int, error) {
	if len(line) < 3 {
		return 0, fmt.Errorf("short strategy line %q", line)
	}
	they, err := theyPlay(line[0])
	if err != nil {
		return 0, err
	}
	if mode == cli.Part1 {
		you, err := youPlay(line[2])
		if err != nil {
			return 0, err
		}
		return you.score() + play(you, they).score(), nil
	}
	want, err := youShould(line[2])
	if err != nil {
		return 0, err
	}
	var you shape
	switch want {
	case win:
		you = they.beatenBy()
	case tie:
		you = they
	case loss:
		you = they.beats()
	}
	return you.score() + want.score(), nil
}

func solve(input string, mode cli.Mode) (int, error) {
	total := 0
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		score, err := scoreLine(line, mode)
		if err != nil {
			return 0, err
		}
		total += score
	}
	return total, nil
}

func main() {
	mode := cli.Parse()
	total, err := solve(cli.Input(), mode)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(total)
}
