// Day 5: supply stacks. Replay crate moves one at a time (part 1) or in
// intact slices (part 2) and report the crate on top of each stack.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

type command struct {
	numCrates int
	source    int
	dest      int
}

type scene struct {
	stacks   []aoclib.Stack[byte]
	commands []command
}

func parseScene(input string) (*scene, error) {
	var layers [][]byte // crate rows, top first; 0 means no crate in that column
	var s scene
	for _, line := range strings.Split(input, "\n") {
		switch {
		case strings.HasPrefix(strings.TrimLeft(line, " "), "["):
			var row []byte
			for i := 0; i+1 < len(line); i += 4 {
				if line[i] != '[' {
					row = append(row, 0)
					continue
				}
				row = append(row, line[i+1])
			}
			layers = append(layers, row)
		case strings.HasPrefix(line, "move"):
			var cmd command
			if _, err := fmt.Sscanf(line, "move %d from %d to %d",
				&cmd.numCrates, &cmd.source, &cmd.dest); err != nil {
				return nil, fmt.Errorf("invalid move line %q: %w", line, err)
			}
			s.commands = append(s.commands, cmd)
		}
	}
	cols := 0
	for _, row := range layers {
		cols = max(cols, len(row))
	}
	s.stacks = make([]aoclib.Stack[byte], cols)
	for i := len(layers) - 1; i >= 0; i-- { // bottom layer first
		for col, c := range layers[i] {
			if c != 0 {
				s.stacks[col].Push(c)
			}
		}
	}
	return &s, nil
}

func (s *scene) run(mode cli.Mode) error {
	for _, cmd := range s.commands {
		if cmd.source < 1 || cmd.source > len(s.stacks) ||
			cmd.dest < 1 || cmd.dest > len(s.stacks) {
			return fmt.Errorf("move references missing stack: %+v", cmd)
		}
		src, dst := &s.stacks[cmd.source-1], &s.stacks[cmd.dest-1]
		if mode == cli.Part1 {
			for i := 0; i < cmd.numCrates; i++ {
				c, ok := src.Pop()
				if !ok {
					return fmt.Errorf("stack %d ran dry", cmd.source)
				}
				dst.Push(c)
			}
			continue
		}
		crates, ok := src.PopN(cmd.numCrates)
		if !ok {
			return fmt.Errorf("stack %d has fewer than %d crates", cmd.source, cmd.numCrates)
		}
		dst.PushAll(crates)
	}
	return nil
}

func (s *scene) tops() string {
	out := make([]byte, len(s.stacks))
	for i := range s.stacks {
		c, ok := s.stacks[i].Peek()
		if !ok {
			c = ' '
		}
		out[i] = c
	}
	return string(out)
}

func solve(input string, mode cli.Mode) (string, error) {
	s, err := parseScene(input)
	if err != nil {
		return "", err
	}
	if err := s.run(mode); err != nil {
		return "", err
	}
	return s.tops(), nil
}

func main() {
	mode := cli.Parse()
	tops, err := solve(cli.Input(), mode)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tops)
}
