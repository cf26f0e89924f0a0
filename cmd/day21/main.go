// Day 21: monkey math. Evaluate a tree of arithmetic jobs, then solve
// it for the human's number.
package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

const (
	rootMonkey  = "root"
	humanMonkey = "humn"
)

type job struct {
	literal  int64
	lhs, rhs string
	op       byte // zero for literal jobs
}

type troop map[string]job

func parseTroop(input string) (troop, error) {
	monkeys := troop{}
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		name, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("invalid job line %q", line)
		}
		if n, err := strconv.ParseInt(rest, 10, 64); err == nil {
			monkeys[name] = job{literal: n}
			continue
		}
		var j job
		var op string
		if _, err := fmt.Sscanf(rest, "%s %s %s", &j.lhs, &op, &j.rhs); err != nil {
			return nil, fmt.Errorf("invalid job %q: %w", line, err)
		}
		if len(op) != 1 || !strings.ContainsAny(op, "+-*/") {
			return nil, fmt.Errorf("invalid operator %q in %q", op, line)
		}
		j.op = op[0]
		monkeys[name] = j
	}
	for name, j := range monkeys {
		if j.op == 0 {
			continue
		}
		for _, dep := range []string{j.lhs, j.rhs} {
			if _, ok := monkeys[dep]; !ok {
				return nil, fmt.Errorf("monkey %s depends on unknown monkey %s", name, dep)
			}
		}
	}
	if _, ok := monkeys[rootMonkey]; !ok {
		return nil, fmt.Errorf("no %s monkey", rootMonkey)
	}
	return monkeys, nil
}

func (t troop) eval(name string) (int64, error) {
	j := t[name]
	if j.op == 0 {
		return j.literal, nil
	}
	a, err := t.eval(j.lhs)
	if err != nil {
		return 0, err
	}
	b, err := t.eval(j.rhs)
	if err != nil {
		return 0, err
	}
	switch j.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, fmt.Errorf("monkey %s divides by zero", name)
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("monkey %s has invalid operator %q", name, j.op)
}

// dependsOnHuman reports whether name's value involves the human.
func (t troop) dependsOnHuman(name string) bool {
	if name == humanMonkey {
		return true
	}
	j := t[name]
	if j.op == 0 {
		return false
	}
	return t.dependsOnHuman(j.lhs) || t.dependsOnHuman(j.rhs)
}

// solveForHuman walks from root toward the human, inverting each
// operation so the two root operands come out equal.
func (t troop) solveForHuman() (int64, error) {
	root := t[rootMonkey]
	if root.op == 0 {
		return 0, fmt.Errorf("%s has no operands", rootMonkey)
	}
	name := root.lhs
	other := root.rhs
	if !t.dependsOnHuman(name) {
		name, other = other, name
	}
	if !t.dependsOnHuman(name) {
		return 0, fmt.Errorf("no job depends on %s", humanMonkey)
	}
	target, err := t.eval(other)
	if err != nil {
		return 0, err
	}
	for name != humanMonkey {
		j := t[name]
		if j.op == 0 {
			return 0, fmt.Errorf("monkey %s unexpectedly has no operands", name)
		}
		humanSide, knownSide := j.lhs, j.rhs
		humanOnLeft := t.dependsOnHuman(j.lhs)
		if !humanOnLeft {
			humanSide, knownSide = j.rhs, j.lhs
		}
		known, err := t.eval(knownSide)
		if err != nil {
			return 0, err
		}
		switch {
		case j.op == '+':
			target -= known
		case j.op == '*':
			if known == 0 {
				return 0, fmt.Errorf("monkey %s multiplies by zero", name)
			}
			target /= known
		case j.op == '-' && humanOnLeft:
			target += known
		case j.op == '-':
			target = known - target
		case j.op == '/' && humanOnLeft:
			target *= known
		case j.op == '/':
			if target == 0 {
				return 0, fmt.Errorf("monkey %s needs division by zero", name)
			}
			target = known / target
		}
		name = humanSide
	}
	return target, nil
}

func main() {
	mode := cli.Parse()
	monkeys, err := parseTroop(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	var answer int64
	if mode == cli.Part1 {
		answer, err = monkeys.eval(rootMonkey)
	} else {
		answer, err = monkeys.solveForHuman()
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(answer)
}
