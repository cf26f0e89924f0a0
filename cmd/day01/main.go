// Day 1: calorie counting. Group the input by blank lines and report the
// largest group total (part 1) or the sum of the largest three (part 2).
package main

import (
	"fmt"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

// best keeps the n largest totals seen so far, largest first.
type best struct {
	totals []int
}

func newBest(n int) *best {
	return &best{totals: make([]int, n)}
}

func (b *best) add(total int) {
	for i, v := range b.totals {
		if total > v {
			copy(b.totals[i+1:], b.totals[i:])
			b.totals[i] = total
			return
		}
	}
}

func (b *best) sum() int {
	return aoclib.Sum(b.totals...)
}

func solve(input string, n int) int {
	b := newBest(n)
	acc := 0
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			b.add(acc)
			acc = 0
			continue
		}
		acc += aoclib.Int(line)
	}
	b.add(acc)
	return b.sum()
}

func main() {
	mode := cli.Parse()
	n := 1
	if mode == cli.Part2 {
		n = 3
	}
	fmt.Println(solve(cli.Input(), n))
}
