// Day 20: grove positioning system. Decrypt a circular list by moving
// each number forward or back by its own value.
package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

const decryptionKey = 811589153

func parseNumbers(input string) ([]int, error) {
	var nums []int
	zeros := 0
	for _, field := range strings.Fields(strings.TrimSpace(input)) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		if n == 0 {
			zeros++
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	if zeros != 1 {
		return nil, fmt.Errorf("file has %d zeros, want exactly 1", zeros)
	}
	return nums, nil
}

// entry keeps a number's identity stable while the list reorders, since
// input values repeat.
type entry struct {
	value int
}

// mix multiplies every number by key, shuffles the list the given
// number of rounds, and returns the decrypted order.
func mix(nums []int, key, rounds int) []int {
	entries := make([]*entry, len(nums))
	order := make([]*entry, len(nums))
	for i, n := range nums {
		entries[i] = &entry{value: n * key}
		order[i] = entries[i]
	}
	// Removing the entry first leaves n-1 slots, so movement wraps at
	// n-1, not n.
	wrap := len(nums) - 1
	for round := 0; round < rounds; round++ {
		for _, e := range entries {
			from := slices.Index(order, e)
			order = slices.Delete(order, from, from+1)
			to := (from + e.value) % wrap
			if to < 0 {
				to += wrap
			}
			order = slices.Insert(order, to, e)
		}
	}
	out := make([]int, len(order))
	for i, e := range order {
		out[i] = e.value
	}
	return out
}

// groveSum adds the values 1000, 2000, and 3000 places after the zero.
func groveSum(mixed []int) int {
	zero := slices.Index(mixed, 0)
	sum := 0
	for _, offset := range []int{1000, 2000, 3000} {
		sum += mixed[(zero+offset)%len(mixed)]
	}
	return sum
}

func main() {
	mode := cli.Parse()
	nums, err := parseNumbers(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		fmt.Println(groveSum(mix(nums, 1, 1)))
	} else {
		fmt.Println(groveSum(mix(nums, decryptionKey, 10)))
	}
}
