// Day 6: tuning trouble. Report how many bytes must be consumed before
// the first window of 4 (part 1) or 14 (part 2) distinct bytes ends.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

func uniqueBytes(s []byte) bool {
	var seen [256]bool
	for _, b := range s {
		if seen[b] {
			return false
		}
		seen[b] = true
	}
	return true
}

func findMarker(data []byte, size int) (int, error) {
	for i := size; i <= len(data); i++ {
		if uniqueBytes(data[i-size : i]) {
			return i, nil
		}
	}
	return 0, errors.New("no marker found")
}

func main() {
	mode := cli.Parse()
	size := 4
	if mode == cli.Part2 {
		size = 14
	}
	pos, err := findMarker([]byte(cli.Input()), size)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(pos)
}
