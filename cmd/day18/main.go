// Day 18: boiling boulders. Surface area of a lava droplet built from
// unit cubes, with or without interior air pockets.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

type droplet map[aoclib.Pt3Int]bool

func parseDroplet(input string) (droplet, error) {
	cubes := droplet{}
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var p aoclib.Pt3Int
		if _, err := fmt.Sscanf(line, "%d,%d,%d", &p.X, &p.Y, &p.Z); err != nil {
			return nil, fmt.Errorf("invalid cube %q: %w", line, err)
		}
		cubes[p] = true
	}
	if len(cubes) == 0 {
		return nil, fmt.Errorf("no cubes")
	}
	return cubes, nil
}

// surfaceArea counts cube faces not shared with another cube.
func surfaceArea(cubes droplet) int {
	area := 0
	for p := range cubes {
		for _, n := range p.Neighbors() {
			if !cubes[n] {
				area++
			}
		}
	}
	return area
}

// exteriorSurfaceArea floods the space around the droplet from a corner
// outside its bounding box and counts the faces the flood touches,
// leaving interior pockets uncounted.
func exteriorSurfaceArea(cubes droplet) int {
	var lo, hi aoclib.Pt3Int
	first := true
	for p := range cubes {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo.X, lo.Y, lo.Z = min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z)
		hi.X, hi.Y, hi.Z = max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z)
	}
	// Pad by one so the flood can wrap around every face.
	lo = aoclib.Pt3Int{X: lo.X - 1, Y: lo.Y - 1, Z: lo.Z - 1}
	hi = aoclib.Pt3Int{X: hi.X + 1, Y: hi.Y + 1, Z: hi.Z + 1}
	inBounds := func(p aoclib.Pt3Int) bool {
		return p.X >= lo.X && p.X <= hi.X &&
			p.Y >= lo.Y && p.Y <= hi.Y &&
			p.Z >= lo.Z && p.Z <= hi.Z
	}
	area := 0
	flooded := map[aoclib.Pt3Int]bool{lo: true}
	q := aoclib.NewQueue(lo)
	q.While(func(p aoclib.Pt3Int) bool {
		for _, n := range p.Neighbors() {
			if !inBounds(n) || flooded[n] {
				continue
			}
			if cubes[n] {
				area++
				continue
			}
			flooded[n] = true
			q.Push(n)
		}
		return true
	})
	return area
}

func main() {
	mode := cli.Parse()
	cubes, err := parseDroplet(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		fmt.Println(surfaceArea(cubes))
	} else {
		fmt.Println(exteriorSurfaceArea(cubes))
	}
}
