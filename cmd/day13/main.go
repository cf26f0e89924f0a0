// Day 13: distress signal. Compare nested integer-list packets.
package main

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

// packet is either a bare integer (list == nil, elems unused) or a list
// of sub-packets.
type packet struct {
	value int
	list  []*packet
	isInt bool
}

func intPacket(v int) *packet { return &packet{value: v, isInt: true} }

func listPacket(ps ...*packet) *packet { return &packet{list: ps} }

func (p *packet) String() string {
	if p.isInt {
		return fmt.Sprint(p.value)
	}
	var parts []string
	for _, sub := range p.list {
		parts = append(parts, sub.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// parsePacket parses one bracketed packet per line.
func parsePacket(line string) (*packet, error) {
	p, rest, err := parseValue(line)
	if err != nil {
		return nil, fmt.Errorf("invalid packet %q: %w", line, err)
	}
	if rest != "" {
		return nil, fmt.Errorf("trailing data %q after packet %q", rest, line)
	}
	return p, nil
}

func parseValue(s string) (*packet, string, error) {
	if s == "" {
		return nil, "", fmt.Errorf("unexpected end of packet")
	}
	if s[0] != '[' {
		n := 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		if n == 0 {
			return nil, "", fmt.Errorf("unexpected character %q", s[0])
		}
		v := 0
		for _, c := range s[:n] {
			v = v*10 + int(c-'0')
		}
		return intPacket(v), s[n:], nil
	}
	s = s[1:]
	list := listPacket()
	for {
		if s == "" {
			return nil, "", fmt.Errorf("unterminated list")
		}
		if s[0] == ']' {
			return list, s[1:], nil
		}
		if len(list.list) > 0 {
			if s[0] != ',' {
				return nil, "", fmt.Errorf("expected comma, got %q", s[0])
			}
			s = s[1:]
		}
		var elem *packet
		var err error
		elem, s, err = parseValue(s)
		if err != nil {
			return nil, "", err
		}
		list.list = append(list.list, elem)
	}
}

// compare orders packets per the signal rules: integers numerically,
// lists lexicographically, and a bare integer against a list as a
// one-element list.
func compare(a, b *packet) int {
	switch {
	case a.isInt && b.isInt:
		return a.value - b.value
	case a.isInt:
		return compare(listPacket(a), b)
	case b.isInt:
		return compare(a, listPacket(b))
	}
	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := compare(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}
	return len(a.list) - len(b.list)
}

func parsePackets(input string) ([]*packet, error) {
	var packets []*packet
	for _, line := range strings.Fields(strings.TrimSpace(input)) {
		p, err := parsePacket(line)
		if err != nil {
			return nil, err
		}
		packets = append(packets, p)
	}
	return packets, nil
}

// orderedPairSum sums the 1-based indices of the pairs already in order.
func orderedPairSum(packets []*packet) (int, error) {
	if len(packets)%2 != 0 {
		return 0, fmt.Errorf("odd packet count %d", len(packets))
	}
	total := 0
	for i := 0; i < len(packets); i += 2 {
		if compare(packets[i], packets[i+1]) < 0 {
			total += i/2 + 1
		}
	}
	return total, nil
}

// decoderKey sorts all packets plus the two divider packets and
// multiplies the dividers' 1-based positions.
func decoderKey(packets []*packet) int {
	div1 := listPacket(listPacket(intPacket(2)))
	div2 := listPacket(listPacket(intPacket(6)))
	all := append(slices.Clone(packets), div1, div2)
	slices.SortFunc(all, func(a, b *packet) int { return compare(a, b) })
	return (slices.Index(all, div1) + 1) * (slices.Index(all, div2) + 1)
}

func main() {
	mode := cli.Parse()
	packets, err := parsePackets(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		sum, err := orderedPairSum(packets)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(sum)
	} else {
		fmt.Println(decoderKey(packets))
	}
}
