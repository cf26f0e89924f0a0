// Day 25: full of hot air. Sum fuel requirements written in SNAFU,
// base five with digits worth -2 to 2.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/rwpaynter/aoc2022/internal/cli"
)

func parseSNAFU(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	n := 0
	for _, c := range s {
		n *= 5
		switch c {
		case '2':
			n += 2
		case '1':
			n++
		case '0':
		case '-':
			n--
		case '=':
			n -= 2
		default:
			return 0, fmt.Errorf("invalid digit %q in %q", c, s)
		}
	}
	return n, nil
}

func formatSNAFU(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n != 0 {
		rem := n % 5
		n /= 5
		switch rem {
		case 3:
			digits = append(digits, '=')
			n++
		case 4:
			digits = append(digits, '-')
			n++
		default:
			digits = append(digits, byte('0'+rem))
		}
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func sumSNAFU(input string) (string, error) {
	total := 0
	for _, line := range strings.Fields(strings.TrimSpace(input)) {
		n, err := parseSNAFU(line)
		if err != nil {
			return "", err
		}
		total += n
	}
	return formatSNAFU(total), nil
}

func main() {
	cli.ParseNoMode()
	total, err := sumSNAFU(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(total)
}
