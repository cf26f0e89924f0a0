// Package cli is the glue every day binary repeats: a part1/part2 mode
// flag, a verbose flag wired to slog, and full-buffer stdin reading.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rwpaynter/aoc2022/aoclib"
)

// Mode selects which half of a day's puzzle to run.
type Mode int

const (
	Part1 Mode = iota + 1
	Part2
)

func (m Mode) String() string {
	switch m {
	case Part1:
		return "part1"
	case Part2:
		return "part2"
	}
	return "unset"
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	switch strings.ToLower(s) {
	case "part1", "1":
		*m = Part1
	case "part2", "2":
		*m = Part2
	default:
		return fmt.Errorf("invalid mode %q (want part1 or part2)", s)
	}
	return nil
}

func (m *Mode) Type() string { return "mode" }

var verbose bool

// Parse handles the standard --mode and --verbose flags, plus any
// day-specific flags already registered on pflag.CommandLine.
func Parse() Mode {
	var m Mode
	pflag.VarP(&m, "mode", "m", "which part to run (part1|part2)")
	parseCommon()
	if m == 0 {
		fmt.Fprintln(os.Stderr, "required flag --mode not set")
		pflag.Usage()
		os.Exit(2)
	}
	return m
}

// ParseNoMode is for the days that take no part selector.
func ParseNoMode() {
	parseCommon()
}

func parseCommon() {
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	pflag.Parse()
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func Verbose() bool { return verbose }

// Input reads the entire puzzle input from stdin.
func Input() string {
	return string(aoclib.MustGet(io.ReadAll(os.Stdin)))
}

// ForLines calls onLine for each line of stdin.
func ForLines(onLine func(line string)) {
	s := bufio.NewScanner(os.Stdin)
	for s.Scan() {
		onLine(s.Text())
	}
	aoclib.MustDo(s.Err())
}

// Fatalf reports a fatal error and exits non-zero.
func Fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
