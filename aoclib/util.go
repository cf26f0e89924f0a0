package aoclib

import (
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// SortedKeys returns m's keys in sorted order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

type Number interface {
	constraints.Float | constraints.Integer
}

func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Parallel maps f over in with one goroutine per CPU and returns the
// results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	out := make([]O, len(in))
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	g.Wait()
	return out
}
