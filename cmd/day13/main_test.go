package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

func TestPart1(t *testing.T) {
	packets, err := parsePackets(sample)
	require.NoError(t, err)
	sum, err := orderedPairSum(packets)
	require.NoError(t, err)
	assert.Equal(t, 13, sum)
}

func TestPart2(t *testing.T) {
	packets, err := parsePackets(sample)
	require.NoError(t, err)
	assert.Equal(t, 140, decoderKey(packets))
}

func TestParseRoundTrip(t *testing.T) {
	for _, line := range []string{
		"[]",
		"[[[]]]",
		"[1,[2,[3,[4,[5,6,7]]]],8,9]",
		"[10,[],[20]]",
	} {
		p, err := parsePacket(line)
		require.NoError(t, err)
		assert.Equal(t, line, p.String())
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"[1,1,3,1,1]", "[1,1,5,1,1]", -1},
		{"[9]", "[[8,7,6]]", 1},
		{"[[4,4],4,4]", "[[4,4],4,4,4]", -1},
		{"[]", "[]", 0},
		{"[[[]]]", "[[]]", 1},
	}
	for _, tc := range cases {
		a, err := parsePacket(tc.a)
		require.NoError(t, err)
		b, err := parsePacket(tc.b)
		require.NoError(t, err)
		got := compare(a, b)
		switch {
		case tc.want < 0:
			assert.Negative(t, got, "%s vs %s", tc.a, tc.b)
		case tc.want > 0:
			assert.Positive(t, got, "%s vs %s", tc.a, tc.b)
		default:
			assert.Zero(t, got, "%s vs %s", tc.a, tc.b)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{"", "[1,2", "[1 2]", "[1,]", "[1]x", "]"} {
		_, err := parsePacket(line)
		assert.Error(t, err, "line %q", line)
	}
}
