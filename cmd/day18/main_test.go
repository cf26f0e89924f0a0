package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
`

func TestPart1(t *testing.T) {
	cubes, err := parseDroplet(sample)
	require.NoError(t, err)
	assert.Equal(t, 64, surfaceArea(cubes))
}

func TestPart2(t *testing.T) {
	cubes, err := parseDroplet(sample)
	require.NoError(t, err)
	assert.Equal(t, 58, exteriorSurfaceArea(cubes))
}

func TestTwoCubes(t *testing.T) {
	cubes, err := parseDroplet("1,1,1\n2,1,1")
	require.NoError(t, err)
	assert.Equal(t, 10, surfaceArea(cubes))
	assert.Equal(t, 10, exteriorSurfaceArea(cubes))
}

func TestHollowCube(t *testing.T) {
	var sb []byte
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				sb = append(sb, []byte{byte('0' + x), ',', byte('0' + y), ',', byte('0' + z), '\n'}...)
			}
		}
	}
	cubes, err := parseDroplet(string(sb))
	require.NoError(t, err)
	assert.Equal(t, 9*6+6, surfaceArea(cubes))
	assert.Equal(t, 9*6, exteriorSurfaceArea(cubes))
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "1,2", "a,b,c"} {
		_, err := parseDroplet(input)
		assert.Error(t, err, "input %q", input)
	}
}
