package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestDirSizes(t *testing.T) {
	fs, err := parseFilesystem(sample)
	require.NoError(t, err)
	sizes := map[string]int{}
	fs.walkDirs(func(dirPath string, size int) {
		sizes[dirPath] = size
	})
	assert.Equal(t, map[string]int{
		"/":    48381165,
		"/a":   94853,
		"/a/e": 584,
		"/d":   24933642,
	}, sizes)
}

func TestPart1(t *testing.T) {
	fs, err := parseFilesystem(sample)
	require.NoError(t, err)
	assert.Equal(t, 95437, solvePart1(fs))
}

func TestPart2(t *testing.T) {
	fs, err := parseFilesystem(sample)
	require.NoError(t, err)
	best, err := solvePart2(fs)
	require.NoError(t, err)
	assert.Equal(t, 24933642, best)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"loose output",
		"$ cd /\n$ cd missing",
		"$ mount /dev/sda1",
		"$ cd /\n$ ls\nbroken",
	} {
		_, err := parseFilesystem(input)
		assert.Error(t, err, "input %q", input)
	}
}
