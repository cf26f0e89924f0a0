// Day 7: no space left on device. Rebuild a filesystem tree from a shell
// transcript, cache directory sizes, then query them.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/rwpaynter/aoc2022/aoclib"
	"github.com/rwpaynter/aoc2022/internal/cli"
)

const (
	diskSize   = 70000000
	updateSize = 30000000
	smallDir   = 100000
)

// blockRef addresses a node in the filesystem's block arena.
type blockRef int

type node struct {
	dir      bool
	size     int
	children map[string]blockRef // dir nodes only
}

type filesystem struct {
	blocks []node
	root   blockRef
}

func newFilesystem() *filesystem {
	var fs filesystem
	fs.root = fs.alloc(node{dir: true})
	return &fs
}

func (fs *filesystem) alloc(n node) blockRef {
	fs.blocks = append(fs.blocks, n)
	return blockRef(len(fs.blocks) - 1)
}

func (fs *filesystem) dir(ref blockRef) *node {
	if ref < 0 || int(ref) >= len(fs.blocks) || !fs.blocks[ref].dir {
		return nil
	}
	return &fs.blocks[ref]
}

func (fs *filesystem) addChild(parent blockRef, name string, n node) (blockRef, error) {
	d := fs.dir(parent)
	if d == nil {
		return 0, fmt.Errorf("block %d is not a directory", parent)
	}
	if _, ok := d.children[name]; ok {
		return 0, fmt.Errorf("duplicate entry %q", name)
	}
	ref := fs.alloc(n)
	d = fs.dir(parent) // alloc may have moved the arena
	aoclib.InitMap(&d.children)
	d.children[name] = ref
	d.size += n.size
	return ref, nil
}

func (fs *filesystem) addDir(parent blockRef, name string) (blockRef, error) {
	return fs.addChild(parent, name, node{dir: true})
}

func (fs *filesystem) addFile(parent blockRef, name string, size int) error {
	_, err := fs.addChild(parent, name, node{size: size})
	return err
}

// cacheDirSizes folds each directory's subtree size into node.size,
// deepest directories first.
func (fs *filesystem) cacheDirSizes() {
	var stack aoclib.Stack[blockRef]
	stack.Push(fs.root)
	var traversal []blockRef
	stack.While(func(ref blockRef) bool {
		if d := fs.dir(ref); d != nil {
			for _, child := range d.children {
				stack.Push(child)
			}
			traversal = append(traversal, ref)
		}
		return true
	})
	for i := len(traversal) - 1; i >= 0; i-- {
		d := fs.dir(traversal[i])
		for _, child := range d.children {
			if c := fs.dir(child); c != nil {
				d.size += c.size
			}
		}
	}
}

// walkDirs calls f for every directory with its slash-joined path.
func (fs *filesystem) walkDirs(f func(dirPath string, size int)) {
	type frame struct {
		ref blockRef
		at  string
	}
	var stack aoclib.Stack[frame]
	stack.Push(frame{fs.root, "/"})
	stack.While(func(fr frame) bool {
		d := fs.dir(fr.ref)
		for name, child := range d.children {
			if fs.dir(child) != nil {
				stack.Push(frame{child, path.Join(fr.at, name)})
			}
		}
		f(fr.at, d.size)
		return true
	})
}

func parseFilesystem(input string) (*filesystem, error) {
	fs := newFilesystem()
	cwd := []blockRef{fs.root}
	listing := false
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "$") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("invalid command line %q", line)
			}
			switch fields[1] {
			case "cd":
				if len(fields) != 3 {
					return nil, fmt.Errorf("missing path for cd in %q", line)
				}
				listing = false
				switch target := fields[2]; target {
				case "/":
					cwd = cwd[:1]
				case "..":
					if len(cwd) > 1 {
						cwd = cwd[:len(cwd)-1]
					}
				default:
					d := fs.dir(cwd[len(cwd)-1])
					child, ok := d.children[target]
					if !ok || fs.dir(child) == nil {
						return nil, fmt.Errorf("cd into unknown directory %q", target)
					}
					cwd = append(cwd, child)
				}
			case "ls":
				listing = true
			default:
				return nil, fmt.Errorf("unhandled command %q", fields[1])
			}
			continue
		}
		if !listing {
			return nil, fmt.Errorf("output %q without a running command", line)
		}
		stat, name, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("invalid output line %q", line)
		}
		here := cwd[len(cwd)-1]
		if stat == "dir" {
			if _, err := fs.addDir(here, name); err != nil {
				return nil, err
			}
			continue
		}
		size, err := strconv.Atoi(stat)
		if err != nil {
			return nil, fmt.Errorf("invalid file size in %q: %w", line, err)
		}
		if err := fs.addFile(here, name, size); err != nil {
			return nil, err
		}
	}
	fs.cacheDirSizes()
	return fs, nil
}

func solvePart1(fs *filesystem) int {
	total := 0
	fs.walkDirs(func(_ string, size int) {
		if size < smallDir {
			total += size
		}
	})
	return total
}

func solvePart2(fs *filesystem) (int, error) {
	rootSize := fs.dir(fs.root).size
	if rootSize > diskSize {
		return 0, fmt.Errorf("filesystem uses %d of %d bytes", rootSize, diskSize)
	}
	free := diskSize - rootSize
	if free >= updateSize {
		return 0, fmt.Errorf("already %d bytes free", free)
	}
	needed := updateSize - free
	best, bestPath := 0, ""
	fs.walkDirs(func(dirPath string, size int) {
		if size >= needed && (best == 0 || size < best) {
			best, bestPath = size, dirPath
		}
	})
	if best == 0 {
		return 0, fmt.Errorf("no single directory frees %d bytes", needed)
	}
	slog.Debug("picked directory to delete", "path", bestPath, "size", best)
	return best, nil
}

func main() {
	mode := cli.Parse()
	fs, err := parseFilesystem(cli.Input())
	if err != nil {
		log.Fatal(err)
	}
	if mode == cli.Part1 {
		fmt.Println(solvePart1(fs))
		return
	}
	best, err := solvePart2(fs)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(best)
}
