// Package day07 solves "No Space Left On Device": rebuild a directory tree
// from a terminal transcript and fold file sizes up through it.
package day07

import (
	"sort"
	"strings"

	"aoc2022/internal/domain"
	"aoc2022/internal/puzzles/input"
)

const Title = "No Space Left On Device"

const (
	SmallDirLimit = 100000
	DiskSize      = 70000000
	UpdateSize    = 30000000
)

const exampleInput = `$ cd /
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

// Example is the published sample.
var Example = domain.Example{
	Input: exampleInput,
	Want:  domain.Answers{Part1: "95437", Part2: "24933642"},
}

// Dir is a directory and everything listed beneath it.
type Dir struct {
	Dirs  map[string]*Dir
	Files map[string]int
}

func newDir() *Dir {
	return &Dir{Dirs: map[string]*Dir{}, Files: map[string]int{}}
}

func (d *Dir) child(name string) *Dir {
	c, ok := d.Dirs[name]
	if !ok {
		c = newDir()
		d.Dirs[name] = c
	}
	return c
}

// Size is the total size of all files in d and its subdirectories.
func (d *Dir) Size() int {
	total := 0
	for _, s := range d.Files {
		total += s
	}
	for _, c := range d.Dirs {
		total += c.Size()
	}
	return total
}

// Sizes returns the total size of every directory keyed by its absolute path.
func (d *Dir) Sizes() map[string]int {
	out := map[string]int{}
	d.collect("/", out)
	return out
}

func (d *Dir) collect(path string, out map[string]int) int {
	total := 0
	for _, s := range d.Files {
		total += s
	}
	names := make([]string, 0, len(d.Dirs))
	for name := range d.Dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		total += d.Dirs[name].collect(strings.TrimSuffix(path, "/")+"/"+name, out)
	}
	out[path] = total
	return total
}

// Parse replays the transcript and returns the root directory.
func Parse(raw []byte) (*Dir, error) {
	root := newDir()
	cwd := []*Dir{root}
	listing := false

	lines := input.Lines(raw)
	for i, line := range lines {
		n := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if cmd, ok := strings.CutPrefix(line, "$ "); ok {
			listing = false
			name, arg, _ := strings.Cut(cmd, " ")
			switch name {
			case "ls":
				listing = true
			case "cd":
				switch arg {
				case "":
					return nil, domain.InvalidInput("day07.parse", n, "cd without a directory")
				case "/":
					cwd = cwd[:1]
				case "..":
					if len(cwd) == 1 {
						return nil, domain.InvalidInput("day07.parse", n, "cd .. above /")
					}
					cwd = cwd[:len(cwd)-1]
				default:
					cwd = append(cwd, cwd[len(cwd)-1].child(arg))
				}
			default:
				return nil, domain.InvalidInput("day07.parse", n, "unknown command %q", name)
			}
			continue
		}

		if !listing {
			return nil, domain.InvalidInput("day07.parse", n, "output %q outside of ls", line)
		}
		info, entry, ok := strings.Cut(line, " ")
		if !ok || entry == "" {
			return nil, domain.InvalidInput("day07.parse", n, "listing entry %q has no name", line)
		}
		dir := cwd[len(cwd)-1]
		if info == "dir" {
			dir.child(entry)
			continue
		}
		size, err := input.Uint("day07.parse", n, info)
		if err != nil {
			return nil, err
		}
		dir.Files[entry] = size
	}
	return root, nil
}

// Part1 sums the sizes of all directories no larger than SmallDirLimit.
// Nested directories count once for each directory they belong to.
func Part1(root *Dir) int {
	sum := 0
	for _, s := range root.Sizes() {
		if s <= SmallDirLimit {
			sum += s
		}
	}
	return sum
}

// Part2 returns the size of the smallest directory whose removal leaves
// UpdateSize free on a DiskSize disk, or 0 when enough space is already free.
func Part2(root *Dir) (int, error) {
	sizes := root.Sizes()
	used := sizes["/"]
	if used > DiskSize {
		return 0, domain.InvalidInput("day07.part2", 0, "%d used exceeds disk size %d", used, DiskSize)
	}
	need := UpdateSize - (DiskSize - used)
	if need <= 0 {
		return 0, nil
	}
	best := used
	for _, s := range sizes {
		if s >= need && s < best {
			best = s
		}
	}
	return best, nil
}

// Solve parses raw and computes both parts.
func Solve(raw []byte) (domain.Answers, error) {
	root, err := Parse(raw)
	if err != nil {
		return domain.Answers{}, err
	}
	p2, err := Part2(root)
	if err != nil {
		return domain.Answers{}, err
	}
	return domain.Answers{Part1: domain.IntAnswer(Part1(root)), Part2: domain.IntAnswer(p2)}, nil
}
