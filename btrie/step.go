package btrie

import (
	"errors"
	"strings"
)

// Step is a single decision when walking down a binary trie.
type Step uint8

// Steps into the left or right subtree, respectively.
const (
	Left Step = iota
	Right
)

// ErrNotAStep is returned by ParseStep for characters which do not denote a
// direction.
var ErrNotAStep = errors.New("btrie: not a direction character")

// ParseStep maps 'l' or 'L' to Left and 'r' or 'R' to Right.
// Any other rune results in ErrNotAStep.
func ParseStep(r rune) (Step, error) {
	switch r {
	case 'l', 'L':
		return Left, nil
	case 'r', 'R':
		return Right, nil
	}
	return Left, ErrNotAStep
}

func (s Step) String() string {
	if s == Right {
		return "R"
	}
	return "L"
}

// Path is a sequence of steps, starting at the root of a trie.
// The empty path denotes the root itself.
type Path []Step

// ParsePath creates a path from a string of direction characters.
// Runes not accepted by ParseStep are dropped, thus ParsePath never fails.
// A string without any direction characters yields the empty path.
func ParsePath(s string) Path {
	path := make(Path, 0, len(s))
	for _, r := range s {
		if step, err := ParseStep(r); err == nil {
			path = append(path, step)
		}
	}
	return path
}

// ParseRunes is like ParsePath, operating on a slice of runes.
func ParseRunes(runes []rune) Path {
	path := make(Path, 0, len(runes))
	for _, r := range runes {
		step, err := ParseStep(r)
		if err != nil {
			continue
		}
		path = append(path, step)
	}
	return path
}

// String returns the path in a form suitable for ParsePath, e.g. "LRR".
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, step := range p {
		b.WriteString(step.String())
	}
	return b.String()
}
