package btrie

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

type frame[V any] struct {
	node *Trie[V]
	path Path
}

// Walk calls fn for every node of t carrying a value, together with the path
// leading to it. Nodes are visited depth-first, a node before its children and
// left subtrees before right subtrees. If fn returns false, Walk stops.
//
// Paths handed to fn are not shared and may be retained by the caller.
func (t *Trie[V]) Walk(fn func(Path, V) bool) {
	if t == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(frame[V]{node: t, path: Path{}})
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(frame[V])
		if v, ok := f.node.Value(); ok {
			if !fn(f.path, v) {
				return
			}
		}
		if f.node.right != nil {
			stack.Push(frame[V]{node: f.node.right, path: extend(f.path, Right)})
		}
		if f.node.left != nil {
			stack.Push(frame[V]{node: f.node.left, path: extend(f.path, Left)})
		}
	}
}

// Size returns the number of values stored in t.
func (t *Trie[V]) Size() int {
	n := 0
	t.Walk(func(Path, V) bool {
		n++
		return true
	})
	return n
}

func extend(p Path, step Step) Path {
	q := make(Path, len(p), len(p)+1)
	copy(q, p)
	return append(q, step)
}
