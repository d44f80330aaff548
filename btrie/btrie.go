package btrie

// Trie is a node of a binary trie. Every node may carry a value and owns at
// most two subtrees, one for each Step.
//
// The zero value is an empty node. A nil *Trie is treated as an absent
// subtree by all read-only methods.
type Trie[V any] struct {
	value    V
	hasValue bool
	left     *Trie[V]
	right    *Trie[V]
}

// New creates an inner node without a value.
// Either child may be nil.
func New[V any](left, right *Trie[V]) *Trie[V] {
	return &Trie[V]{left: left, right: right}
}

// NewWithValue creates a node carrying value, with optional children.
func NewWithValue[V any](value V, left, right *Trie[V]) *Trie[V] {
	return &Trie[V]{
		value:    value,
		hasValue: true,
		left:     left,
		right:    right,
	}
}

// Leaf creates a node carrying value, without children.
func Leaf[V any](value V) *Trie[V] {
	return NewWithValue[V](value, nil, nil)
}

// Value returns the value stored at this node, if any.
func (t *Trie[V]) Value() (V, bool) {
	if t == nil || !t.hasValue {
		var zero V
		return zero, false
	}
	return t.value, true
}

// Left returns the subtree for step Left, or nil.
func (t *Trie[V]) Left() *Trie[V] {
	if t == nil {
		return nil
	}
	return t.left
}

// Right returns the subtree for step Right, or nil.
func (t *Trie[V]) Right() *Trie[V] {
	if t == nil {
		return nil
	}
	return t.right
}

func (t *Trie[V]) child(step Step) *Trie[V] {
	if step == Right {
		return t.right
	}
	return t.left
}

// IsTerminal is true if t has no children. Whether t carries a value does
// not matter.
func (t *Trie[V]) IsTerminal() bool {
	return t == nil || (t.left == nil && t.right == nil)
}

// IsEmpty is true if t carries neither a value nor children.
func (t *Trie[V]) IsEmpty() bool {
	return t.IsTerminal() && (t == nil || !t.hasValue)
}

// Height returns the number of edges of the longest path from t to a
// terminal node. Empty nodes and leafs both have height 0.
func (t *Trie[V]) Height() int {
	if t.IsTerminal() {
		return 0
	}
	return 1 + max(t.left.Height(), t.right.Height())
}

// Get returns the value stored at path, starting from t.
// An empty path addresses t itself. If the path leads through an absent
// subtree or ends at a node without a value, Get returns false.
func (t *Trie[V]) Get(path Path) (V, bool) {
	node := t
	for _, step := range path {
		if node == nil {
			break
		}
		node = node.child(step)
	}
	return node.Value()
}

// Insert stores value at path, creating missing nodes on the way. A value
// already present at path is overwritten.
//
// Insert returns t, so calls may be chained.
func (t *Trie[V]) Insert(path Path, value V) *Trie[V] {
	node := t
	for _, step := range path {
		next := node.child(step)
		if next == nil {
			next = &Trie[V]{}
			if step == Right {
				node.right = next
			} else {
				node.left = next
			}
		}
		node = next
	}
	if node.hasValue {
		tracer().Debugf("btrie: overwriting value at %s", path)
	}
	node.value, node.hasValue = value, true
	return t
}
