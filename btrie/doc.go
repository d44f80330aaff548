/*
Package btrie implements a binary trie, i.e. a tree where every node has at most
two children, addressed by a path of steps “left” and “right”.

Every two-symbol alphabet maps onto such a path. For Morse code the dot is
interpreted as a step to the left and the dash as a step to the right:

	E  .      L
	T  -      R
	A  .-     L R
	N  -.     R L

Looking up a code therefore is a walk from the root of length equal to the
number of symbols of the code, without any hashing or table scans.

Paths

Paths are created from strings of direction characters:

	path := btrie.ParsePath("LRR")   // => [Left Right Right]

Parsing is permissive: characters other than 'l', 'L', 'r' and 'R' are
silently dropped. A string without any direction characters results in the
empty path, which denotes the root node of a trie.

Tries

The zero value of Trie is an empty node and ready to use:

	var root btrie.Trie[rune]
	root.Insert(btrie.ParsePath("L"), 'E').Insert(btrie.ParsePath("R"), 'T')
	r, ok := root.Get(btrie.ParsePath("R"))  // => 'T', true

Tries are suitable for write-once-read-many-times situations. They are not
safe for concurrent modification; after construction any number of
goroutines may read from a trie concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package btrie

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
