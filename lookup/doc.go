/*
Package lookup holds the code tables for converting between text and Morse code.

The forward table maps upper-case letters A–Z, digits 0–9 and whitespace to
Morse code strings made of dots and dashes. Whitespace is mapped to the word
separator "/".

The reverse direction is a binary trie (see package btrie), where every code
is interpreted as a path of dots (left) and dashes (right). The reverse trie
is created on first use only and then shared for the lifetime of the process.

	tables := lookup.NewTables()
	code, _ := tables.Code('A')         // => ".-"
	letter, _ := tables.Letter("-.-.")  // => 'C'

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lookup

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
