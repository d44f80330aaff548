/*
Package morose converts between plain text and Morse code.

Description

Morse code represents letters and digits as sequences of two symbols, dots
and dashes. Within this package, Morse text is written with one code per
letter, letters separated by whitespace and words separated by a slash:

	.- -... -.-. / -.. .

is the encoding of "ABC DE". For decoding, a backslash is accepted as a word
separator as well.

Typical Usage

	morse := morose.Encode("Hello World")  // => ".... . .-.. .-.. --- / .-- --- .-. .-.. -.."
	text := morose.Decode(morse)           // => "HELLO WORLD"

Clients wishing to control the lifetime of the code tables may create a Codec
of their own:

	codec := morose.NewCodec(lookup.NewTables())
	fmt.Println(codec.Encode("SOS"))

Leniency

Conversion never fails. Characters without a Morse representation are
dropped when encoding, and codes not denoting a letter or digit are dropped
when decoding. Input text is upper-cased using full Unicode case mapping
beforehand, thus "ß" is encoded as "... ...".

Contents

Sub-package btrie provides the binary trie used to invert the code table,
sub-package lookup provides the code tables themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package morose

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
