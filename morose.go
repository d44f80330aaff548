package morose

import (
	"strings"

	"github.com/npillmayer/morose/lookup"
)

// Codec converts text to Morse code and back, using a set of code tables.
// A Codec is safe for concurrent use.
type Codec struct {
	tables *lookup.Tables
}

// NewCodec creates a codec operating on tables. If tables is nil, a new set
// of tables is created.
func NewCodec(tables *lookup.Tables) *Codec {
	if tables == nil {
		tables = lookup.NewTables()
	}
	return &Codec{tables: tables}
}

var defaultCodec = NewCodec(nil)

// Encode converts text to Morse code using a process-wide default codec.
// See Codec.Encode.
func Encode(text string) string {
	return defaultCodec.Encode(text)
}

// Decode converts Morse code to text using a process-wide default codec.
// See Codec.Decode.
func Decode(morse string) string {
	return defaultCodec.Decode(morse)
}

// Encode converts text to Morse code. Text is upper-cased first; every
// letter, digit and whitespace character then contributes its code, separated
// from the preceding one by a single space. Whitespace is encoded as the word
// separator "/". Any other character is dropped.
func (c *Codec) Encode(text string) string {
	s := borrowScratch()
	defer s.release()
	for _, r := range s.upper.String(text) {
		code, ok := c.tables.Code(r)
		if !ok {
			CT().Debugf("morose: no code for %#U, dropped", r)
			continue
		}
		if s.out.Len() > 0 {
			s.out.WriteByte(' ')
		}
		s.out.WriteString(code)
	}
	return s.out.String()
}

// Decode converts Morse code to text. The input is split into words at
// every "/" or "\", and words are split into codes at runs of whitespace.
// Each code is translated to its letter or digit, codes without a match are
// dropped. Words are separated by a single space in the result.
func (c *Codec) Decode(morse string) string {
	s := borrowScratch()
	defer s.release()
	for i, word := range splitWords(morse) {
		if i > 0 {
			s.out.WriteByte(' ')
		}
		for _, code := range strings.Fields(word) {
			r, ok := c.tables.Letter(code)
			if !ok {
				CT().Debugf("morose: %q does not denote a letter, dropped", code)
				continue
			}
			s.out.WriteRune(r)
		}
	}
	return s.out.String()
}

// splitWords splits at both kinds of word separators. Empty words are kept.
func splitWords(morse string) []string {
	morse = strings.ReplaceAll(morse, lookup.AltWordSeparator, lookup.WordSeparator)
	return strings.Split(morse, lookup.WordSeparator)
}
