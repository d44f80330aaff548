package lookup

import (
	"strings"
	"sync"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/morose/btrie"
)

// Word separators in Morse text. Encoding always produces WordSeparator,
// decoding accepts both.
const (
	WordSeparator    = "/"
	AltWordSeparator = `\`
)

// Symbols of a Morse code string.
const (
	Dot  = '.'
	Dash = '-'
)

var letterToMorse = map[rune]string{
	'A': ".-",
	'B': "-...",
	'C': "-.-.",
	'D': "-..",
	'E': ".",
	'F': "..-.",
	'G': "--.",
	'H': "....",
	'I': "..",
	'J': ".---",
	'K': "-.-",
	'L': ".-..",
	'M': "--",
	'N': "-.",
	'O': "---",
	'P': ".--.",
	'Q': "--.-",
	'R': ".-.",
	'S': "...",
	'T': "-",
	'U': "..-",
	'V': "...-",
	'W': ".--",
	'X': "-..-",
	'Y': "-.--",
	'Z': "--..",
	//
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",
	'0': "-----",
	//
	' ':  WordSeparator,
	'\t': WordSeparator,
	'\n': WordSeparator,
}

// Entry is a pair of the forward table.
type Entry struct {
	Letter rune
	Code   string
}

// Entries returns all entries of the forward table, sorted by letter.
func Entries() []Entry {
	list := arraylist.New()
	for r, code := range letterToMorse {
		list.Add(Entry{Letter: r, Code: code})
	}
	list.Sort(func(a, b interface{}) int {
		return int(a.(Entry).Letter) - int(b.(Entry).Letter)
	})
	entries := make([]Entry, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		entries = append(entries, it.Value().(Entry))
	}
	return entries
}

var symbolsToSteps = strings.NewReplacer(string(Dot), "L", string(Dash), "R")

// PathOf interprets a Morse code as a path into a binary trie, where a dot
// is a step to the left and a dash a step to the right. Other characters are
// ignored, with the exception of direction characters as accepted by
// btrie.ParseStep.
func PathOf(code string) btrie.Path {
	return btrie.ParsePath(symbolsToSteps.Replace(code))
}

// Tables gives access to the forward table and to the reverse trie. The
// reverse trie is built on first use. Tables are safe for concurrent use.
//
// The zero value is ready to use.
type Tables struct {
	once    sync.Once
	reverse *btrie.Trie[rune]
}

// NewTables creates a new set of code tables.
func NewTables() *Tables {
	return &Tables{}
}

// Code returns the Morse code for an upper-case letter, digit or whitespace.
// Letters are expected in upper case; clients have to normalize them
// beforehand.
func (t *Tables) Code(r rune) (string, bool) {
	code, ok := letterToMorse[r]
	return code, ok
}

// Reverse returns the trie for decoding Morse codes. Clients must not modify
// it.
func (t *Tables) Reverse() *btrie.Trie[rune] {
	t.once.Do(func() {
		t.reverse = buildReverse()
	})
	return t.reverse
}

// Letter returns the letter or digit for a Morse code.
func (t *Tables) Letter(code string) (rune, bool) {
	return t.Reverse().Get(PathOf(code))
}

func buildReverse() *btrie.Trie[rune] {
	root := &btrie.Trie[rune]{}
	for _, e := range Entries() {
		if unicode.IsSpace(e.Letter) {
			continue
		}
		root.Insert(PathOf(e.Code), e.Letter)
	}
	CT().Infof("morse reverse trie built with %d codes, height %d", root.Size(), root.Height())
	return root
}
