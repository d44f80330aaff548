package lookup

import (
	"sync"
	"testing"

	"github.com/npillmayer/morose/btrie"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestForwardTable(t *testing.T) {
	var tables Tables
	for r, code := range map[rune]string{'A': ".-", 'E': ".", 'Z': "--..", '0': "-----", '5': ".....", ' ': "/", '\t': "/", '\n': "/"} {
		if c, ok := tables.Code(r); !ok || c != code {
			t.Errorf("expected code for %q to be %q, is %q (%v)", r, code, c, ok)
		}
	}
	for _, r := range "a.,?ß" {
		if c, ok := tables.Code(r); ok {
			t.Errorf("expected no code for %q, have %q", r, c)
		}
	}
	if len(Entries()) != 26+10+3 {
		t.Errorf("expected 39 entries in forward table, have %d", len(Entries()))
	}
}

func TestEntriesSorted(t *testing.T) {
	entries := Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Letter >= entries[i].Letter {
			t.Fatalf("entries not sorted at %d: %q >= %q", i, entries[i-1].Letter, entries[i].Letter)
		}
	}
	if entries[0].Letter != '\t' || entries[len(entries)-1].Letter != 'Z' {
		t.Errorf("unexpected first/last entries %q/%q", entries[0].Letter, entries[len(entries)-1].Letter)
	}
}

func TestPathOf(t *testing.T) {
	if p := PathOf(".-"); p.String() != "LR" {
		t.Errorf("expected .- to be LR, is %s", p)
	}
	if p := PathOf("..x--?"); p.String() != "LLRR" {
		t.Errorf("expected stray characters to be dropped, have %s", p)
	}
	if p := PathOf("r"); p.String() != "R" {
		t.Errorf("expected direction characters to pass, have %s", p)
	}
	if len(PathOf("")) != 0 {
		t.Errorf("expected empty code to yield root path")
	}
}

func TestReverseTrie(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tables := NewTables()
	reverse := tables.Reverse()
	if reverse.Size() != 36 {
		t.Errorf("expected 36 codes in reverse trie, have %d", reverse.Size())
	}
	if reverse.Height() != 5 {
		t.Errorf("expected reverse trie to have height 5, has %d", reverse.Height())
	}
	if _, ok := reverse.Value(); ok {
		t.Errorf("root of reverse trie should not carry a letter")
	}
	if tables.Reverse() != reverse {
		t.Errorf("expected reverse trie to be built only once")
	}
	for _, e := range Entries() {
		if e.Code == WordSeparator {
			continue
		}
		if r, ok := tables.Letter(e.Code); !ok || r != e.Letter {
			t.Errorf("expected %q to decode to %q, is %q (%v)", e.Code, e.Letter, r, ok)
		}
	}
	reverse.Walk(func(p btrie.Path, r rune) bool {
		if code, _ := tables.Code(r); PathOf(code).String() != p.String() {
			t.Errorf("letter %q stored at %s, but has code %q", r, p, code)
		}
		return true
	})
}

func TestLetterNotFound(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tables Tables
	for _, code := range []string{"", "/", "......", "-.-.-.-", "xyz"} {
		if r, ok := tables.Letter(code); ok {
			t.Errorf("expected no letter for %q, have %q", code, r)
		}
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tables := NewTables()
	const n = 16
	tries := make([]*btrie.Trie[rune], n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tries[i] = tables.Reverse()
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if tries[i] != tries[0] {
			t.Fatalf("goroutine %d saw a different reverse trie", i)
		}
	}
}
