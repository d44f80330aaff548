package morose

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScratchPoolRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	sp := newScratchPool()
	s := sp.borrow()
	if !s.pooled {
		t.Fatalf("expected scratch from pool to be marked as pooled")
	}
	if n := sp.opool.GetNumActive(); n != 1 {
		t.Errorf("expected 1 active scratch area, have %d", n)
	}
	s.out.WriteString("leftover")
	sp.release(s)
	if s.out.Len() != 0 {
		t.Errorf("expected released scratch area to be cleared")
	}
	if n := sp.opool.GetNumActive(); n != 0 {
		t.Errorf("expected no active scratch area after release, have %d", n)
	}
	if n := sp.opool.GetNumIdle(); n != 1 {
		t.Errorf("expected released scratch area to be idle, have %d idle", n)
	}
}

func TestUnpooledScratchIsNotReturned(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	sp := newScratchPool()
	s := newScratch()
	s.out.WriteString("leftover")
	sp.release(s)
	if s.out.Len() != 0 {
		t.Errorf("expected unpooled scratch area to be cleared")
	}
	if n := sp.opool.GetNumIdle(); n != 0 {
		t.Errorf("expected unpooled scratch area to stay out of the pool, have %d idle", n)
	}
	if n := sp.opool.GetNumActive(); n != 0 {
		t.Errorf("expected no active scratch areas, have %d", n)
	}
}
