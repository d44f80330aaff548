package morose

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// scratch holds the per-call state of a conversion. Casers are stateful and
// must not be shared between goroutines, therefore every conversion borrows
// its own.
type scratch struct {
	upper  cases.Caser
	out    bytes.Buffer
	pooled bool // borrowed from globalScratchPool
}

func newScratch() *scratch {
	return &scratch{upper: cases.Upper(language.Und)}
}

// scratchPool keeps casers and their output buffers alive between calls.
// Creating an upper-casing Caser builds its transformer tables, which costs
// far more than converting a typical short input.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool = newScratchPool()

// newScratchPool creates an unbounded pool which never blocks: a conversion
// always gets a scratch area, idle ones are re-used.
func newScratchPool() *scratchPool {
	ctx := context.Background()
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			s := newScratch()
			s.pooled = true
			return s, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.BlockWhenExhausted = false
	return &scratchPool{
		opool: pool.NewObjectPool(ctx, factory, config),
		ctx:   ctx,
	}
}

// borrow hands out a pooled scratch area. If the pool fails, an unpooled one
// is created instead.
func (sp *scratchPool) borrow() *scratch {
	o, err := sp.opool.BorrowObject(sp.ctx)
	if err != nil {
		CT().Errorf("morose: cannot borrow from pool: %v", err)
		return newScratch()
	}
	return o.(*scratch)
}

// release clears s and puts it back into the pool. Unpooled scratch areas
// are left to the garbage collector.
func (sp *scratchPool) release(s *scratch) {
	s.upper.Reset()
	s.out.Reset()
	if !s.pooled {
		return
	}
	if err := sp.opool.ReturnObject(sp.ctx, s); err != nil {
		CT().Errorf("morose: cannot return to pool: %v", err)
	}
}

func borrowScratch() *scratch {
	return globalScratchPool.borrow()
}

func (s *scratch) release() {
	globalScratchPool.release(s)
}
