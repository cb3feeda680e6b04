package depnodes

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
	"github.com/ryszard/goskiplist/skiplist"
)

// Range is a half-open run of store slots [Low, High).
type Range struct {
	Low, High int
}

func (r Range) Len() int {
	return r.High - r.Low
}

// gapIndex tracks the unused ranges of a store. Ranges are kept in a skip list
// ordered by length so a best fit is a single seek; the top range, the one
// running up to the store limit, always sorts last and so satisfies any
// request the finite ranges cannot.
type gapIndex struct {
	mu     sync.Mutex
	limit  int
	sorted *skiplist.SkipList
	byLow  map[int]int
	byHigh map[int]int
}

func newGapIndex(limit int) *gapIndex {
	g := &gapIndex{
		limit:  limit,
		byLow:  map[int]int{},
		byHigh: map[int]int{},
	}
	g.sorted = skiplist.NewCustomMap(func(l, r interface{}) bool {
		return g.less(l.(Range), r.(Range))
	})
	g.insert(Range{0, limit})
	return g
}

func (g *gapIndex) isTop(r Range) bool {
	return r.High == g.limit
}

func (g *gapIndex) less(a, b Range) bool {
	switch {
	case g.isTop(a):
		return false
	case g.isTop(b):
		return true
	case a.Len() != b.Len():
		return a.Len() < b.Len()
	default:
		return a.Low < b.Low
	}
}

func (g *gapIndex) insert(r Range) {
	g.sorted.Set(r, struct{}{})
	g.byLow[r.Low] = r.High
	g.byHigh[r.High] = r.Low
}

func (g *gapIndex) remove(r Range) {
	g.sorted.Delete(r)
	delete(g.byLow, r.Low)
	delete(g.byHigh, r.High)
}

// take reserves exactly n slots from the smallest range that can hold them.
// Whatever is left of that range goes straight back into the index.
func (g *gapIndex) take(n int) (Range, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// shorter than every real range of length n, and never the top
	probe := Range{Low: -n, High: 0}
	it := g.sorted.Seek(probe)
	if it == nil {
		return Range{}, errors.Wrapf(ErrOutOfSpace, "no range for %d slots", n)
	}
	r := it.Key().(Range)
	it.Close()
	if r.Len() < n {
		return Range{}, errors.Wrapf(ErrOutOfSpace, "need %d slots, %d left before limit %d", n, r.Len(), g.limit)
	}

	g.remove(r)
	if r.Len() > n || g.isTop(r) {
		g.insert(Range{r.Low + n, r.High})
	}
	return Range{r.Low, r.Low + n}, nil
}

// release hands a range back, merging it with any free neighbours.
func (g *gapIndex) release(r Range) {
	if r.Len() <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if low, ok := g.byHigh[r.Low]; ok {
		g.remove(Range{low, r.Low})
		r.Low = low
	}
	if high, ok := g.byLow[r.High]; ok {
		g.remove(Range{r.High, high})
		r.High = high
	}
	g.insert(r)
}

// top returns the range that runs up to the limit.
func (g *gapIndex) top() Range {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Range{g.byHigh[g.limit], g.limit}
}

// ranges lists the finite free ranges ordered by position.
func (g *gapIndex) ranges() []Range {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Range, 0, len(g.byLow))
	for low, high := range g.byLow {
		if high != g.limit {
			out = append(out, Range{low, high})
		}
	}
	slices.SortFunc(out, func(a, b Range) int {
		return a.Low - b.Low
	})
	return out
}

// count is the number of free ranges below the top.
func (g *gapIndex) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sorted.Len() - 1
}
