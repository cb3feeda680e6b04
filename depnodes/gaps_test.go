package depnodes

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gapsOf carves [0, 300) off a fresh index and hands back the given ranges,
// leaving free ranges of length 5, 10 and 100 below a top starting at 140.
func gapsOf(t *testing.T) *gapIndex {
	g := newGapIndex(math.MaxInt)
	all, err := g.take(300)
	require.NoError(t, err)
	require.Equal(t, Range{0, 300}, all)

	g.release(Range{0, 5})
	g.release(Range{10, 20})
	g.release(Range{30, 130})
	g.release(Range{140, 300})
	return g
}

func TestGapBestFit(t *testing.T) {
	g := gapsOf(t)
	assert.Equal(t, []Range{{0, 5}, {10, 20}, {30, 130}}, g.ranges())
	assert.Equal(t, Range{140, math.MaxInt}, g.top())

	r, err := g.take(7)
	require.NoError(t, err)
	assert.Equal(t, Range{10, 17}, r)
	assert.Equal(t, []Range{{0, 5}, {17, 20}, {30, 130}}, g.ranges())
}

func TestGapExactFitAndTop(t *testing.T) {
	g := gapsOf(t)

	r, err := g.take(5)
	require.NoError(t, err)
	assert.Equal(t, Range{0, 5}, r)

	r, err = g.take(100)
	require.NoError(t, err)
	assert.Equal(t, Range{30, 130}, r)

	r, err = g.take(101)
	require.NoError(t, err)
	assert.Equal(t, Range{140, 241}, r)
	assert.Equal(t, Range{241, math.MaxInt}, g.top())

	assert.Equal(t, []Range{{10, 20}}, g.ranges())
	assert.Equal(t, 1, g.count())
}

func TestGapReleaseCoalesces(t *testing.T) {
	g := gapsOf(t)

	// bridges [0,5) and [10,20)
	g.release(Range{5, 10})
	assert.Equal(t, []Range{{0, 20}, {30, 130}}, g.ranges())

	// bridges everything into the top
	g.release(Range{20, 30})
	g.release(Range{130, 140})
	assert.Empty(t, g.ranges())
	assert.Equal(t, Range{0, math.MaxInt}, g.top())
}

func TestGapLimit(t *testing.T) {
	g := newGapIndex(10)

	r, err := g.take(6)
	require.NoError(t, err)
	assert.Equal(t, Range{0, 6}, r)

	_, err = g.take(5)
	assert.ErrorIs(t, err, ErrOutOfSpace)

	r, err = g.take(4)
	require.NoError(t, err)
	assert.Equal(t, Range{6, 10}, r)
	assert.Equal(t, Range{10, 10}, g.top())

	_, err = g.take(1)
	assert.ErrorIs(t, err, ErrOutOfSpace)

	g.release(Range{6, 10})
	assert.Equal(t, Range{6, 10}, g.top())
	assert.Empty(t, g.ranges())
}

func TestGapProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	sizes := gen.SliceOfN(24, gen.IntRange(1, 16))

	properties.Property("take picks the smallest sufficient range", prop.ForAll(
		func(carve []int, requests []int) bool {
			g := newGapIndex(math.MaxInt)
			var taken []Range
			for _, n := range carve {
				r, err := g.take(n)
				if err != nil {
					return false
				}
				taken = append(taken, r)
			}
			for i := 0; i < len(taken); i += 2 {
				g.release(taken[i])
			}

			for _, n := range requests {
				want := g.top().Low
				best := math.MaxInt
				for _, free := range g.ranges() {
					if free.Len() >= n && free.Len() < best {
						best, want = free.Len(), free.Low
					}
				}
				r, err := g.take(n)
				if err != nil || r.Low != want || r.Len() != n {
					return false
				}
			}
			return true
		},
		sizes, sizes,
	))

	properties.Property("free ranges stay disjoint and below the top", prop.ForAll(
		func(carve []int) bool {
			g := newGapIndex(math.MaxInt)
			var taken []Range
			for _, n := range carve {
				r, _ := g.take(n)
				taken = append(taken, r)
			}
			for i := len(taken) - 1; i >= 0; i -= 3 {
				g.release(taken[i])
			}

			top := g.top()
			prev := Range{}
			for _, r := range g.ranges() {
				if r.Low < prev.High || r.High >= top.Low || r.Len() <= 0 {
					return false
				}
				// neighbours would have been merged
				if r.Low == prev.High && prev.Len() > 0 {
					return false
				}
				prev = r
			}
			return true
		},
		sizes,
	))

	properties.TestingRun(t)
}
