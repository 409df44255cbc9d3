package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func stringAggWith(values ...string) *StringAggregator {
	sa := newStringAggregator(DefaultOptions())
	for _, v := range values {
		sa.Add(v)
	}
	return sa
}

func TestDistributionSingleValue(t *testing.T) {
	sa := stringAggWith("only", "only", "only")
	require.Equal(t, `"only"`, sa.Render())

	ia := newIntAggregator(DefaultOptions())
	ia.Add(int64(42))
	ia.Add(int64(42))
	require.Equal(t, "42", ia.Render())
}

func TestDistributionTopNNoRemainder(t *testing.T) {
	// Three distinct values fit within the top-3, so no range prefix.
	sa := stringAggWith("a", "b", "b", "c", "c", "c")
	require.Equal(t, `3×"c", 2×"b", 1×"a"`, sa.Render())
}

func TestDistributionRemainderAndRange(t *testing.T) {
	ia := newIntAggregator(DefaultOptions())
	for v, c := range map[int64]int{3: 5, 7: 2, 1: 1, 99: 1} {
		for range c {
			ia.Add(v)
		}
	}

	// 4 distinct values, global range 1…99, remainder bucket of 1.
	require.Equal(t, "4←|1…99|: 5×3, 2×7, 1×1, 1×…", ia.Render())
}

func TestDistributionTieBrokenByValue(t *testing.T) {
	ia := newIntAggregator(DefaultOptions())
	for _, v := range []int64{5, 2, 9} {
		ia.Add(v)
	}
	require.Equal(t, "1×2, 1×5, 1×9", ia.Render())
}

func TestDistributionOrderIndependent(t *testing.T) {
	a := stringAggWith("x", "y", "y", "z", "z", "z", "w")
	b := stringAggWith("z", "w", "y", "z", "x", "y", "z")
	require.Equal(t, a.Render(), b.Render())
}

func TestDistributionCustomTopN(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxValuesToShow = 1
	sa := newStringAggregator(opts)
	sa.Add("a")
	sa.Add("a")
	sa.Add("b")

	require.Equal(t, `2←|"a"…"b"|: 2×"a", 1×…`, sa.Render())
}

func TestStringTruncation(t *testing.T) {
	long := strings.Repeat("a", 50)
	sa := stringAggWith(long, long)

	got := sa.Render()
	require.True(t, strings.HasSuffix(got, `…"`), "got %q", got)
	require.Equal(t, 1, strings.Count(got, `…`))
	// Opening quote, 36 payload runes, ellipsis, closing quote.
	require.Equal(t, 39, len([]rune(got)))
	require.Equal(t, `"`+strings.Repeat("a", 36), got[:37])
}

func TestStringShortNotTruncated(t *testing.T) {
	sa := stringAggWith(strings.Repeat("b", 36))
	require.Equal(t, `"`+strings.Repeat("b", 36)+`"`, sa.Render())
}

func TestStringEscaped(t *testing.T) {
	sa := stringAggWith("line\nbreak")
	require.Equal(t, `"line\nbreak"`, sa.Render())
}

func TestFloatRendering(t *testing.T) {
	fa := newFloatAggregator(DefaultOptions())
	fa.Add(1.5)
	fa.Add(1.5)
	fa.Add(2.25)

	require.Equal(t, "2×1.5, 1×2.25", fa.Render())
}

func TestLeafTotalsMatchAddCalls(t *testing.T) {
	sa := stringAggWith("p", "q", "p")
	require.Equal(t, 3, sa.Total())

	fa := newFloatAggregator(DefaultOptions())
	fa.Add(0.5)
	require.Equal(t, 1, fa.Total())

	ba := newBoolAggregator()
	ba.Add(true)
	ba.Add(false)
	ba.Add(true)
	require.Equal(t, 3, ba.Total())

	na := newNullAggregator()
	na.Add(nil)
	na.Add(nil)
	require.Equal(t, 2, na.Total())
}
