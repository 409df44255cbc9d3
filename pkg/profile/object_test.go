package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectKeyCountRange(t *testing.T) {
	oa := newObjectAggregator(DefaultOptions())
	oa.Add(map[string]any{"a": "x"})

	require.Equal(t, "1 keys", oa.Render())

	oa.Add(map[string]any{"a": "x", "b": "y", "c": "z"})
	require.Equal(t, "1…3 keys", oa.Render())
	require.LessOrEqual(t, oa.minLen, oa.maxLen)
}

func TestObjectPrintTreeSortedKeys(t *testing.T) {
	oa := newObjectAggregator(DefaultOptions())
	// Insertion order deliberately not alphabetical.
	oa.Add(map[string]any{"zeta": true, "alpha": "x", "mid": "y"})

	var b strings.Builder
	oa.PrintTree(&b, "")
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	require.Equal(t, []string{
		`.alpha: 1×str("x")`,
		`.mid: 1×str("y")`,
		`.zeta: 1×bool(true)`,
	}, lines)
}

func TestObjectNestedPaths(t *testing.T) {
	oa := newObjectAggregator(DefaultOptions())
	oa.Add(map[string]any{"outer": map[string]any{"inner": "v"}})

	var b strings.Builder
	oa.PrintTree(&b, "")

	require.Equal(t, ".outer: 1×map(1 keys)\n.outer.inner: 1×str(\"v\")\n", b.String())
}

func TestArrayLengthRangeAndPooling(t *testing.T) {
	aa := newArrayAggregator(DefaultOptions())
	aa.Add([]any{int64(1), int64(2), int64(3)})
	aa.Add([]any{int64(4), int64(5)})

	require.Equal(t, 2, aa.minLen)
	require.Equal(t, 3, aa.maxLen)
	require.Equal(t, "2…3 items", aa.Render())

	// Elements of all array instances pool into one aggregator.
	require.Equal(t, 5, aa.Elems().Count(KindInt))
	ia := aa.Elems().kinds[KindInt].acc.(*IntAggregator)
	require.Equal(t, 5, ia.Total())
	require.Equal(t, 5, ia.Distinct())
}

func TestArrayPrintTree(t *testing.T) {
	aa := newArrayAggregator(DefaultOptions())
	aa.Add([]any{"a", "a"})

	var b strings.Builder
	aa.PrintTree(&b, ".tags")

	require.Equal(t, ".tags[]: 2×str(\"a\")\n", b.String())
}

func TestArrayElementAggregatorShared(t *testing.T) {
	aa := newArrayAggregator(DefaultOptions())
	aa.Add([]any{"x"})
	elems := aa.Elems()
	aa.Add([]any{"y"})

	if aa.Elems() != elems {
		t.Fatal("element aggregator must not be recreated per add")
	}
}
