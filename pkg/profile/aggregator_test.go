package profile

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// decode is a test helper turning a JSON document into the value shape
// the profiler consumes (UseNumber mode).
func decode(t *testing.T, doc string) any {
	t.Helper()
	v, err := decodeLine([]byte(doc))
	if err != nil {
		t.Fatalf("decode %q: %v", doc, err)
	}
	return v
}

func TestValueAggregatorDispatch(t *testing.T) {
	va := NewValueAggregator(DefaultOptions())

	va.Add(decode(t, `{"a": 1}`))
	va.Add(decode(t, `[1, 2]`))
	va.Add(decode(t, `"hello"`))
	va.Add(decode(t, `3`))
	va.Add(decode(t, `3.5`))
	va.Add(decode(t, `true`))
	va.Add(decode(t, `null`))

	for _, k := range []Kind{KindMap, KindArray, KindString, KindInt, KindFloat, KindBool, KindNull} {
		require.Equal(t, 1, va.Count(k), "kind %s", k)
	}
	require.Equal(t, 7, va.Total())
}

func TestValueAggregatorCountsPerKind(t *testing.T) {
	va := NewValueAggregator(DefaultOptions())
	va.Add(decode(t, `1`))
	va.Add(decode(t, `2`))
	va.Add(decode(t, `"x"`))

	require.Equal(t, 2, va.Count(KindInt))
	require.Equal(t, 1, va.Count(KindString))
	require.Equal(t, 0, va.Count(KindBool))
}

func TestValueAggregatorRenderRarestFirst(t *testing.T) {
	va := NewValueAggregator(DefaultOptions())
	va.Add(decode(t, `1`))
	va.Add(decode(t, `1`))
	va.Add(decode(t, `"x"`))

	// The minority kind is listed first.
	require.Equal(t, `1×str("x"), 2×int(1)`, va.Render())
}

func TestValueAggregatorRenderTieBrokenByTag(t *testing.T) {
	va := NewValueAggregator(DefaultOptions())
	va.Add(decode(t, `true`))
	va.Add(decode(t, `null`))

	require.Equal(t, `1×bool(true), 1×null(null)`, va.Render())
}

func TestUnsupportedKindPanics(t *testing.T) {
	va := NewValueAggregator(DefaultOptions())
	require.Panics(t, func() {
		va.Add(struct{}{})
	})
}

func TestKindOfNumbers(t *testing.T) {
	require.Equal(t, KindInt, kindOf(json.Number("3")))
	require.Equal(t, KindFloat, kindOf(json.Number("3.5")))
	require.Equal(t, KindFloat, kindOf(json.Number("1e3")))
}

func TestRoundTripScenario(t *testing.T) {
	va := NewValueAggregator(DefaultOptions())
	va.Add(decode(t, `{"a": 1}`))
	va.Add(decode(t, `{"a": 2}`))
	va.Add(decode(t, `{"a": 2}`))

	require.Equal(t, 3, va.Count(KindMap))
	require.Equal(t, "3×map(1 keys)", va.Render())

	oa := va.kinds[KindMap].acc.(*ObjectAggregator)
	child := oa.Key("a")
	require.NotNil(t, child)
	require.Equal(t, 3, child.Count(KindInt))

	ia := child.kinds[KindInt].acc.(*IntAggregator)
	require.Equal(t, 2, ia.Distinct())
	require.Equal(t, 3, ia.Total())
	// Higher count first.
	require.Equal(t, "2×2, 1×1", ia.Render())
}

func TestRenderIdempotent(t *testing.T) {
	va := NewValueAggregator(DefaultOptions())
	va.Add(decode(t, `{"a": [1, "x", null]}`))
	va.Add(decode(t, `{"a": [2], "b": true}`))

	first := va.Render()
	var tree1, tree2 strings.Builder
	va.PrintTree(&tree1, "")
	second := va.Render()
	va.PrintTree(&tree2, "")

	require.Equal(t, first, second)
	require.Equal(t, tree1.String(), tree2.String())
}
