package profile

import (
	"fmt"
	"io"
)

// ArrayAggregator 吸收 JSON 数组
// 所有数组实例的所有元素共享同一个 ValueAggregator：
// 同一路径下的元素不区分来自哪个数组、哪个下标，合并成一个分布
type ArrayAggregator struct {
	elems  *ValueAggregator
	minLen int
	maxLen int
	seen   bool
}

func newArrayAggregator(opts Options) *ArrayAggregator {
	return &ArrayAggregator{elems: NewValueAggregator(opts)}
}

// Add 吸收一个数组，更新长度范围并把元素按序喂给共享的元素聚合器
func (aa *ArrayAggregator) Add(v any) {
	a := v.([]any)
	n := len(a)
	if !aa.seen {
		aa.minLen, aa.maxLen = n, n
		aa.seen = true
	} else {
		if n < aa.minLen {
			aa.minLen = n
		}
		if n > aa.maxLen {
			aa.maxLen = n
		}
	}

	for _, e := range a {
		aa.elems.Add(e)
	}
}

// Elems 返回共享的元素聚合器
func (aa *ArrayAggregator) Elems() *ValueAggregator {
	return aa.elems
}

// Render 输出长度范围，如 "3 items" 或 "2…5 items"
func (aa *ArrayAggregator) Render() string {
	return rangeLabel(aa.minLen, aa.maxLen) + " items"
}

// PrintTree 打印 "<prefix>[]" 一行并递归进元素聚合器
func (aa *ArrayAggregator) PrintTree(w io.Writer, prefix string) {
	path := prefix + "[]"
	fmt.Fprintf(w, "%s: %s\n", path, aa.elems.Render())
	aa.elems.PrintTree(w, path)
}
