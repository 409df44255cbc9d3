package profile

import (
	"fmt"
	"io"
	"sort"

	"github.com/yeisme/jprof/pkg/style"
)

// ObjectAggregator 吸收 JSON 对象
// 记录键数范围，并为每个出现过的键维护一个独立的 ValueAggregator
type ObjectAggregator struct {
	opts   Options
	keys   map[string]*ValueAggregator
	minLen int
	maxLen int
	seen   bool
}

func newObjectAggregator(opts Options) *ObjectAggregator {
	return &ObjectAggregator{
		opts: opts,
		keys: make(map[string]*ValueAggregator),
	}
}

// Add 吸收一个对象，更新键数范围并把每个键值对分发给对应的子聚合器
func (oa *ObjectAggregator) Add(v any) {
	m := v.(map[string]any)
	n := len(m)
	if !oa.seen {
		oa.minLen, oa.maxLen = n, n
		oa.seen = true
	} else {
		if n < oa.minLen {
			oa.minLen = n
		}
		if n > oa.maxLen {
			oa.maxLen = n
		}
	}

	for k, val := range m {
		child, ok := oa.keys[k]
		if !ok {
			child = NewValueAggregator(oa.opts)
			oa.keys[k] = child
		}
		child.Add(val)
	}
}

// Key 返回某个键的子聚合器，不存在时返回 nil
func (oa *ObjectAggregator) Key(k string) *ValueAggregator {
	return oa.keys[k]
}

// Render 输出键数范围，如 "3 keys" 或 "2…5 keys"
func (oa *ObjectAggregator) Render() string {
	return rangeLabel(oa.minLen, oa.maxLen) + " keys"
}

// PrintTree 按键名字典序逐键打印，保证输出与输入键顺序无关
func (oa *ObjectAggregator) PrintTree(w io.Writer, prefix string) {
	names := make([]string, 0, len(oa.keys))
	for k := range oa.keys {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		child := oa.keys[k]
		path := prefix + "." + style.Key(k)
		fmt.Fprintf(w, "%s: %s\n", path, child.Render())
		child.PrintTree(w, path)
	}
}

// rangeLabel 渲染 min/max 范围，两端相等时只输出一个数
func rangeLabel(min, max int) string {
	if min == max {
		return style.Cnt(min)
	}
	return style.Cnt(min) + "…" + style.Cnt(max)
}
