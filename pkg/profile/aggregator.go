// Package profile 实现 JSON 流的结构与分布剖析核心
//
// 每个 Accumulator 只吸收一种类型的值；ValueAggregator 按运行时类型
// 把值分发给对应的 Accumulator，并在 map/array 处递归组合，
// 形成一棵与输入文档形状并集同构的聚合树
package profile

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yeisme/jprof/pkg/style"
)

// Accumulator 逐个吸收某一种类型的值，并能渲染已吸收内容的摘要
type Accumulator interface {
	// Add 吸收一个值；值的类型必须与本 Accumulator 匹配
	Add(v any)
	// Render 返回单行摘要
	Render() string
	// PrintTree 递归打印 prefix 之下的各条路径，叶子类型无事可做
	PrintTree(w io.Writer, prefix string)
}

// kindEntry 记录某一类型的子聚合器及其观测次数
type kindEntry struct {
	kind Kind
	acc  Accumulator
	n    int
}

// ValueAggregator 按类型分发的聚合入口
// 每种出现过的类型对应一个惰性创建的子聚合器，类型只增不减
type ValueAggregator struct {
	opts  Options
	kinds map[Kind]*kindEntry
}

// NewValueAggregator 创建一个空的聚合器
func NewValueAggregator(opts Options) *ValueAggregator {
	return &ValueAggregator{
		opts:  opts.normalize(),
		kinds: make(map[Kind]*kindEntry),
	}
}

// newAccumulator 类型到实现的静态表
func newAccumulator(k Kind, opts Options) Accumulator {
	switch k {
	case KindMap:
		return newObjectAggregator(opts)
	case KindArray:
		return newArrayAggregator(opts)
	case KindString:
		return newStringAggregator(opts)
	case KindInt:
		return newIntAggregator(opts)
	case KindFloat:
		return newFloatAggregator(opts)
	case KindBool:
		return newBoolAggregator()
	case KindNull:
		return newNullAggregator()
	default:
		panic(fmt.Sprintf("profile: no accumulator for kind %q", k))
	}
}

// Add 分类并分发一个已解码的值
func (va *ValueAggregator) Add(v any) {
	k := kindOf(v)
	e, ok := va.kinds[k]
	if !ok {
		e = &kindEntry{kind: k, acc: newAccumulator(k, va.opts)}
		va.kinds[k] = e
	}
	e.acc.Add(v)
	e.n++
}

// Count 返回某一类型的观测次数，未出现过返回 0
func (va *ValueAggregator) Count(k Kind) int {
	if e, ok := va.kinds[k]; ok {
		return e.n
	}
	return 0
}

// Total 返回所有类型的观测次数之和
func (va *ValueAggregator) Total() int {
	total := 0
	for _, e := range va.kinds {
		total += e.n
	}
	return total
}

// sorted 返回确定性顺序的类型条目：观测次数升序，次数相同按标签升序
// 次数升序是有意为之，让少数/异常类型排在最前面
func (va *ValueAggregator) sorted() []*kindEntry {
	entries := make([]*kindEntry, 0, len(va.kinds))
	for _, e := range va.kinds {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].n != entries[j].n {
			return entries[i].n < entries[j].n
		}
		return entries[i].kind < entries[j].kind
	})
	return entries
}

// Render 输出形如 "3×map(2 keys), 1×null(null)" 的单行类型分布
func (va *ValueAggregator) Render() string {
	entries := va.sorted()
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s×%s(%s)",
			style.Cnt(e.n), style.Type(string(e.kind)), e.acc.Render()))
	}
	return strings.Join(parts, ", ")
}

// PrintTree 让每种类型的子聚合器在 prefix 下打印自己
func (va *ValueAggregator) PrintTree(w io.Writer, prefix string) {
	for _, e := range va.sorted() {
		e.acc.PrintTree(w, prefix)
	}
}
