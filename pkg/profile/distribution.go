package profile

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/yeisme/jprof/pkg/style"
)

// renderDistribution 渲染 value→count 多重集的分布摘要
//
//   - 只有一个不同值时直接渲染该值
//   - 否则按（次数降序，值升序）排序，取前 maxShow 个，渲染为 "count×value"
//   - 有剩余时追加 "rest×…" 桶，并加上 "distinct←|min…max|: " 前缀，
//     min/max 取全部观测值的全局范围，不只是展示出来的部分
func renderDistribution[T cmp.Ordered](counts map[T]int, maxShow int, format func(T) string) string {
	if len(counts) == 1 {
		for v := range counts {
			return format(v)
		}
	}

	type pair struct {
		v T
		c int
	}
	pairs := make([]pair, 0, len(counts))
	for v, c := range counts {
		pairs = append(pairs, pair{v, c})
	}
	slices.SortFunc(pairs, func(a, b pair) int {
		if a.c != b.c {
			return cmp.Compare(b.c, a.c)
		}
		return cmp.Compare(a.v, b.v)
	})

	shown := min(maxShow, len(pairs))
	parts := make([]string, 0, shown+1)
	for _, p := range pairs[:shown] {
		parts = append(parts, style.Cnt(p.c)+"×"+format(p.v))
	}

	rest := 0
	for _, p := range pairs[shown:] {
		rest += p.c
	}
	if rest == 0 {
		return strings.Join(parts, ", ")
	}
	parts = append(parts, style.Cnt(rest)+"×…")

	lo, hi := pairs[0].v, pairs[0].v
	for _, p := range pairs[1:] {
		if p.v < lo {
			lo = p.v
		}
		if p.v > hi {
			hi = p.v
		}
	}
	return fmt.Sprintf("%s←|%s…%s|: %s",
		style.Cnt(len(pairs)), format(lo), format(hi), strings.Join(parts, ", "))
}
