package profile

import (
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"github.com/yeisme/jprof/pkg/style"
)

// StringAggregator 吸收字符串值，维护 value→count 多重集
type StringAggregator struct {
	opts   Options
	values map[string]int
}

func newStringAggregator(opts Options) *StringAggregator {
	return &StringAggregator{opts: opts, values: make(map[string]int)}
}

// Add 记录一个字符串
func (sa *StringAggregator) Add(v any) {
	sa.values[v.(string)]++
}

// Total 返回已记录的值总数（含重复）
func (sa *StringAggregator) Total() int {
	return totalOf(sa.values)
}

// Distinct 返回不同值的个数
func (sa *StringAggregator) Distinct() int {
	return len(sa.values)
}

// Render 输出 top-N 分布摘要
func (sa *StringAggregator) Render() string {
	return renderDistribution(sa.values, sa.opts.MaxValuesToShow, sa.format)
}

// PrintTree 叶子类型，无下级路径
func (sa *StringAggregator) PrintTree(io.Writer, string) {}

// format 渲染带引号转义的字符串；显示宽度超过 MaxStringLength 时
// 截断到该宽度，省略号放在闭引号之前，保证始终恰好一个闭引号
func (sa *StringAggregator) format(s string) string {
	if runewidth.StringWidth(s) > sa.opts.MaxStringLength {
		q := jsonQuote(runewidth.Truncate(s, sa.opts.MaxStringLength, ""))
		return style.Str(q[:len(q)-1]) + "…" + style.Str(`"`)
	}
	return style.Str(jsonQuote(s))
}

// jsonQuote 返回带双引号的 JSON 转义字符串
func jsonQuote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}

// IntAggregator 吸收整数值
type IntAggregator struct {
	opts   Options
	values map[int64]int
}

func newIntAggregator(opts Options) *IntAggregator {
	return &IntAggregator{opts: opts, values: make(map[int64]int)}
}

// Add 记录一个整数
func (ia *IntAggregator) Add(v any) {
	ia.values[toInt64(v)]++
}

// Total 返回已记录的值总数（含重复）
func (ia *IntAggregator) Total() int {
	return totalOf(ia.values)
}

// Distinct 返回不同值的个数
func (ia *IntAggregator) Distinct() int {
	return len(ia.values)
}

// Render 输出 top-N 分布摘要
func (ia *IntAggregator) Render() string {
	return renderDistribution(ia.values, ia.opts.MaxValuesToShow, func(n int64) string {
		return style.Num(strconv.FormatInt(n, 10))
	})
}

// PrintTree 叶子类型，无下级路径
func (ia *IntAggregator) PrintTree(io.Writer, string) {}

// FloatAggregator 吸收浮点值
type FloatAggregator struct {
	opts   Options
	values map[float64]int
}

func newFloatAggregator(opts Options) *FloatAggregator {
	return &FloatAggregator{opts: opts, values: make(map[float64]int)}
}

// Add 记录一个浮点数
func (fa *FloatAggregator) Add(v any) {
	fa.values[toFloat64(v)]++
}

// Total 返回已记录的值总数（含重复）
func (fa *FloatAggregator) Total() int {
	return totalOf(fa.values)
}

// Distinct 返回不同值的个数
func (fa *FloatAggregator) Distinct() int {
	return len(fa.values)
}

// Render 输出 top-N 分布摘要
func (fa *FloatAggregator) Render() string {
	return renderDistribution(fa.values, fa.opts.MaxValuesToShow, func(f float64) string {
		return style.Num(strconv.FormatFloat(f, 'g', -1, 64))
	})
}

// PrintTree 叶子类型，无下级路径
func (fa *FloatAggregator) PrintTree(io.Writer, string) {}

func totalOf[T comparable](counts map[T]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
