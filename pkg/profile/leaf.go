package profile

import (
	"fmt"
	"io"

	"github.com/yeisme/jprof/pkg/style"
)

// BoolAggregator 吸收布尔值，只维护 true/false 两个计数器
type BoolAggregator struct {
	trueN  int
	falseN int
}

func newBoolAggregator() *BoolAggregator {
	return &BoolAggregator{}
}

// Add 记录一个布尔值
func (ba *BoolAggregator) Add(v any) {
	if v.(bool) {
		ba.trueN++
	} else {
		ba.falseN++
	}
}

// Total 返回已记录的值总数
func (ba *BoolAggregator) Total() int {
	return ba.trueN + ba.falseN
}

// Render 只出现过一种取值时直接渲染该字面量，否则按 false 在前输出计数
func (ba *BoolAggregator) Render() string {
	if ba.falseN == 0 {
		return style.Bool(true)
	}
	if ba.trueN == 0 {
		return style.Bool(false)
	}
	return fmt.Sprintf("%s×%s, %s×%s",
		style.Cnt(ba.falseN), style.Bool(false),
		style.Cnt(ba.trueN), style.Bool(true))
}

// PrintTree 叶子类型，无下级路径
func (ba *BoolAggregator) PrintTree(io.Writer, string) {}

// NullAggregator 吸收 null，值本身没有信息量，只计数
type NullAggregator struct {
	n int
}

func newNullAggregator() *NullAggregator {
	return &NullAggregator{}
}

// Add 记录一次 null
func (na *NullAggregator) Add(any) {
	na.n++
}

// Total 返回已记录的次数
func (na *NullAggregator) Total() int {
	return na.n
}

// Render 恒定输出 "null"
func (na *NullAggregator) Render() string {
	return "null"
}

// PrintTree 叶子类型，无下级路径
func (na *NullAggregator) PrintTree(io.Writer, string) {}
