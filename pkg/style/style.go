// Package style 提供报告输出的终端样式化功能
package style

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// 报告配色，全部使用 ANSI-256 色号，方便在不同终端下保持一致
const (
	// 对象键名
	ColorKey = lipgloss.Color("2")

	// 类型标签（map/array/str/...）
	ColorType = lipgloss.Color("129")

	// 字符串值
	ColorString = lipgloss.Color("88")

	// 数值
	ColorNumber = lipgloss.Color("150")

	// 计数器（出现次数、键数/长度范围）
	ColorCounter = lipgloss.Color("14")

	// 布尔值
	ColorBoolean = lipgloss.Color("11")

	// JSON 高亮颜色（config list 等处使用）
	ColorJSONKey    = lipgloss.Color("39")
	ColorJSONNumber = lipgloss.Color("186")
	ColorJSONBool   = lipgloss.Color("179")
	ColorJSONNull   = lipgloss.Color("61")
	ColorJSONPunct  = lipgloss.Color("244")
)

var (
	keyStyle     = lipgloss.NewStyle().Foreground(ColorKey)
	typeStyle    = lipgloss.NewStyle().Foreground(ColorType)
	stringStyle  = lipgloss.NewStyle().Foreground(ColorString)
	numberStyle  = lipgloss.NewStyle().Foreground(ColorNumber)
	counterStyle = lipgloss.NewStyle().Foreground(ColorCounter)
	booleanStyle = lipgloss.NewStyle().Foreground(ColorBoolean)

	// 颜色开关，默认关闭；由 CLI 在确认输出目标是终端后打开
	enabled bool
)

// EnableColor 打开颜色输出
func EnableColor() { enabled = true }

// DisableColor 关闭颜色输出，之后所有样式函数原样返回输入
func DisableColor() { enabled = false }

// ColorEnabled 返回当前颜色开关状态
func ColorEnabled() bool { return enabled }

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Key 渲染对象键名
func Key(s string) string { return render(keyStyle, s) }

// Type 渲染类型标签
func Type(s string) string { return render(typeStyle, s) }

// Str 渲染字符串值（入参应当已经带引号/转义）
func Str(s string) string { return render(stringStyle, s) }

// Num 渲染数值字面量
func Num(s string) string { return render(numberStyle, s) }

// Cnt 渲染计数
func Cnt(n int) string { return render(counterStyle, strconv.Itoa(n)) }

// Bool 渲染布尔字面量
func Bool(v bool) string {
	if v {
		return render(booleanStyle, "true")
	}
	return render(booleanStyle, "false")
}
