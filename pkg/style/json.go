package style

import (
	"bytes"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
)

// PrintJSON 将任意值以缩进并高亮的方式输出到 writer
//
// 入参支持:
//   - string / []byte: 视为原始 JSON 文本，校验后缩进
//   - 其他任意 Go 值: 先用 json.MarshalIndent 编码
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// FormatJSON 返回缩进后的 JSON 字符串
func FormatJSON(v any) (string, error) {
	var src []byte
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		src = []byte(x)
	case []byte:
		src = x
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	}

	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	if out.Len() == 0 || out.Bytes()[out.Len()-1] != '\n' {
		_ = out.WriteByte('\n')
	}
	return out.String(), nil
}

// colorizeJSON 对已缩进的 JSON 文本做轻量 token 着色
// 只处理 JSON 语义 token，缩进与空白保持原样
func colorizeJSON(s string) string {
	if !enabled {
		return s
	}

	keySty := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strSty := stringStyle
	numSty := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	boolSty := lipgloss.NewStyle().Foreground(ColorJSONBool)
	nullSty := lipgloss.NewStyle().Foreground(ColorJSONNull)
	punctSty := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var b bytes.Buffer
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '"':
			j := endOfString(s, i)
			token := s[i:j]
			if nextNonSpace(s, j) == ':' {
				b.WriteString(keySty.Render(token))
			} else {
				b.WriteString(strSty.Render(token))
			}
			i = j
		case ch == '{' || ch == '}' || ch == '[' || ch == ']' || ch == ':' || ch == ',':
			b.WriteString(punctSty.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			j := endOfNumber(s, i)
			b.WriteString(numSty.Render(s[i:j]))
			i = j
		case wordAt(s, i, "true"):
			b.WriteString(boolSty.Render("true"))
			i += 4
		case wordAt(s, i, "false"):
			b.WriteString(boolSty.Render("false"))
			i += 5
		case wordAt(s, i, "null"):
			b.WriteString(nullSty.Render("null"))
			i += 4
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// endOfString 返回从 i（指向起始引号）开始的字符串 token 的结束位置（半开区间）
func endOfString(s string, i int) int {
	j := i + 1
	for j < len(s) {
		if s[j] == '\\' {
			j += 2
			continue
		}
		if s[j] == '"' {
			return j + 1
		}
		j++
	}
	return j
}

// endOfNumber 返回从 i 开始的数字 token 的结束位置（半开区间）
func endOfNumber(s string, i int) int {
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	for j < len(s) && (s[j] >= '0' && s[j] <= '9') {
		j++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && (s[j] >= '0' && s[j] <= '9') {
			j++
		}
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		j++
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		for j < len(s) && (s[j] >= '0' && s[j] <= '9') {
			j++
		}
	}
	return j
}

// nextNonSpace 返回 j 之后第一个非空白字符，没有则返回 0
func nextNonSpace(s string, j int) byte {
	for ; j < len(s); j++ {
		if !unicode.IsSpace(rune(s[j])) {
			return s[j]
		}
	}
	return 0
}

// wordAt 判断位置 i 处是否为独立的字面量 pref（前后不能是标识符字符）
func wordAt(s string, i int, pref string) bool {
	if i+len(pref) > len(s) || s[i:i+len(pref)] != pref {
		return false
	}
	if i > 0 && isIdent(rune(s[i-1])) {
		return false
	}
	if i+len(pref) < len(s) && isIdent(rune(s[i+len(pref)])) {
		return false
	}
	return true
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
