package profile

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Kind 表示一个已解码 JSON 值的运行时类型标签
type Kind string

const (
	KindMap    Kind = "map"
	KindArray  Kind = "array"
	KindString Kind = "str"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindNull   Kind = "null"
)

// kindOf 对解码后的值进行分类
// 解码器（UseNumber 模式）只会产生这几种 Go 类型，
// 遇到其他类型说明调用方绕过了解码器，属于编程错误，直接 panic
func kindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case map[string]any:
		return KindMap
	case []any:
		return KindArray
	case string:
		return KindString
	case bool:
		return KindBool
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return KindInt
		}
		return KindFloat
	case int:
		return KindInt
	case int64:
		return KindInt
	case float64:
		return KindFloat
	default:
		panic(fmt.Sprintf("profile: unsupported value type %T", v))
	}
}

// toInt64 把整数类值归一化为 int64
func toInt64(v any) int64 {
	switch x := v.(type) {
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			panic(fmt.Sprintf("profile: %q is not an integer", x.String()))
		}
		return n
	case int:
		return int64(x)
	case int64:
		return x
	default:
		panic(fmt.Sprintf("profile: unsupported integer type %T", v))
	}
}

// toFloat64 把浮点类值归一化为 float64
func toFloat64(v any) float64 {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			panic(fmt.Sprintf("profile: %q is not a number", x.String()))
		}
		return f
	case float64:
		return x
	default:
		panic(fmt.Sprintf("profile: unsupported float type %T", v))
	}
}
