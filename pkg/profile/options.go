package profile

const (
	// DefaultMaxValuesToShow 分布摘要中最多展示的高频值个数
	DefaultMaxValuesToShow = 3
	// DefaultMaxStringLength 字符串渲染的最大显示宽度，超出部分截断
	DefaultMaxStringLength = 36
)

// Options 控制聚合树的摄取与渲染行为
type Options struct {
	MaxValuesToShow int  // 分布摘要展示的 top-N 个数
	MaxStringLength int  // 字符串截断宽度（终端显示宽度，非字节数）
	SkipInvalid     bool // 非法 JSON 行是否跳过（默认整体失败）
}

// DefaultOptions 返回与原始行为一致的默认配置
func DefaultOptions() Options {
	return Options{
		MaxValuesToShow: DefaultMaxValuesToShow,
		MaxStringLength: DefaultMaxStringLength,
	}
}

// normalize 把非法的配置值回退到默认值
func (o Options) normalize() Options {
	if o.MaxValuesToShow <= 0 {
		o.MaxValuesToShow = DefaultMaxValuesToShow
	}
	if o.MaxStringLength <= 0 {
		o.MaxStringLength = DefaultMaxStringLength
	}
	return o
}
