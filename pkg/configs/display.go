package configs

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/viper"
)

// DisplayConfig 报告显示配置
type DisplayConfig struct {
	// Color 颜色模式: auto（输出到终端时着色）, always, never
	Color string `mapstructure:"color"`
}

func setDisplayConfigDefaults(v *viper.Viper) {
	v.SetDefault("display.color", "auto")
}

// ColorEnabled 根据颜色模式与输出目标判断是否着色
func (d DisplayConfig) ColorEnabled(out *os.File) bool {
	switch strings.ToLower(d.Color) {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(out.Fd())
	}
}
