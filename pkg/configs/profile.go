package configs

import (
	"github.com/spf13/viper"
)

// ProfileConfig 剖析行为配置
type ProfileConfig struct {
	MaxValuesToShow int  `mapstructure:"max_values_to_show"` // 分布摘要展示的 top-N 个数
	MaxStringLength int  `mapstructure:"max_string_length"`  // 字符串截断宽度
	SkipInvalid     bool `mapstructure:"skip_invalid"`       // 非法 JSON 行跳过并告警，而不是整体失败
}

func setProfileConfigDefaults(v *viper.Viper) {
	v.SetDefault("profile.max_values_to_show", 3)
	v.SetDefault("profile.max_string_length", 36)
	v.SetDefault("profile.skip_invalid", false)
}
