// Package configs 提供应用程序配置管理功能
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Version string        `mapstructure:"version"`
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	Profile ProfileConfig `mapstructure:"profile"`
	Display DisplayConfig `mapstructure:"display"`
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setAppConfigDefaults(v)
	setLogConfigDefaults(v)
	setProfileConfigDefaults(v)
	setDisplayConfigDefaults(v)
}

var globalConfig *Config

// configSearchPaths 配置文件搜索路径
func configSearchPaths() []string {
	paths := []string{
		".",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/jprof",
	}
	if runtime.GOOS == "windows" {
		paths = append(paths, "$USERPROFILE", "$APPDATA/jprof")
	} else {
		paths = append(paths, "/etc/jprof")
	}
	return paths
}

// tryLoadConfigFiles 尝试按路径、文件名、扩展名的组合查找配置文件
func tryLoadConfigFiles(v *viper.Viper) bool {
	configNames := []string{".jprof", "jprof"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range configSearchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}
				if _, err := os.Stat(configFile); err == nil {
					v.SetConfigFile(configFile)
					return true
				}
			}
		}
	}
	return false
}

// LoadConfig 加载配置文件，返回配置结构和承载它的 viper 实例
func LoadConfig(configPath string) (*Config, *viper.Viper, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		tryLoadConfigFiles(v)
	}

	v.SetEnvPrefix("JPROF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 找不到配置文件时使用默认值，其他错误（格式错误等）直接失败
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && v.ConfigFileUsed() != "" {
			return nil, nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config: %w", err)
	}

	globalConfig = &config
	return &config, v, nil
}

// GetConfig 获取全局配置，未加载时按默认路径加载一次
func GetConfig() *Config {
	if globalConfig == nil {
		config, _, err := LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("load config: %v", err))
		}
		return config
	}
	return globalConfig
}
