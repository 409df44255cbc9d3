// Package context 提供应用级上下文：配置、日志与承载配置的 viper 实例
package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/jprof/pkg/configs"
	log "github.com/yeisme/jprof/pkg/utils/log"
)

// JprofContext 应用上下文，在命令执行前初始化一次并贯穿整个运行
type JprofContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Logger log.Logger      // 日志记录器
	Viper  *viper.Viper    // 配置实例，config 子命令需要访问原始数据
}

// InitJprofContext 加载配置并初始化日志
// debug/verbose/quiet 标志覆盖配置文件中的对应项
func InitJprofContext(configPath string, debug, verbose, quiet bool) (*JprofContext, error) {
	ctx := context.Background()

	config, v, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if debug {
		config.App.Debug = true
	}
	if verbose {
		config.App.Verbose = true
	}
	if quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &JprofContext{
		Context: ctx,
		Config:  config,
		Logger:  logger,
		Viper:   v,
	}, nil
}
