// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .tplstr.yaml / config.yaml 等（见 cfgm.DefaultPaths）
//  3. 环境变量 - 前缀 TPLSTR_
//  4. CLI flags - 显式设置的 flag
package config

import "github.com/lwmacct/251208-go-pkg-tplstr/pkg/tplstr"

// AppName 应用名称，用于配置文件搜索路径。
const AppName = "tplstr"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "TPLSTR_"

// Config 应用配置。
type Config struct {
	Template TemplateConfig `json:"template" desc:"模板解析配置"`
	Render   RenderConfig   `json:"render" desc:"渲染配置"`
	Log      LogConfig      `json:"log" desc:"日志配置"`
}

// TemplateConfig 模板解析配置。
type TemplateConfig struct {
	Open             string `json:"open" desc:"起始分隔符"`
	Close            string `json:"close" desc:"结束分隔符"`
	RequireKeys      bool   `json:"require-keys" desc:"模板必须包含占位符"`
	RejectDuplicates bool   `json:"reject-duplicates" desc:"拒绝重复 key"`
	RejectUnused     bool   `json:"reject-unused" desc:"拒绝模板未引用的参数"`
}

// RenderConfig 渲染配置。
type RenderConfig struct {
	ArgsFile string `json:"args-file" desc:"参数文件 (YAML/JSON)"`
	Output   string `json:"output" desc:"输出文件，空表示标准输出"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别 (debug/info/warn/error)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	defaults := tplstr.DefaultOpts()

	return Config{
		Template: TemplateConfig{
			Open:  defaults.Open,
			Close: defaults.Close,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Opts 将模板配置转换为解析选项。
func (c TemplateConfig) Opts() tplstr.Opts {
	opts := tplstr.DefaultOpts()
	opts.Open = c.Open
	opts.Close = c.Close
	opts.RequireKeys = c.RequireKeys
	opts.RejectDuplicateKeys = c.RejectDuplicates
	opts.RejectUnusedArgs = c.RejectUnused

	return opts
}
