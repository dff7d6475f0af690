// Package command 提供 render / keys 等子命令的公共部分。
package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-tplstr/internal/config"
	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/cfgm"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// TemplateFlags 模板解析相关 flags，名称与 template.* 配置 key 对应。
func TemplateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "template-open",
			Value: Defaults.Template.Open,
			Usage: "起始分隔符",
		},
		&cli.StringFlag{
			Name:  "template-close",
			Value: Defaults.Template.Close,
			Usage: "结束分隔符",
		},
		&cli.BoolFlag{
			Name:  "template-require-keys",
			Usage: "模板必须包含占位符",
		},
		&cli.BoolFlag{
			Name:  "template-reject-duplicates",
			Usage: "拒绝重复 key",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别 (debug/info/warn/error)",
		},
		&cli.StringFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Usage:   "直接使用该字符串作为模板，忽略 FILE",
		},
	}
}

// LoadConfig 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags，并设置日志级别。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), config.AppName,
		cfgm.WithEnvPrefix(config.EnvPrefix),
	)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	slog.SetLogLoggerLevel(level)

	return cfg, nil
}

// ReadTemplate 读取模板文本：--text 优先，其次 FILE，FILE 为空或 "-" 时读取标准输入。
func ReadTemplate(cmd *cli.Command) (string, error) {
	if cmd.IsSet("text") {
		return cmd.String("text"), nil
	}

	path := cmd.Args().First()
	if path == "" || path == "-" {
		data, err := io.ReadAll(Stdin(cmd))
		if err != nil {
			return "", fmt.Errorf("read template from stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user supplied on purpose
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	return string(data), nil
}

// Stdin 返回命令的输入流。
func Stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}

	return os.Stdin
}

// Stdout 返回命令的输出流。
func Stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}
