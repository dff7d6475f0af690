// Package render 提供模板渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-tplstr/internal/command"
)

// Command 渲染命令
var Command = NewCommand()

// NewCommand 创建渲染命令。每次调用返回独立实例，便于重复执行（如测试）。
func NewCommand() *cli.Command {
	flags := command.TemplateFlags()
	flags = append(flags,
		&cli.BoolFlag{
			Name:  "template-reject-unused",
			Usage: "拒绝模板未引用的参数",
		},
		&cli.StringFlag{
			Name:    "render-args-file",
			Aliases: []string{"f"},
			Value:   command.Defaults.Render.ArgsFile,
			Usage:   "参数文件 (YAML/JSON)，嵌套对象展平为点分 key",
		},
		&cli.StringFlag{
			Name:    "render-output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Render.Output,
			Usage:   "输出文件，空表示标准输出",
		},
		&cli.StringSliceFlag{
			Name:    "set",
			Aliases: []string{"s"},
			Usage:   "key=value 参数，可重复，覆盖参数文件中的同名 key",
		},
	)

	return &cli.Command{
		Name:                      "render",
		Usage:                     "渲染 ${key} 模板",
		ArgsUsage:                 "[FILE]",
		Action:                    action,
		Flags:                     flags,
		DisableSliceFlagSeparator: true,
	}
}
