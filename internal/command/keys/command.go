// Package keys 提供列出模板占位符 key 的命令。
package keys

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-tplstr/internal/command"
	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/tplstr"
)

// Command keys 命令
var Command = NewCommand()

// NewCommand 创建 keys 命令。
func NewCommand() *cli.Command {
	flags := append(command.TemplateFlags(),
		&cli.BoolFlag{
			Name:  "json",
			Usage: "以 JSON 数组输出",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "保留重复 key，按出现顺序输出",
		},
	)

	return &cli.Command{
		Name:      "keys",
		Usage:     "列出模板中的占位符 key",
		ArgsUsage: "[FILE]",
		Flags:     flags,
		Action:    action,
	}
}

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	text, err := command.ReadTemplate(cmd)
	if err != nil {
		return err
	}

	tpl, err := tplstr.Parse(text, cfg.Template.Opts())
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	keys := tpl.UniqueKeys()
	if cmd.Bool("all") {
		keys = tpl.Keys()
	}
	slog.Debug("Collected template keys", "count", len(keys))

	w := command.Stdout(cmd)
	if cmd.Bool("json") {
		enc := json.NewEncoder(w)

		return enc.Encode(keys)
	}

	for _, key := range keys {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return err
		}
	}

	return nil
}
