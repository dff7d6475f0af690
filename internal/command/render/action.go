package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-tplstr/internal/argsfile"
	"github.com/lwmacct/251208-go-pkg-tplstr/internal/command"
	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/tplstr"
)

func action(_ context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
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
	slog.Debug("Parsed template", "keys", tpl.UniqueKeys(), "open", cfg.Template.Open, "close", cfg.Template.Close)

	args, err := argsfile.Build(cfg.Render.ArgsFile, cmd.StringSlice("set"))
	if err != nil {
		return err
	}

	out, err := tpl.Apply(args)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	if cfg.Render.Output == "" {
		_, err = io.WriteString(command.Stdout(cmd), out)

		return err
	}

	if err := os.WriteFile(cfg.Render.Output, []byte(out), 0o644); err != nil { //nolint:gosec // rendered output is not secret
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("Rendered template", "output", cfg.Render.Output, "bytes", len(out))

	return nil
}
