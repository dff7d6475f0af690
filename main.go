package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-tplstr/internal/command/keys"
	"github.com/lwmacct/251208-go-pkg-tplstr/internal/command/render"
	"github.com/lwmacct/251208-go-pkg-tplstr/internal/version"
)

func main() {
	app := &cli.Command{
		Name:                      version.AppRawName,
		Usage:                     "${key} 模板字符串渲染工具",
		Version:                   version.GetVersion(),
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			version.Command,
			render.Command,
			keys.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
