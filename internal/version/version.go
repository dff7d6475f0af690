// Package version 提供构建版本信息与 version 子命令。
//
// 构建时通过 ldflags 注入：
//
//	go build -ldflags "-X github.com/lwmacct/251208-go-pkg-tplstr/internal/version.Version=v1.0.0"
package version

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称。
const AppRawName = "tplstr"

// 由 ldflags 注入。
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

// GetVersion 返回版本号；未注入时回退到模块构建信息。
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "dev"
}

// Command version 子命令。
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		w := cmd.Root().Writer
		if _, err := fmt.Fprintf(w, "%s %s\n", AppRawName, GetVersion()); err != nil {
			return err
		}
		if Commit != "" {
			if _, err := fmt.Fprintf(w, "commit: %s\n", Commit); err != nil {
				return err
			}
		}
		if BuildTime != "" {
			if _, err := fmt.Fprintf(w, "built: %s\n", BuildTime); err != nil {
				return err
			}
		}

		return nil
	},
}
