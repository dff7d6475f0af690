package main

import (
	"context"
	"log/slog"
	"os"

	app "github.com/lwmacct/251208-go-pkg-tplstr/internal/command/render"
)

func main() {
	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		slog.Error("Render failed", "error", err)
		os.Exit(1)
	}
}
