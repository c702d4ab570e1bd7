package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	skillkitmcp "github.com/orbiqd/orbiqd-skillkit/internal/app/skillkit-mcp"
	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/cli"
)

func main() {
	command := &skillkitmcp.Command{}

	kctx := kong.Parse(command,
		kong.Name("skillkit-mcp"),
		kong.Description("MCP stdio server exposing skillkit skill linking as tools."),
		kong.UsageOnError(),
		kong.Exit(func(int) { os.Exit(1) }),
	)

	logger, err := cli.CreateLoggerFromConfig(command.Log)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	kctx.BindTo(context.Background(), (*context.Context)(nil))
	kctx.BindTo(afero.NewOsFs(), (*afero.Fs)(nil))

	kctx.FatalIfErrorf(kctx.Run())
}
