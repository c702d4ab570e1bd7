package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-skillkit/internal/app/skillkit"
	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/cli"
)

func main() {
	command := &skillkit.Command{}

	kctx := kong.Parse(command,
		kong.Name("skillkit"),
		kong.Description("Links skill directories from a skills repository into agent skills directories via symlinks."),
		kong.UsageOnError(),
		// Usage output always exits non-zero, including usage-on-request.
		kong.Exit(func(int) { os.Exit(1) }),
	)

	logger, err := cli.CreateLoggerFromConfig(command.Log)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	printer := cli.NewPrinter()
	printer.SetQuiet(command.Log.Quiet)

	kctx.BindTo(context.Background(), (*context.Context)(nil))
	kctx.BindTo(afero.NewOsFs(), (*afero.Fs)(nil))
	kctx.Bind(printer)

	kctx.FatalIfErrorf(kctx.Run())
}
