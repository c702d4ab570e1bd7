package skillkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/cli"
	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/linker"
)

// LinkCmd links every skill in a repository into an agent's skills directory.
type LinkCmd struct {
	Agent agent.Kind `arg:"" required:"" enum:"claude-code,codex,cursor,windsurf" help:"Agent to link skills for."`
	Path  string     `arg:"" optional:"" help:"Skills repository path, defaults to the current working directory."`
}

func (command *LinkCmd) Run(ctx context.Context, fs afero.Fs, printer *cli.Printer) error {
	return runLinker(ctx, fs, printer, command.Agent, command.Path, false)
}

// StatusCmd evaluates every skill without creating anything.
type StatusCmd struct {
	Agent agent.Kind `arg:"" required:"" enum:"claude-code,codex,cursor,windsurf" help:"Agent to report link state for."`
	Path  string     `arg:"" optional:"" help:"Skills repository path, defaults to the current working directory."`
}

func (command *StatusCmd) Run(ctx context.Context, fs afero.Fs, printer *cli.Printer) error {
	return runLinker(ctx, fs, printer, command.Agent, command.Path, true)
}

func runLinker(ctx context.Context, fs afero.Fs, printer *cli.Printer, kind agent.Kind, path string, dryRun bool) error {
	report, err := linker.New(fs, linker.Options{DryRun: dryRun}).Link(ctx, kind, path)
	if err != nil {
		return fmt.Errorf("link skills: %w", err)
	}

	slog.Debug("Evaluated skills repository.",
		slog.String("runId", report.RunID),
		slog.String("agent", string(report.Agent)),
		slog.String("sourceDir", report.SourceDir),
		slog.String("targetDir", report.TargetDir),
	)

	for _, result := range report.Results {
		printer.Result(result, report.DryRun)
	}

	printer.Summary(report)

	return nil
}
