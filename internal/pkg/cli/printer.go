package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/linker"
	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/skill"
)

var (
	passSprint   = color.New(color.FgGreen).Sprint
	skipSprint   = color.New(color.FgYellow).Sprint
	failSprint   = color.New(color.FgRed).Sprint
	dimSprintf   = color.New(color.Faint).Sprintf
	boldSprintf  = color.New(color.Bold).Sprintf
	errorSprintf = color.New(color.FgRed).Sprintf
)

func passMark() string { return passSprint("✓") }
func skipMark() string { return skipSprint("-") }
func failMark() string { return failSprint("✗") }

// Printer renders per-candidate progress lines and the run summary.
type Printer struct {
	output io.Writer
	quiet  bool
}

// NewPrinter creates a Printer writing to stdout.
func NewPrinter() *Printer {
	return &Printer{output: os.Stdout}
}

// NewPrinterTo creates a Printer writing to the given writer.
func NewPrinterTo(output io.Writer) *Printer {
	return &Printer{output: output}
}

// SetQuiet suppresses all printer output.
func (printer *Printer) SetQuiet(quiet bool) {
	printer.quiet = quiet
}

// Result prints a single candidate outcome.
func (printer *Printer) Result(result linker.Result, dryRun bool) {
	if printer.quiet {
		return
	}

	switch result.Outcome {
	case linker.OutcomeLinked:
		verb := "linked"
		if dryRun {
			verb = "would link"
		}
		printer.printf("%s %s %s\n", passMark(), verb, result.Skill)
	case linker.OutcomeAlreadyLinked:
		printer.printf("%s already linked %s\n", passMark(), result.Skill)
	case linker.OutcomeConflict:
		printer.printf("%s conflicting symlink %s %s\n", skipMark(), result.Skill,
			dimSprintf("(points at %s, expected %s)", result.Existing, result.Source))
	case linker.OutcomeExists:
		printer.printf("%s skipped %s %s\n", skipMark(), result.Skill,
			dimSprintf("(real directory exists at %s)", result.Target))
	case linker.OutcomeNoMarker:
		printer.printf("%s skipped %s %s\n", skipMark(), result.Skill,
			dimSprintf("(no %s marker file)", skill.MarkerFileName))
	case linker.OutcomeFailed:
		printer.printf("%s failed to link %s %s\n", failMark(), result.Skill,
			errorSprintf("(%v)", result.Err))
	}
}

// Summary prints the three-counter tally and the closing message.
func (printer *Printer) Summary(report linker.Report) {
	if printer.quiet {
		return
	}

	printer.printf("\n%s\n", boldSprintf("Linked: %d, Skipped: %d, Failed: %d",
		report.Linked, report.Skipped, report.Failed))

	switch {
	case report.DryRun:
		printer.printf("Dry run, nothing was created.\n")
	case report.NewLinks() > 0:
		printer.printf("Restart %s to pick up the new skills.\n", report.Agent.DisplayName())
	default:
		printer.printf("No new skills were linked.\n")
	}
}

func (printer *Printer) printf(format string, args ...any) {
	fmt.Fprintf(printer.output, format, args...)
}
