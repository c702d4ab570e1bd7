// Package linker creates symlinks from an agent's skills directory to the
// skill directories of a canonical skills repository.
package linker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mcuadros/go-defaults"
	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/skill"
)

var (
	// ErrSourceNotFound indicates the skills repository path does not exist as a directory.
	ErrSourceNotFound = errors.New("skills repository not found")

	// ErrSymlinksUnsupported indicates the filesystem cannot create symlinks.
	ErrSymlinksUnsupported = errors.New("filesystem does not support symlinks")
)

// Options configures a Linker.
type Options struct {
	// Marker is the file name that makes a directory a skill.
	Marker string `default:"SKILL.md"`

	// DryRun evaluates every candidate without creating anything.
	DryRun bool
}

// Linker links skill directories into agent skills directories.
type Linker struct {
	fs      afero.Fs
	options Options
}

// New creates a Linker on top of the provided filesystem.
func New(fs afero.Fs, options Options) *Linker {
	if options.Marker == "" {
		defaults.SetDefaults(&options)
	}

	return &Linker{
		fs:      fs,
		options: options,
	}
}

// Link evaluates every candidate in sourceDir against the agent's skills
// directory. An empty sourceDir means the current working directory.
//
// Per-candidate failures are recorded in the report and never abort the run;
// a non-nil error is returned only for the fatal conditions: unknown agent,
// missing source directory, and skills-directory creation failure.
func (linker *Linker) Link(ctx context.Context, kind agent.Kind, sourceDir string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	if err := kind.Validate(); err != nil {
		return Report{}, err
	}

	sourceDir, err := linker.resolveSource(sourceDir)
	if err != nil {
		return Report{}, err
	}

	targetDir, err := kind.SkillsDir()
	if err != nil {
		return Report{}, fmt.Errorf("resolve skills dir: %w", err)
	}

	if !linker.options.DryRun {
		if _, ok := linker.fs.(afero.Linker); !ok {
			return Report{}, ErrSymlinksUnsupported
		}

		if err := linker.fs.MkdirAll(targetDir, 0o755); err != nil {
			return Report{}, fmt.Errorf("create skills dir %s: %w", targetDir, err)
		}
	}

	candidates, err := skill.ListCandidates(linker.fs, sourceDir, linker.options.Marker)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:     uuid.NewString(),
		Agent:     kind,
		SourceDir: sourceDir,
		TargetDir: targetDir,
		DryRun:    linker.options.DryRun,
	}

	for _, candidate := range candidates {
		report.add(linker.evaluate(candidate, targetDir))
	}

	return report, nil
}

func (linker *Linker) resolveSource(sourceDir string) (string, error) {
	abs, err := skill.ResolveRepositoryPath(sourceDir)
	if err != nil {
		return "", err
	}

	isDir, err := afero.DirExists(linker.fs, abs)
	if err != nil {
		return "", fmt.Errorf("check source path %s: %w", abs, err)
	}
	if !isDir {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, abs)
	}

	return abs, nil
}

// evaluate runs the per-candidate decision procedure. Every candidate is
// evaluated independently against the filesystem state at call time.
func (linker *Linker) evaluate(candidate skill.Candidate, targetDir string) Result {
	result := Result{
		Skill:  candidate.Name,
		Source: candidate.Directory,
		Target: filepath.Join(targetDir, candidate.Name),
	}

	if !candidate.HasMarker {
		result.Outcome = OutcomeNoMarker
		return result
	}

	info, err := linker.lstat(result.Target)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		existing, err := linker.readlink(result.Target)
		if err != nil {
			result.Outcome = OutcomeFailed
			result.Err = fmt.Errorf("read existing symlink: %w", err)
			return result
		}

		result.Existing = existing
		if symlinkDestination(existing, result.Target) == filepath.Clean(candidate.Directory) {
			result.Outcome = OutcomeAlreadyLinked
		} else {
			// Never repair a symlink pointing somewhere else, only report it.
			result.Outcome = OutcomeConflict
		}
		return result

	case err == nil:
		result.Outcome = OutcomeExists
		return result
	}

	if linker.options.DryRun {
		result.Outcome = OutcomeLinked
		return result
	}

	if err := linker.symlink(candidate.Directory, result.Target); err != nil {
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("create symlink: %w", err)
		return result
	}

	result.Outcome = OutcomeLinked
	return result
}

func (linker *Linker) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := linker.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}

	return linker.fs.Stat(path)
}

func (linker *Linker) readlink(path string) (string, error) {
	reader, ok := linker.fs.(afero.LinkReader)
	if !ok {
		return "", ErrSymlinksUnsupported
	}

	return reader.ReadlinkIfPossible(path)
}

func (linker *Linker) symlink(oldname, newname string) error {
	fs, ok := linker.fs.(afero.Linker)
	if !ok {
		return ErrSymlinksUnsupported
	}

	return fs.SymlinkIfPossible(oldname, newname)
}

// symlinkDestination normalizes a readlink destination for comparison,
// resolving relative destinations against the link's directory.
func symlinkDestination(destination, linkPath string) string {
	if !filepath.IsAbs(destination) {
		destination = filepath.Join(filepath.Dir(linkPath), destination)
	}

	return filepath.Clean(destination)
}
