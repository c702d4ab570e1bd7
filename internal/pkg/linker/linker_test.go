package linker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/agent"
)

// newTestRepo lays out a skills repository with alpha and beta skills, a
// hidden skill, and a marker-less gamma directory.
func newTestRepo(t *testing.T) string {
	t.Helper()

	repo := t.TempDir()
	for _, name := range []string{"alpha", "beta", ".hidden"} {
		dir := filepath.Join(repo, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("# skill\n"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(repo, "gamma"), 0o755))

	return repo
}

// newTestTarget points the claude-code skills directory at a temp dir.
func newTestTarget(t *testing.T) string {
	t.Helper()

	target := filepath.Join(t.TempDir(), "skills")
	t.Setenv("SKILLKIT_CLAUDE_CODE_SKILLS_DIR", target)

	return target
}

func TestLinker_Link(t *testing.T) {
	fs := afero.NewOsFs()
	ctx := context.Background()

	repo := newTestRepo(t)
	target := newTestTarget(t)

	report, err := New(fs, Options{}).Link(ctx, agent.ClaudeCode, repo)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Linked)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 2, report.NewLinks())
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, agent.ClaudeCode, report.Agent)
	assert.Equal(t, target, report.TargetDir)

	require.Len(t, report.Results, 3)

	outcomes := map[string]Outcome{}
	for _, result := range report.Results {
		outcomes[result.Skill] = result.Outcome
	}
	assert.Equal(t, OutcomeLinked, outcomes["alpha"])
	assert.Equal(t, OutcomeLinked, outcomes["beta"])
	assert.Equal(t, OutcomeNoMarker, outcomes["gamma"])
	assert.NotContains(t, outcomes, ".hidden")

	for _, name := range []string{"alpha", "beta"} {
		destination, err := os.Readlink(filepath.Join(target, name))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(repo, name), destination)
	}

	_, err = os.Lstat(filepath.Join(target, "gamma"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Lstat(filepath.Join(target, ".hidden"))
	assert.True(t, os.IsNotExist(err))
}

func TestLinker_Link_Idempotent(t *testing.T) {
	fs := afero.NewOsFs()
	ctx := context.Background()

	repo := newTestRepo(t)
	newTestTarget(t)

	linker := New(fs, Options{})

	first, err := linker.Link(ctx, agent.ClaudeCode, repo)
	require.NoError(t, err)
	require.Equal(t, 2, first.NewLinks())

	second, err := linker.Link(ctx, agent.ClaudeCode, repo)
	require.NoError(t, err)

	assert.Equal(t, 2, second.Linked)
	assert.Equal(t, 1, second.Skipped)
	assert.Equal(t, 0, second.Failed)
	assert.Equal(t, 0, second.NewLinks())

	for _, result := range second.Results {
		if result.Skill == "gamma" {
			continue
		}
		assert.Equal(t, OutcomeAlreadyLinked, result.Outcome, result.Skill)
	}
}

func TestLinker_Link_ConflictingSymlink(t *testing.T) {
	fs := afero.NewOsFs()
	ctx := context.Background()

	repo := newTestRepo(t)
	target := newTestTarget(t)

	unrelated := t.TempDir()
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.Symlink(unrelated, filepath.Join(target, "alpha")))

	report, err := New(fs, Options{}).Link(ctx, agent.ClaudeCode, repo)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Linked) // beta
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 0, report.Failed)

	var conflict Result
	for _, result := range report.Results {
		if result.Skill == "alpha" {
			conflict = result
		}
	}
	assert.Equal(t, OutcomeConflict, conflict.Outcome)
	assert.Equal(t, unrelated, conflict.Existing)

	// The existing symlink is never repaired.
	destination, err := os.Readlink(filepath.Join(target, "alpha"))
	require.NoError(t, err)
	assert.Equal(t, unrelated, destination)
}

func TestLinker_Link_RealDirectoryExists(t *testing.T) {
	fs := afero.NewOsFs()
	ctx := context.Background()

	repo := newTestRepo(t)
	target := newTestTarget(t)

	existing := filepath.Join(target, "alpha")
	require.NoError(t, os.MkdirAll(existing, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(existing, "keep.txt"), []byte("keep"), 0o644))

	report, err := New(fs, Options{}).Link(ctx, agent.ClaudeCode, repo)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Linked)
	assert.Equal(t, 2, report.Skipped)

	// The real directory is left untouched.
	info, err := os.Lstat(existing)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Zero(t, info.Mode()&os.ModeSymlink)

	content, err := os.ReadFile(filepath.Join(existing, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

func TestLinker_Link_MarkerIsDirectory(t *testing.T) {
	fs := afero.NewOsFs()
	ctx := context.Background()

	repo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, "alpha", "SKILL.md"), 0o755))

	target := newTestTarget(t)

	report, err := New(fs, Options{}).Link(ctx, agent.ClaudeCode, repo)
	require.NoError(t, err)

	// A directory named SKILL.md does not mark a skill.
	assert.Equal(t, 0, report.Linked)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)

	require.Len(t, report.Results, 1)
	assert.Equal(t, OutcomeNoMarker, report.Results[0].Outcome)

	_, err = os.Lstat(filepath.Join(target, "alpha"))
	assert.True(t, os.IsNotExist(err))
}

func TestLinker_Link_MissingSource(t *testing.T) {
	fs := afero.NewOsFs()
	ctx := context.Background()

	target := newTestTarget(t)

	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := New(fs, Options{}).Link(ctx, agent.ClaudeCode, missing)
	require.ErrorIs(t, err, ErrSourceNotFound)
	assert.ErrorContains(t, err, missing)

	// Nothing was created, not even the target directory.
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestLinker_Link_UnknownAgent(t *testing.T) {
	fs := afero.NewOsFs()

	_, err := New(fs, Options{}).Link(context.Background(), agent.Kind("emacs"), t.TempDir())
	require.ErrorIs(t, err, agent.ErrUnknownAgent)
}

func TestLinker_Link_DryRun(t *testing.T) {
	fs := afero.NewOsFs()
	ctx := context.Background()

	repo := newTestRepo(t)
	target := newTestTarget(t)

	report, err := New(fs, Options{DryRun: true}).Link(ctx, agent.ClaudeCode, repo)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.Linked)
	assert.Equal(t, 1, report.Skipped)

	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestLinker_Link_SymlinksUnsupported(t *testing.T) {
	// MemMapFs cannot create symlinks.
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/repo", 0o755))

	t.Setenv("SKILLKIT_CLAUDE_CODE_SKILLS_DIR", "/skills")

	_, err := New(fs, Options{}).Link(context.Background(), agent.ClaudeCode, "/repo")
	require.ErrorIs(t, err, ErrSymlinksUnsupported)
}

func TestLinker_Link_CustomMarker(t *testing.T) {
	fs := afero.NewOsFs()
	ctx := context.Background()

	repo := newTestRepo(t)
	newTestTarget(t)

	report, err := New(fs, Options{Marker: "AGENT.md"}).Link(ctx, agent.ClaudeCode, repo)
	require.NoError(t, err)

	// No candidate carries AGENT.md, everything is skipped.
	assert.Equal(t, 0, report.Linked)
	assert.Equal(t, 3, report.Skipped)
}

func TestOptions_DefaultMarker(t *testing.T) {
	linker := New(afero.NewMemMapFs(), Options{})
	assert.Equal(t, "SKILL.md", linker.options.Marker)
}
