package agent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/go-homedir"
)

// Kind identifies one of the supported AI coding agents.
type Kind string

const (
	// ClaudeCode is the Claude Code CLI.
	ClaudeCode Kind = "claude-code"

	// Codex is the OpenAI Codex CLI.
	Codex Kind = "codex"

	// Cursor is the Cursor agent CLI.
	Cursor Kind = "cursor"

	// Windsurf is the Windsurf agent CLI.
	Windsurf Kind = "windsurf"
)

// ErrUnknownAgent indicates the agent kind is not one of the supported agents.
var ErrUnknownAgent = errors.New("unknown agent")

type details struct {
	displayName string
	skillsDir   string
	executables []string
}

// The agent set is closed and known at build time. Skills directories follow each
// agent's own convention, they are not derived from the kind.
var agents = map[Kind]details{
	ClaudeCode: {
		displayName: "Claude Code",
		skillsDir:   "~/.claude/skills",
		executables: []string{"claude", "claude-code"},
	},
	Codex: {
		displayName: "Codex",
		skillsDir:   "~/.codex/skills",
		executables: []string{"codex"},
	},
	Cursor: {
		displayName: "Cursor",
		skillsDir:   "~/.cursor/skills",
		executables: []string{"cursor-agent", "cursor"},
	},
	Windsurf: {
		displayName: "Windsurf",
		skillsDir:   "~/.windsurf/skills",
		executables: []string{"windsurf"},
	},
}

// Kinds returns the supported agent kinds in a stable order.
func Kinds() []Kind {
	return []Kind{ClaudeCode, Codex, Cursor, Windsurf}
}

// Validate returns ErrUnknownAgent when the kind is not a supported agent.
// The match is exact and case-sensitive.
func (kind Kind) Validate() error {
	if _, ok := agents[kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAgent, kind)
	}
	return nil
}

// DisplayName returns the human-readable agent name.
func (kind Kind) DisplayName() string {
	if info, ok := agents[kind]; ok {
		return info.displayName
	}
	return string(kind)
}

// SkillsDir resolves the agent's skills directory as an absolute path.
// The SKILLKIT_<KIND>_SKILLS_DIR environment variable overrides the default.
func (kind Kind) SkillsDir() (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}

	dir := agents[kind].skillsDir

	envVarName := "SKILLKIT_" + strcase.ToScreamingSnake(string(kind)) + "_SKILLS_DIR"
	if envDir, ok := os.LookupEnv(envVarName); ok && envDir != "" {
		dir = envDir
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("expand skills dir: %w", err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve absolute skills dir: %w", err)
	}

	return abs, nil
}
