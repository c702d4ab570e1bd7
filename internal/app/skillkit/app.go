package skillkit

import "github.com/orbiqd/orbiqd-skillkit/internal/pkg/cli"

type Command struct {
	Log cli.LogConfig `embed:"" prefix:"log-"`

	Link   LinkCmd   `cmd:"" default:"withargs" help:"Link skills from a repository into an agent's skills directory"`
	Status StatusCmd `cmd:"" help:"Report link state without creating anything"`
	Skills SkillsCmd `cmd:"" help:"List skills in a repository"`
	Agents AgentsCmd `cmd:"" help:"List supported agents and their skills directories"`
}
