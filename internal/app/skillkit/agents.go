package skillkit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/agent"
)

// AgentListOutputItem represents a single agent entry in the list output.
type AgentListOutputItem struct {
	Kind        agent.Kind `json:"kind"`
	DisplayName string     `json:"displayName"`
	SkillsDir   string     `json:"skillsDir"`
	Installed   *bool      `json:"installed,omitempty"`
	Executable  string     `json:"executable,omitempty"`
}

// AgentListOutput captures the list output payload for agents.
type AgentListOutput struct {
	Items []AgentListOutputItem `json:"items"`
	Count int                   `json:"count"`
}

// AgentsCmd lists the supported agents and their skills directories.
type AgentsCmd struct {
	Discover bool   `help:"Check whether each agent CLI is installed."`
	Format   string `default:"text" enum:"text,json,yaml" help:"Output format."`
}

func (command *AgentsCmd) Run(ctx context.Context) error {
	items := make([]AgentListOutputItem, 0, len(agent.Kinds()))

	for _, kind := range agent.Kinds() {
		skillsDir, err := kind.SkillsDir()
		if err != nil {
			return fmt.Errorf("resolve skills dir for %s: %w", kind, err)
		}

		item := AgentListOutputItem{
			Kind:        kind,
			DisplayName: kind.DisplayName(),
			SkillsDir:   skillsDir,
		}

		if command.Discover {
			installed, err := kind.Installed(ctx)
			if err != nil {
				return fmt.Errorf("discover %s executable: %w", kind, err)
			}

			item.Installed = &installed

			if installed {
				executable, err := kind.LocateExecutable(ctx)
				if err != nil {
					return fmt.Errorf("locate %s executable: %w", kind, err)
				}
				item.Executable = executable
			} else {
				slog.Debug("Agent executable not found.", slog.String("kind", string(kind)))
			}
		}

		items = append(items, item)
	}

	output := AgentListOutput{
		Items: items,
		Count: len(items),
	}

	if command.Format != "text" {
		return encodeOutput(command.Format, output)
	}

	for _, item := range items {
		line := fmt.Sprintf("%s\t%s\t%s", item.Kind, item.DisplayName, item.SkillsDir)
		if item.Installed != nil {
			if *item.Installed {
				line += fmt.Sprintf("\tinstalled (%s)", item.Executable)
			} else {
				line += "\tnot installed"
			}
		}
		fmt.Println(line)
	}

	return nil
}

func encodeOutput(format string, output any) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("encode json output: %w", err)
		}
	case "yaml":
		payload, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("encode yaml output: %w", err)
		}
		if _, err := os.Stdout.Write(payload); err != nil {
			return fmt.Errorf("write yaml output: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	return nil
}
