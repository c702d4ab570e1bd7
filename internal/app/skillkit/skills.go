package skillkit

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/skill"
)

// SkillListOutputItem represents a single skill entry in the list output.
type SkillListOutputItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Directory   string `json:"directory"`
}

// SkillListOutput captures the list output payload for skills.
type SkillListOutput struct {
	Repository string                `json:"repository"`
	Items      []SkillListOutputItem `json:"items"`
	Count      int                   `json:"count"`
}

// SkillsCmd lists the skills found in a repository.
type SkillsCmd struct {
	Path   string `arg:"" optional:"" help:"Skills repository path, defaults to the current working directory."`
	Format string `default:"text" enum:"text,json,yaml" help:"Output format."`
}

func (command *SkillsCmd) Run(ctx context.Context, fs afero.Fs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repository, err := skill.ResolveRepositoryPath(command.Path)
	if err != nil {
		return err
	}

	skills, err := skill.ListSkills(fs, repository)
	if err != nil {
		return fmt.Errorf("list skills: %w", err)
	}

	items := make([]SkillListOutputItem, 0, len(skills))
	for _, loaded := range skills {
		items = append(items, SkillListOutputItem{
			Name:        loaded.Name,
			Description: loaded.Description,
			Directory:   loaded.Directory,
		})
	}

	output := SkillListOutput{
		Repository: repository,
		Items:      items,
		Count:      len(items),
	}

	if command.Format != "text" {
		return encodeOutput(command.Format, output)
	}

	for _, item := range items {
		if item.Description != "" {
			fmt.Printf("%s\t%s\n", item.Name, item.Description)
			continue
		}
		fmt.Println(item.Name)
	}
	fmt.Printf("\n%d skill(s) in %s\n", len(items), repository)

	return nil
}
