package skillkit_mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/skill"
)

type listSkillsOutput struct {
	Repository string         `json:"repository"`
	Skills     []*skill.Skill `json:"skills"`
	Count      int            `json:"count"`
}

func createListSkillsTool(fs afero.Fs) mcpserver.ServerTool {
	tool := mcp.NewTool("list_skills",
		mcp.WithDescription("Lists the skills found in a skills repository."),
		mcp.WithString("path",
			mcp.Description("Skills repository path, defaults to the current working directory."),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		repository, err := skill.ResolveRepositoryPath(request.GetString("path", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		skills, err := skill.ListSkills(fs, repository)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		output := listSkillsOutput{
			Repository: repository,
			Skills:     skills,
			Count:      len(skills),
		}

		names := make([]string, 0, len(skills))
		for _, loaded := range skills {
			names = append(names, loaded.Name)
		}

		summary := fmt.Sprintf("%d skill(s): %s", len(skills), strings.Join(names, ", "))

		return mcp.NewToolResultStructured(output, summary), nil
	}

	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
