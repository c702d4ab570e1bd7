package skillkit_mcp

import (
	"context"
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/linker"
)

func createLinkTool(kind agent.Kind, fs afero.Fs) mcpserver.ServerTool {
	toolName := fmt.Sprintf("link_%s", strcase.ToSnake(string(kind)))

	tool := mcp.NewTool(toolName,
		mcp.WithDescription(fmt.Sprintf("Links skill directories from a skills repository into the %s skills directory via symlinks.", kind.DisplayName())),
		mcp.WithString("path",
			mcp.Description("Skills repository path, defaults to the current working directory."),
		),
		mcp.WithBoolean("dryRun",
			mcp.Description("Evaluate every skill without creating anything."),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		options := linker.Options{
			DryRun: request.GetBool("dryRun", false),
		}

		report, err := linker.New(fs, options).Link(ctx, kind, request.GetString("path", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		summary := fmt.Sprintf("Linked: %d, Skipped: %d, Failed: %d", report.Linked, report.Skipped, report.Failed)

		return mcp.NewToolResultStructured(report, summary), nil
	}

	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
