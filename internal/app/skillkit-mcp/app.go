package skillkit_mcp

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/cli"
)

type Command struct {
	Log cli.LogConfig `embed:"" prefix:"log-"`
}

func (command *Command) Run(ctx context.Context, fs afero.Fs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tools := []mcpserver.ServerTool{
		createListSkillsTool(fs),
	}

	for _, kind := range agent.Kinds() {
		tools = append(tools, createLinkTool(kind, fs))
	}

	server := mcpserver.NewMCPServer(
		"skillkit-mcp",
		"1.0.0",
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	server.AddTools(tools...)

	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}

	return nil
}
