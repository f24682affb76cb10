package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/mathline/internal/tools"
	"github.com/averycrespi/mathline/pkg/project"
	"github.com/averycrespi/mathline/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &MathServer{}

// MathServer represents the calculator MCP server
type MathServer struct {
	mcpServer *server.MCPServer
	calc      types.Calculator
	config    *types.Config
}

// NewMathServer creates a new calculator MCP server with every tool registered
func NewMathServer(calc types.Calculator, config *types.Config) *MathServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &MathServer{
		mcpServer: mcpServer,
		calc:      calc,
		config:    config,
	}
	s.registerTools()
	return s
}

func (s *MathServer) registerTools() {
	for _, tool := range tools.All(s.calc) {
		def := tool.GetTool()
		slog.Debug("Registering MCP tool", "tool", def.Name)
		s.mcpServer.AddTool(def, tool.Handle)
	}
}

// Serve serves MCP over the process's stdin and stdout until ctx is done
// or stdin is closed
func (s *MathServer) Serve(ctx context.Context) error {
	slog.Info("Starting MCP server",
		"name", project.Name,
		"version", project.Version,
		"solve_timeout", s.config.SolveTimeout)

	return s.Listen(ctx, os.Stdin, os.Stdout)
}

// Listen serves MCP over the given streams until ctx is done or in is closed
func (s *MathServer) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}
