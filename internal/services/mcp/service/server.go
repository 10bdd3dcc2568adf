package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/branding"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/mcp/domain"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/app"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.ProfileCreateInput, domain.ProfileResult](),
	newMCPToolRegistrar[domain.ProfileGetInput, domain.ProfileResult](),
	newMCPToolRegistrar[domain.ProfileListInput, domain.ProfileListResult](),
	newMCPToolRegistrar[domain.ProfileDeleteInput, domain.ProfileDeleteResult](),
	newMCPToolRegistrar[domain.AbilitySetInput, domain.StatChangeResult](),
	newMCPToolRegistrar[domain.SkillSetInput, domain.StatChangeResult](),
	newMCPToolRegistrar[domain.SkillResetInput, domain.StatChangeResult](),
	newMCPToolRegistrar[domain.LevelSetInput, domain.ProfileResult](),
	newMCPToolRegistrar[domain.IPReportInput, domain.IPReportResult](),
	newMCPToolRegistrar[domain.SkillsListInput, domain.SkillsListResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

// Server hosts the MCP server over the planner service.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with every planner tool and resource
// registered.
func New(svc *app.Service) (*Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("planner service is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	adapter := mcpServerRegistrationAdapter{server: mcpServer}
	if err := registerPlannerTools(adapter, svc); err != nil {
		return nil, fmt.Errorf("register MCP tools: %w", err)
	}
	registerCatalogResources(adapter, svc)

	return &Server{mcpServer: mcpServer}, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path and is not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, svc *app.Service) error {
	server, err := New(svc)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}
