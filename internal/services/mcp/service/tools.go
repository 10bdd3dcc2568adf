package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/mcp/domain"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/app"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

func registerPlannerTools(registrar mcpRegistrationTarget, svc *app.Service) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.ProfileCreateTool(), handler: domain.ProfileCreateHandler(svc)},
		{tool: domain.ProfileGetTool(), handler: domain.ProfileGetHandler(svc)},
		{tool: domain.ProfileListTool(), handler: domain.ProfileListHandler(svc)},
		{tool: domain.ProfileDeleteTool(), handler: domain.ProfileDeleteHandler(svc)},
		{tool: domain.AbilitySetTool(), handler: domain.AbilitySetHandler(svc)},
		{tool: domain.SkillSetTool(), handler: domain.SkillSetHandler(svc)},
		{tool: domain.SkillResetTool(), handler: domain.SkillResetHandler(svc)},
		{tool: domain.LevelSetTool(), handler: domain.LevelSetHandler(svc)},
		{tool: domain.IPReportTool(), handler: domain.IPReportHandler(svc)},
		{tool: domain.SkillsListTool(), handler: domain.SkillsListHandler(svc)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}

// registerCatalogResources registers readable reference-table MCP resources.
func registerCatalogResources(registrar mcpRegistrationTarget, svc *app.Service) {
	registrar.AddResource(domain.SkillCatalogResource(), domain.SkillCatalogResourceHandler(svc))
}
