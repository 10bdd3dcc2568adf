package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/app"
)

// formatTimestamp renders storage timestamps for MCP clients. Zero times
// render as empty strings instead of the epoch.
func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

func abilityEntries(view app.ProfileView) []AbilityEntry {
	entries := make([]AbilityEntry, 0, len(view.Abilities))
	for _, ability := range view.Abilities {
		entries = append(entries, AbilityEntry{
			ID:           ability.ID,
			Name:         ability.Name,
			Value:        ability.Value,
			PointsFromIP: ability.PointsFromIP,
			Cap:          ability.Cap,
			BreedBase:    ability.BreedBase,
			CostTenths:   ability.CostTenths,
		})
	}
	return entries
}

func skillEntries(view app.ProfileView) []SkillEntry {
	entries := make([]SkillEntry, 0, len(view.Skills))
	for _, skill := range view.Skills {
		entries = append(entries, SkillEntry{
			ID:           skill.ID,
			Name:         skill.Name,
			Category:     skill.Category,
			Value:        skill.Value,
			BaseValue:    skill.BaseValue,
			TrickleDown:  skill.TrickleDown,
			PointsFromIP: skill.PointsFromIP,
			Cap:          skill.Cap,
			CostTenths:   skill.CostTenths,
		})
	}
	return entries
}

func budgetEntry(budget app.BudgetView) BudgetEntry {
	return BudgetEntry{
		TotalAvailable: budget.TotalAvailable,
		TotalUsed:      budget.TotalUsed,
		AbilityIP:      budget.AbilityIP,
		SkillIP:        budget.SkillIP,
		Remaining:      budget.Remaining,
		Efficiency:     budget.Efficiency,
	}
}

func adjustmentEntry(adj app.AdjustmentView) AdjustmentEntry {
	return AdjustmentEntry{
		Kind:      adj.Kind,
		Stat:      adj.Stat,
		Requested: adj.Requested,
		Applied:   adj.Applied,
		Clamped:   adj.Clamped,
		Reason:    adj.Reason,
	}
}

func profileResult(view app.ProfileView) ProfileResult {
	return ProfileResult{
		ID:         view.ID,
		Name:       view.Name,
		Level:      view.Level,
		Breed:      view.Breed,
		Profession: view.Profession,
		Faction:    view.Faction,
		Abilities:  abilityEntries(view),
		Skills:     skillEntries(view),
		Budget:     budgetEntry(view.Budget),
		CreatedAt:  formatTimestamp(view.CreatedAt),
		UpdatedAt:  formatTimestamp(view.UpdatedAt),
	}
}

func catalogEntries(entries []app.SkillCatalogEntry) []SkillCatalogResultEntry {
	out := make([]SkillCatalogResultEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, SkillCatalogResultEntry{
			ID:         entry.ID,
			Name:       entry.Name,
			Category:   entry.Category,
			BaseValue:  entry.BaseValue,
			CostTenths: entry.CostTenths,
			Trickle:    entry.Trickle,
		})
	}
	return out
}

// ProfileCreateHandler executes a profile creation request.
func ProfileCreateHandler(svc *app.Service) mcp.ToolHandlerFor[ProfileCreateInput, ProfileResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileCreateInput) (*mcp.CallToolResult, ProfileResult, error) {
		view, err := svc.CreateProfile(ctx, app.CreateProfileParams{
			Name:       input.Name,
			Breed:      input.Breed,
			Profession: input.Profession,
			Faction:    input.Faction,
			Level:      input.Level,
		})
		if err != nil {
			return nil, ProfileResult{}, fmt.Errorf("profile create failed: %w", err)
		}
		return nil, profileResult(view), nil
	}
}

// ProfileGetHandler executes a profile load request.
func ProfileGetHandler(svc *app.Service) mcp.ToolHandlerFor[ProfileGetInput, ProfileResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileGetInput) (*mcp.CallToolResult, ProfileResult, error) {
		view, err := svc.GetProfile(ctx, input.ProfileID)
		if err != nil {
			return nil, ProfileResult{}, fmt.Errorf("profile get failed: %w", err)
		}
		return nil, profileResult(view), nil
	}
}

// ProfileListHandler executes a profile listing request.
func ProfileListHandler(svc *app.Service) mcp.ToolHandlerFor[ProfileListInput, ProfileListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileListInput) (*mcp.CallToolResult, ProfileListResult, error) {
		page, err := svc.ListProfiles(ctx, input.PageSize, input.PageToken)
		if err != nil {
			return nil, ProfileListResult{}, fmt.Errorf("profile list failed: %w", err)
		}
		result := ProfileListResult{NextPageToken: page.NextPageToken}
		for _, summary := range page.Profiles {
			result.Profiles = append(result.Profiles, ProfileListEntry{
				ID:         summary.ID,
				Name:       summary.Name,
				Level:      summary.Level,
				Breed:      summary.Breed,
				Profession: summary.Profession,
				Faction:    summary.Faction,
				CreatedAt:  formatTimestamp(summary.CreatedAt),
				UpdatedAt:  formatTimestamp(summary.UpdatedAt),
			})
		}
		return nil, result, nil
	}
}

// ProfileDeleteHandler executes a profile deletion request.
func ProfileDeleteHandler(svc *app.Service) mcp.ToolHandlerFor[ProfileDeleteInput, ProfileDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileDeleteInput) (*mcp.CallToolResult, ProfileDeleteResult, error) {
		if err := svc.DeleteProfile(ctx, input.ProfileID); err != nil {
			return nil, ProfileDeleteResult{}, fmt.Errorf("profile delete failed: %w", err)
		}
		return nil, ProfileDeleteResult{ID: input.ProfileID, Deleted: true}, nil
	}
}

// AbilitySetHandler executes an ability edit request. Out-of-range targets
// clamp and report in the result instead of failing the call.
func AbilitySetHandler(svc *app.Service) mcp.ToolHandlerFor[AbilitySetInput, StatChangeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AbilitySetInput) (*mcp.CallToolResult, StatChangeResult, error) {
		view, adj, err := svc.SetAbility(ctx, app.SetAbilityParams{
			ProfileID: input.ProfileID,
			Ability:   input.Ability,
			Target:    input.Target,
		})
		if err != nil {
			return nil, StatChangeResult{}, fmt.Errorf("ability set failed: %w", err)
		}
		return nil, StatChangeResult{Adjustment: adjustmentEntry(adj), Profile: profileResult(view)}, nil
	}
}

// SkillSetHandler executes a skill edit request.
func SkillSetHandler(svc *app.Service) mcp.ToolHandlerFor[SkillSetInput, StatChangeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SkillSetInput) (*mcp.CallToolResult, StatChangeResult, error) {
		view, adj, err := svc.SetSkill(ctx, app.SetSkillParams{
			ProfileID: input.ProfileID,
			SkillID:   input.SkillID,
			Skill:     input.Skill,
			Target:    input.Target,
		})
		if err != nil {
			return nil, StatChangeResult{}, fmt.Errorf("skill set failed: %w", err)
		}
		return nil, StatChangeResult{Adjustment: adjustmentEntry(adj), Profile: profileResult(view)}, nil
	}
}

// SkillResetHandler executes a skill reset request.
func SkillResetHandler(svc *app.Service) mcp.ToolHandlerFor[SkillResetInput, StatChangeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SkillResetInput) (*mcp.CallToolResult, StatChangeResult, error) {
		view, adj, err := svc.ResetSkill(ctx, input.ProfileID, input.SkillID, input.Skill)
		if err != nil {
			return nil, StatChangeResult{}, fmt.Errorf("skill reset failed: %w", err)
		}
		return nil, StatChangeResult{Adjustment: adjustmentEntry(adj), Profile: profileResult(view)}, nil
	}
}

// LevelSetHandler executes a level change request.
func LevelSetHandler(svc *app.Service) mcp.ToolHandlerFor[LevelSetInput, ProfileResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LevelSetInput) (*mcp.CallToolResult, ProfileResult, error) {
		view, err := svc.SetLevel(ctx, input.ProfileID, input.Level)
		if err != nil {
			return nil, ProfileResult{}, fmt.Errorf("level set failed: %w", err)
		}
		return nil, profileResult(view), nil
	}
}

// IPReportHandler executes an IP report request.
func IPReportHandler(svc *app.Service) mcp.ToolHandlerFor[IPReportInput, IPReportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IPReportInput) (*mcp.CallToolResult, IPReportResult, error) {
		report, err := svc.Report(ctx, input.ProfileID)
		if err != nil {
			return nil, IPReportResult{}, fmt.Errorf("ip report failed: %w", err)
		}
		result := IPReportResult{
			ProfileID:  report.ProfileID,
			Name:       report.Name,
			Level:      report.Level,
			Breed:      report.Breed,
			Profession: report.Profession,
			Budget:     budgetEntry(report.Budget),
		}
		for _, category := range report.Categories {
			result.Categories = append(result.Categories, CategoryBudgetEntry{
				Category: category.Category,
				Skills:   category.Skills,
				Invested: category.Invested,
				Points:   category.Points,
				SkillIP:  category.SkillIP,
				AtCap:    category.AtCap,
			})
		}
		return nil, result, nil
	}
}

// SkillsListHandler executes a catalog browse request.
func SkillsListHandler(svc *app.Service) mcp.ToolHandlerFor[SkillsListInput, SkillsListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SkillsListInput) (*mcp.CallToolResult, SkillsListResult, error) {
		entries, err := svc.ListSkills(ctx, input.Category)
		if err != nil {
			return nil, SkillsListResult{}, fmt.Errorf("skills list failed: %w", err)
		}
		return nil, SkillsListResult{Skills: catalogEntries(entries)}, nil
	}
}

// SkillCatalogResourceHandler returns the readable skill catalog resource.
func SkillCatalogResourceHandler(svc *app.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if svc == nil {
			return nil, fmt.Errorf("planner service is not configured")
		}
		uri := SkillCatalogResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		entries, err := svc.ListSkills(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("skill catalog failed: %w", err)
		}
		data, err := json.MarshalIndent(SkillCatalogPayload{Skills: catalogEntries(entries)}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal skill catalog: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
