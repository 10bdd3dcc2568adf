package app

import (
	"context"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
)

// unlistedCategory buckets invested skills the reference tables no longer
// list, so the per-category totals still sum to the ledger's SkillIP.
const unlistedCategory = "unlisted"

// Report summarizes a build's IP ledger with per-category spending.
func (s *Service) Report(ctx context.Context, profileID string) (ReportView, error) {
	ctx, span := tracer.Start(ctx, "app.Report")
	defer span.End()
	span.SetAttributes(attribute.String("profile.id", profileID))

	_, profile, err := s.load(ctx, profileID)
	if err != nil {
		return ReportView{}, err
	}

	report := ReportView{
		ProfileID:  profile.ID,
		Name:       profile.Name,
		Level:      profile.Level,
		Breed:      profile.Breed,
		Profession: profile.Profession,
		Budget:     budgetView(profile.IP),
	}

	seen := make(map[anarchy.SkillID]bool, len(profile.Skills))
	for _, category := range s.tables.Categories() {
		entry := CategoryBudgetView{Category: category}
		for _, skillID := range s.tables.SkillsInCategory(category) {
			seen[skillID] = true
			entry.Skills++
			skill, ok := profile.Skills[skillID]
			if !ok {
				continue
			}
			if skill.Value >= skill.Cap {
				entry.AtCap++
			}
			if skill.PointsFromIP == 0 {
				continue
			}
			entry.Invested++
			entry.Points += skill.PointsFromIP
			entry.SkillIP += anarchy.PointCost(skill.PointsFromIP, s.tables.CostFactor(profile.Profession, skillID))
		}
		report.Categories = append(report.Categories, entry)
	}

	unlisted := CategoryBudgetView{Category: unlistedCategory}
	for skillID, skill := range profile.Skills {
		if seen[skillID] || skill.PointsFromIP == 0 {
			continue
		}
		unlisted.Skills++
		unlisted.Invested++
		unlisted.Points += skill.PointsFromIP
		unlisted.SkillIP += anarchy.PointCost(skill.PointsFromIP, s.tables.CostFactor(profile.Profession, skillID))
	}
	if unlisted.Skills > 0 {
		report.Categories = append(report.Categories, unlisted)
	}

	return report, nil
}

// ListSkills returns the trainable-skill catalog, optionally filtered to one
// category (case-insensitive).
func (s *Service) ListSkills(ctx context.Context, category string) ([]SkillCatalogEntry, error) {
	_, span := tracer.Start(ctx, "app.ListSkills")
	defer span.End()

	filter := strings.TrimSpace(category)
	entries := make([]SkillCatalogEntry, 0, len(s.tables.SkillIDs()))
	for _, skillID := range s.tables.SkillIDs() {
		def, ok := s.tables.SkillDef(skillID)
		if !ok {
			continue
		}
		if filter != "" && !strings.EqualFold(def.Category, filter) {
			continue
		}
		entry := SkillCatalogEntry{
			ID:         int(def.ID),
			Name:       def.Name,
			Category:   def.Category,
			BaseValue:  def.BaseValue,
			CostTenths: def.CostTenths,
		}
		for i, tenths := range def.Weights {
			if tenths == 0 {
				continue
			}
			if entry.Trickle == nil {
				entry.Trickle = make(map[string]int)
			}
			entry.Trickle[anarchy.AbilityID(i).String()] = tenths
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}
