package app

import (
	"sort"
	"time"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/storage"
)

// AbilityView is the computed state of one core ability.
type AbilityView struct {
	ID           int
	Name         string
	Value        int
	PointsFromIP int
	Cap          int
	BreedBase    int
	// CostTenths is the breed's IP cost factor for this ability, in tenths.
	CostTenths int
}

// SkillView is the computed state of one trainable skill.
type SkillView struct {
	ID           int
	Name         string
	Category     string
	Value        int
	BaseValue    int
	TrickleDown  int
	PointsFromIP int
	Cap          int
	// CostTenths is the effective IP cost factor for the profile's
	// profession, in tenths, including specialization discounts.
	CostTenths int
}

// BudgetView is the profile's Improvement Point ledger.
type BudgetView struct {
	TotalAvailable int
	TotalUsed      int
	AbilityIP      int
	SkillIP        int
	Remaining      int
	Efficiency     float64
}

// ProfileView is the fully recomputed state of one saved build.
type ProfileView struct {
	ID         string
	Name       string
	Level      int
	Breed      string
	Profession string
	Faction    string
	Abilities  [anarchy.AbilityCount]AbilityView
	// Skills is ordered by skill ID. Skills the reference tables no longer
	// list keep their invested points and appear with an empty category.
	Skills    []SkillView
	Budget    BudgetView
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileSummaryView is the metadata-only view used by list operations.
type ProfileSummaryView struct {
	ID         string
	Name       string
	Level      int
	Breed      string
	Profession string
	Faction    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfileListView is one page of profile summaries.
type ProfileListView struct {
	Profiles      []ProfileSummaryView
	NextPageToken string
}

// AdjustmentView reports the outcome of a modify operation.
type AdjustmentView struct {
	Kind      string
	Stat      string
	Requested int
	Applied   int
	Clamped   bool
	Reason    string
}

// CategoryBudgetView aggregates invested IP for one skill category.
type CategoryBudgetView struct {
	Category string
	// Skills is the number of catalog skills in the category.
	Skills int
	// Invested is the number of skills with at least one invested point.
	Invested int
	// Points is the total invested points across the category.
	Points int
	// SkillIP is the total IP spent across the category.
	SkillIP int
	// AtCap is the number of skills sitting exactly at their current cap.
	AtCap int
}

// ReportView is the IP report for one saved build.
type ReportView struct {
	ProfileID  string
	Name       string
	Level      int
	Breed      string
	Profession string
	Budget     BudgetView
	Categories []CategoryBudgetView
}

// SkillCatalogEntry describes one trainable skill from the reference tables.
type SkillCatalogEntry struct {
	ID        int
	Name      string
	Category  string
	BaseValue int
	// CostTenths is the default cost factor before profession discounts.
	CostTenths int
	// Trickle maps ability names to trickle-down weights in tenths; only
	// contributing abilities appear.
	Trickle map[string]int
}

func budgetView(tracker anarchy.IPTracker) BudgetView {
	return BudgetView{
		TotalAvailable: tracker.TotalAvailable,
		TotalUsed:      tracker.TotalUsed,
		AbilityIP:      tracker.AbilityIP,
		SkillIP:        tracker.SkillIP,
		Remaining:      tracker.Remaining,
		Efficiency:     tracker.Efficiency,
	}
}

func adjustmentView(adj anarchy.Adjustment) AdjustmentView {
	return AdjustmentView{
		Kind:      string(adj.Kind),
		Stat:      adj.Name,
		Requested: adj.Requested,
		Applied:   adj.Applied,
		Clamped:   adj.Clamped,
		Reason:    string(adj.Reason),
	}
}

func summaryView(summary storage.ProfileSummary) ProfileSummaryView {
	return ProfileSummaryView{
		ID:         summary.ID,
		Name:       summary.Name,
		Level:      summary.Level,
		Breed:      summary.Breed,
		Profession: summary.Profession,
		Faction:    summary.Faction,
		CreatedAt:  summary.CreatedAt,
		UpdatedAt:  summary.UpdatedAt,
	}
}

// profileView renders the recomputed profile with table metadata attached.
func (s *Service) profileView(p *anarchy.Profile, createdAt, updatedAt time.Time) ProfileView {
	view := ProfileView{
		ID:         p.ID,
		Name:       p.Name,
		Level:      p.Level,
		Breed:      p.Breed,
		Profession: p.Profession,
		Faction:    p.Faction,
		Budget:     budgetView(p.IP),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}

	for i := range p.Abilities {
		id := anarchy.AbilityID(i)
		view.Abilities[i] = AbilityView{
			ID:           i,
			Name:         id.String(),
			Value:        p.Abilities[i].Value,
			PointsFromIP: p.Abilities[i].PointsFromIP,
			Cap:          p.Abilities[i].Cap,
			BreedBase:    p.Abilities[i].BreedBase,
			CostTenths:   s.tables.AbilityCostFactor(p.Breed, id),
		}
	}

	view.Skills = make([]SkillView, 0, len(p.Skills))
	for skillID, skill := range p.Skills {
		entry := SkillView{
			ID:           int(skillID),
			Value:        skill.Value,
			BaseValue:    skill.BaseValue,
			TrickleDown:  skill.TrickleDown,
			PointsFromIP: skill.PointsFromIP,
			Cap:          skill.Cap,
			CostTenths:   s.tables.CostFactor(p.Profession, skillID),
		}
		if def, ok := s.tables.SkillDef(skillID); ok {
			entry.Name = def.Name
			entry.Category = def.Category
		}
		view.Skills = append(view.Skills, entry)
	}
	sort.Slice(view.Skills, func(i, j int) bool {
		return view.Skills[i].ID < view.Skills[j].ID
	})

	return view
}
