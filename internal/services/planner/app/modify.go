package app

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
)

// SetLevel changes a profile's level, recomputes all derived state, and
// persists the result. Invested points above the new level's ceilings are
// shaved back automatically.
func (s *Service) SetLevel(ctx context.Context, profileID string, level int) (ProfileView, error) {
	ctx, span := tracer.Start(ctx, "app.SetLevel")
	defer span.End()
	span.SetAttributes(attribute.String("profile.id", profileID))

	record, profile, err := s.load(ctx, profileID)
	if err != nil {
		return ProfileView{}, err
	}
	if err := anarchy.SetLevel(s.tables, profile, level); err != nil {
		return ProfileView{}, err
	}
	return s.persist(ctx, profile, record.CreatedAt)
}

// SetAbilityParams targets one core ability by name.
type SetAbilityParams struct {
	ProfileID string
	Ability   string
	Target    int
}

// SetAbility moves an ability toward the target value, clamping to breed
// floor, ability cap, and the remaining IP budget. The adjustment reports
// what was applied and why it differs from the request.
func (s *Service) SetAbility(ctx context.Context, params SetAbilityParams) (ProfileView, AdjustmentView, error) {
	ctx, span := tracer.Start(ctx, "app.SetAbility")
	defer span.End()
	span.SetAttributes(attribute.String("profile.id", params.ProfileID))

	abilityID, err := anarchy.ParseAbility(params.Ability)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}

	record, profile, err := s.load(ctx, params.ProfileID)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	adj, err := anarchy.ModifyAbility(s.tables, profile, abilityID, params.Target)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	view, err := s.persist(ctx, profile, record.CreatedAt)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	return view, adjustmentView(adj), nil
}

// SetSkillParams targets one skill by numeric ID or, when Skill is set, by
// catalog name.
type SetSkillParams struct {
	ProfileID string
	SkillID   int
	Skill     string
	Target    int
}

// SetSkill moves a skill toward the target value, clamping to the trickle
// floor, the level-driven ceiling, and the remaining IP budget.
func (s *Service) SetSkill(ctx context.Context, params SetSkillParams) (ProfileView, AdjustmentView, error) {
	ctx, span := tracer.Start(ctx, "app.SetSkill")
	defer span.End()
	span.SetAttributes(attribute.String("profile.id", params.ProfileID))

	skillID, err := s.resolveSkill(params.SkillID, params.Skill)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}

	record, profile, err := s.load(ctx, params.ProfileID)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	adj, err := anarchy.ModifySkill(s.tables, profile, skillID, params.Target)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	view, err := s.persist(ctx, profile, record.CreatedAt)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	return view, adjustmentView(adj), nil
}

// ResetSkill withdraws every invested point from a skill, dropping it back
// to its trickle floor and refunding the IP.
func (s *Service) ResetSkill(ctx context.Context, profileID string, skillID int, skill string) (ProfileView, AdjustmentView, error) {
	ctx, span := tracer.Start(ctx, "app.ResetSkill")
	defer span.End()
	span.SetAttributes(attribute.String("profile.id", profileID))

	resolved, err := s.resolveSkill(skillID, skill)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}

	record, profile, err := s.load(ctx, profileID)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	// Target zero always clamps up to the floor, which is exactly the
	// zero-invested state.
	adj, err := anarchy.ModifySkill(s.tables, profile, resolved, 0)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	view, err := s.persist(ctx, profile, record.CreatedAt)
	if err != nil {
		return ProfileView{}, AdjustmentView{}, err
	}
	return view, adjustmentView(adj), nil
}

// resolveSkill maps a name or numeric ID onto the catalog.
func (s *Service) resolveSkill(skillID int, name string) (anarchy.SkillID, error) {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		def, ok := s.tables.SkillByName(trimmed)
		if !ok {
			return 0, apperrors.WithMetadata(
				apperrors.CodePlannerUnknownSkill,
				fmt.Sprintf("skill %q is not in the reference tables", trimmed),
				map[string]string{"Skill": trimmed},
			)
		}
		return def.ID, nil
	}
	return anarchy.SkillID(skillID), nil
}
