package anarchy

import (
	"fmt"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
)

// StatKind distinguishes ability adjustments from skill adjustments.
type StatKind string

const (
	StatAbility StatKind = "ability"
	StatSkill   StatKind = "skill"
)

// ClampReason names why a requested value was not applied as-is.
type ClampReason string

const (
	ClampNone   ClampReason = ""
	ClampCap    ClampReason = "cap"
	ClampFloor  ClampReason = "floor"
	ClampBudget ClampReason = "budget"
)

// Adjustment reports the outcome of a modify operation: what the caller
// asked for, what the engine applied, and why they differ. Out-of-range
// requests clamp and report instead of failing, so callers can surface
// "you tried to exceed your cap" without aborting the edit.
type Adjustment struct {
	Kind      StatKind
	Ability   AbilityID
	Skill     SkillID
	Name      string
	Requested int
	Applied   int
	Clamped   bool
	Reason    ClampReason
}

// ModifyAbility adjusts an ability's invested points so its value reaches
// target, clamped to the breed floor, the ability cap, and the remaining IP
// budget, then reruns the full recompute. Unknown ability IDs are contract
// violations.
func ModifyAbility(tables *Tables, p *Profile, id AbilityID, target int) (Adjustment, error) {
	if !id.Valid() {
		return Adjustment{}, apperrors.WithMetadata(
			apperrors.CodePlannerUnknownAbility,
			fmt.Sprintf("ability id %d is not one of the six core abilities", int(id)),
			map[string]string{"Ability": fmt.Sprintf("%d", int(id))},
		)
	}
	Recalculate(tables, p)

	ability := p.Abilities[id]
	adj := Adjustment{Kind: StatAbility, Ability: id, Name: id.String(), Requested: target}

	value := target
	if value > ability.Cap {
		value = ability.Cap
		adj.Reason = ClampCap
	}
	if value < ability.BreedBase {
		value = ability.BreedBase
		adj.Reason = ClampFloor
	}

	points := value - ability.BreedBase
	if points > ability.PointsFromIP {
		factor := tables.AbilityCostFactor(p.Breed, id)
		budget := p.IP.Remaining + PointCost(ability.PointsFromIP, factor)
		affordable := MaxPointsWithin(budget, factor)
		if affordable < ability.PointsFromIP {
			affordable = ability.PointsFromIP
		}
		if points > affordable {
			points = affordable
			adj.Reason = ClampBudget
		}
	}

	p.Abilities[id].PointsFromIP = points
	Recalculate(tables, p)

	adj.Applied = p.Abilities[id].Value
	adj.Clamped = adj.Applied != adj.Requested
	if !adj.Clamped {
		adj.Reason = ClampNone
	}
	return adj, nil
}

// ModifySkill adjusts a skill's invested points so its value reaches target,
// clamped to the trickle floor, the level-driven ceiling, and the remaining
// IP budget, then reruns the full recompute. Skill IDs missing from the
// reference tables are contract violations.
func ModifySkill(tables *Tables, p *Profile, id SkillID, target int) (Adjustment, error) {
	def, known := tables.SkillDef(id)
	if !known {
		return Adjustment{}, apperrors.WithMetadata(
			apperrors.CodePlannerUnknownSkill,
			fmt.Sprintf("skill id %d is not in the reference tables", int(id)),
			map[string]string{"Skill": fmt.Sprintf("%d", int(id))},
		)
	}
	Recalculate(tables, p)

	skill := p.Skills[id]
	adj := Adjustment{Kind: StatSkill, Skill: id, Name: def.Name, Requested: target}

	floor := skill.BaseValue + skill.TrickleDown
	factor := tables.CostFactor(p.Profession, id)
	rate := RatePerLevel(factor, tables.Specialized(p.Profession, id))
	ceiling := LevelLimit(skill.BaseValue, p.Level, rate)

	value := target
	if value > ceiling {
		value = ceiling
		adj.Reason = ClampCap
	}
	if value < floor {
		value = floor
		adj.Reason = ClampFloor
	}

	points := value - floor
	if points > skill.PointsFromIP {
		budget := p.IP.Remaining + PointCost(skill.PointsFromIP, factor)
		affordable := MaxPointsWithin(budget, factor)
		if affordable < skill.PointsFromIP {
			affordable = skill.PointsFromIP
		}
		if points > affordable {
			points = affordable
			adj.Reason = ClampBudget
		}
	}

	skill.PointsFromIP = points
	p.Skills[id] = skill
	Recalculate(tables, p)

	adj.Applied = p.Skills[id].Value
	adj.Clamped = adj.Applied != adj.Requested
	if !adj.Clamped {
		adj.Reason = ClampNone
	}
	return adj, nil
}

// InvestAbility raises or lowers an ability by delta points of value.
func InvestAbility(tables *Tables, p *Profile, id AbilityID, delta int) (Adjustment, error) {
	if !id.Valid() {
		return Adjustment{}, apperrors.WithMetadata(
			apperrors.CodePlannerUnknownAbility,
			fmt.Sprintf("ability id %d is not one of the six core abilities", int(id)),
			map[string]string{"Ability": fmt.Sprintf("%d", int(id))},
		)
	}
	return ModifyAbility(tables, p, id, p.Abilities[id].Value+delta)
}

// InvestSkill raises or lowers a skill by delta points of value.
func InvestSkill(tables *Tables, p *Profile, id SkillID, delta int) (Adjustment, error) {
	skill, ok := p.Skills[id]
	if !ok {
		skill = Skill{}
		if def, known := tables.SkillDef(id); known {
			skill.Value = def.BaseValue
		}
	}
	return ModifySkill(tables, p, id, skill.Value+delta)
}
