package anarchy

import (
	"fmt"
	"strings"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
)

// Character level bounds. Levels outside this range are caller contract
// violations, not data drift, and surface as typed errors.
const (
	LevelMin = 1
	LevelMax = 220
)

// DefaultProfileName is used when a profile is created without a name.
const DefaultProfileName = "New Character"

// DefaultFaction is the faction assigned to fresh profiles.
const DefaultFaction = "Neutral"

var (
	// ErrInvalidLevel indicates a level outside 1..220.
	ErrInvalidLevel = apperrors.New(apperrors.CodePlannerInvalidLevel, fmt.Sprintf("level must be in range %d..%d", LevelMin, LevelMax))
	// ErrUnknownBreed indicates a breed missing from the reference tables.
	ErrUnknownBreed = apperrors.New(apperrors.CodePlannerUnknownBreed, "breed is not in the reference tables")
	// ErrUnknownProfession indicates a profession missing from the reference tables.
	ErrUnknownProfession = apperrors.New(apperrors.CodePlannerUnknownProfession, "profession is not in the reference tables")
	// ErrUnknownAbility indicates an ability ID outside the six core abilities.
	ErrUnknownAbility = apperrors.New(apperrors.CodePlannerUnknownAbility, "ability is not one of the six core abilities")
	// ErrUnknownSkill indicates a skill ID missing from the reference tables.
	ErrUnknownSkill = apperrors.New(apperrors.CodePlannerUnknownSkill, "skill is not in the reference tables")
)

// Profile is the aggregate root: character metadata, the six abilities, all
// trainable skills, and the current budget snapshot. PointsFromIP fields are
// authoritative; everything else is re-derived by Recalculate.
type Profile struct {
	ID         string
	Name       string
	Level      int
	Breed      string
	Profession string
	Faction    string
	Abilities  [AbilityCount]Ability
	Skills     map[SkillID]Skill
	IP         IPTracker
}

// ValidateLevel validates a character level is within 1..220.
func ValidateLevel(level int) error {
	if level < LevelMin || level > LevelMax {
		return apperrors.WithMetadata(
			apperrors.CodePlannerInvalidLevel,
			fmt.Sprintf("level %d must be in range %d..%d", level, LevelMin, LevelMax),
			map[string]string{"Level": fmt.Sprintf("%d", level)},
		)
	}
	return nil
}

// NewDefaultProfile builds a fresh build: abilities at breed base, every
// skill from the tables at its base value, zero IP spent, and all derived
// values recomputed. An empty profession falls back to the tables' default.
func NewDefaultProfile(tables *Tables, name, breedID, professionID string) (*Profile, error) {
	breed, ok := tables.Breed(breedID)
	if !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodePlannerUnknownBreed,
			fmt.Sprintf("breed %q is not in the reference tables", breedID),
			map[string]string{"Breed": breedID},
		)
	}
	if strings.TrimSpace(professionID) == "" {
		professionID = tables.DefaultProfession()
	}
	if _, ok := tables.Profession(professionID); !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodePlannerUnknownProfession,
			fmt.Sprintf("profession %q is not in the reference tables", professionID),
			map[string]string{"Profession": professionID},
		)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultProfileName
	}

	p := &Profile{
		Name:       name,
		Level:      LevelMin,
		Breed:      breedID,
		Profession: professionID,
		Faction:    DefaultFaction,
		Skills:     make(map[SkillID]Skill, len(tables.skillOrder)),
	}
	for i := 0; i < AbilityCount; i++ {
		p.Abilities[i] = Ability{
			Value:     breed.Base[i],
			BreedBase: breed.Base[i],
		}
	}
	for _, id := range tables.skillOrder {
		def := tables.skills[id]
		p.Skills[id] = Skill{
			ID:        id,
			Value:     def.BaseValue,
			BaseValue: def.BaseValue,
		}
	}

	Recalculate(tables, p)
	return p, nil
}

// normalize repairs missing or partial profile data in place so recompute
// passes never fail on older saved shapes: absent skills materialize at base
// value, ability base values re-resolve against the current breed, and
// invested points below zero reset to zero.
func normalize(tables *Tables, p *Profile) {
	if p.Level < LevelMin {
		p.Level = LevelMin
	}
	if p.Level > LevelMax {
		p.Level = LevelMax
	}

	breed, ok := tables.Breed(p.Breed)
	if !ok {
		// Unknown breeds keep whatever bases the profile carried.
		for i := 0; i < AbilityCount; i++ {
			if p.Abilities[i].BreedBase <= 0 {
				p.Abilities[i].BreedBase = 1
			}
		}
	} else {
		for i := 0; i < AbilityCount; i++ {
			p.Abilities[i].BreedBase = breed.Base[i]
		}
	}
	for i := 0; i < AbilityCount; i++ {
		if p.Abilities[i].PointsFromIP < 0 {
			p.Abilities[i].PointsFromIP = 0
		}
	}

	if p.Skills == nil {
		p.Skills = make(map[SkillID]Skill, len(tables.skillOrder))
	}
	for _, id := range tables.skillOrder {
		def := tables.skills[id]
		skill, present := p.Skills[id]
		if !present {
			p.Skills[id] = Skill{ID: id, Value: def.BaseValue, BaseValue: def.BaseValue}
			continue
		}
		skill.ID = id
		skill.BaseValue = def.BaseValue
		if skill.PointsFromIP < 0 {
			skill.PointsFromIP = 0
		}
		p.Skills[id] = skill
	}
	for id, skill := range p.Skills {
		if _, known := tables.skills[id]; known {
			continue
		}
		// Skills the tables no longer know keep their invested points and
		// base value so the ledger still prices them.
		skill.ID = id
		if skill.BaseValue < 0 {
			skill.BaseValue = 0
		}
		if skill.PointsFromIP < 0 {
			skill.PointsFromIP = 0
		}
		p.Skills[id] = skill
	}
}
