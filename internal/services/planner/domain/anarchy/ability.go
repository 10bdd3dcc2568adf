// Package anarchy implements the deterministic build rules engine: six core
// abilities feed skills through weighted trickle-down, caps bound every stat
// by breed, profession, and level, and a full-recompute pass keeps the
// Improvement Point ledger consistent after every edit.
package anarchy

import (
	"fmt"
	"strings"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
)

// AbilityID indexes one of the six core abilities.
type AbilityID int

const (
	AbilityStrength AbilityID = iota
	AbilityAgility
	AbilityStamina
	AbilityIntelligence
	AbilitySense
	AbilityPsychic

	// AbilityCount is the fixed number of core abilities.
	AbilityCount = 6
)

var abilityNames = [AbilityCount]string{
	"Strength",
	"Agility",
	"Stamina",
	"Intelligence",
	"Sense",
	"Psychic",
}

// String returns the canonical ability name.
func (a AbilityID) String() string {
	if !a.Valid() {
		return fmt.Sprintf("ability(%d)", int(a))
	}
	return abilityNames[a]
}

// Valid reports whether the ID addresses one of the six abilities.
func (a AbilityID) Valid() bool {
	return a >= 0 && a < AbilityCount
}

// AbilityIDs returns the six ability IDs in canonical order.
func AbilityIDs() [AbilityCount]AbilityID {
	return [AbilityCount]AbilityID{
		AbilityStrength,
		AbilityAgility,
		AbilityStamina,
		AbilityIntelligence,
		AbilitySense,
		AbilityPsychic,
	}
}

// ParseAbility resolves a canonical ability name, case-insensitively.
func ParseAbility(name string) (AbilityID, error) {
	trimmed := strings.TrimSpace(name)
	for i, candidate := range abilityNames {
		if strings.EqualFold(candidate, trimmed) {
			return AbilityID(i), nil
		}
	}
	return 0, apperrors.WithMetadata(
		apperrors.CodePlannerUnknownAbility,
		fmt.Sprintf("ability %q is not one of the six core abilities", name),
		map[string]string{"Ability": name},
	)
}

// Ability holds one core ability on a profile.
//
// Value is derived: Value == BreedBase + PointsFromIP after a recompute, and
// Value never exceeds Cap. PointsFromIP is the authoritative field.
type Ability struct {
	Value        int
	PointsFromIP int
	Cap          int
	BreedBase    int
}
