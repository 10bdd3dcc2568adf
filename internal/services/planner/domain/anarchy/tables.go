package anarchy

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
)

// Breed is immutable reference data: base ability values, per-level cap
// growth, hard ceilings, and ability cost factors.
type Breed struct {
	ID   string
	Name string
	// Base holds the starting (and minimum) value per ability.
	Base [AbilityCount]int
	// GrowthTenths holds cap growth per level in tenths of a point.
	GrowthTenths [AbilityCount]int
	// HardCap bounds the ability cap regardless of level.
	HardCap [AbilityCount]int
	// CostTenths holds the IP cost factor per invested ability point.
	CostTenths [AbilityCount]int
}

// Profession is immutable reference data: cap shifts and the skills the
// profession trains cheaply.
type Profession struct {
	ID   string
	Name string
	// CapShift adjusts ability caps per ability.
	CapShift [AbilityCount]int
	// Specializations maps skill IDs to a discounted cost factor in tenths.
	// A specialized skill is cheaper per point and gains more room per level.
	Specializations map[SkillID]int
}

// SkillDef is immutable reference data for one trainable skill.
type SkillDef struct {
	ID        SkillID
	Name      string
	Category  string
	BaseValue int
	// CostTenths is the default IP cost factor per invested point, before
	// profession specialization discounts.
	CostTenths int
	// Weights is the six-element trickle-down weight vector in tenths.
	Weights Weights
}

// IPBracket is one contiguous run of levels granting the same IP per level.
type IPBracket struct {
	From     int
	To       int
	PerLevel int
}

// IPSchedule is the cumulative Improvement Point grant table. Base is the
// budget at level 1; each bracket adds PerLevel for every level gained in
// [From, To].
type IPSchedule struct {
	Base     int
	Brackets []IPBracket
}

// Tables is the immutable reference data set injected into every engine
// operation: breeds, professions, the skill registry, and the IP schedule.
// Build one with NewTables and never mutate the inputs afterwards.
type Tables struct {
	breeds       map[string]Breed
	professions  map[string]Profession
	skills       map[SkillID]SkillDef
	skillsByName map[string]SkillID
	skillOrder   []SkillID
	categories   []string
	schedule     IPSchedule
	defaultProf  string
}

// NewTables indexes and freezes reference data. The first profession in the
// slice becomes the default for profiles created without one.
func NewTables(breeds []Breed, professions []Profession, skills []SkillDef, schedule IPSchedule) (*Tables, error) {
	if len(breeds) == 0 {
		return nil, apperrors.New(apperrors.CodeContentInvalidPack, "at least one breed is required")
	}
	if len(professions) == 0 {
		return nil, apperrors.New(apperrors.CodeContentInvalidPack, "at least one profession is required")
	}
	if len(skills) == 0 {
		return nil, apperrors.New(apperrors.CodeContentInvalidPack, "at least one skill is required")
	}
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	t := &Tables{
		breeds:       make(map[string]Breed, len(breeds)),
		professions:  make(map[string]Profession, len(professions)),
		skills:       make(map[SkillID]SkillDef, len(skills)),
		skillsByName: make(map[string]SkillID, len(skills)),
		schedule:     cloneSchedule(schedule),
		defaultProf:  professions[0].ID,
	}

	for _, breed := range breeds {
		if strings.TrimSpace(breed.ID) == "" {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, "breed id is required")
		}
		if _, exists := t.breeds[breed.ID]; exists {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("duplicate breed %q", breed.ID))
		}
		for i := 0; i < AbilityCount; i++ {
			if breed.Base[i] <= 0 || breed.GrowthTenths[i] < 0 || breed.HardCap[i] < breed.Base[i] || breed.CostTenths[i] <= 0 {
				return nil, apperrors.WithMetadata(
					apperrors.CodeContentInvalidPack,
					fmt.Sprintf("breed %q has invalid %s parameters", breed.ID, AbilityID(i)),
					map[string]string{"Breed": breed.ID, "Ability": AbilityID(i).String()},
				)
			}
		}
		t.breeds[breed.ID] = breed
	}

	for _, skill := range skills {
		if strings.TrimSpace(skill.Name) == "" {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("skill %d has no name", skill.ID))
		}
		if skill.BaseValue < 0 || skill.CostTenths <= 0 {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("skill %q has invalid base or cost", skill.Name))
		}
		for _, w := range skill.Weights {
			if w < 0 {
				return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("skill %q has a negative trickle weight", skill.Name))
			}
		}
		if _, exists := t.skills[skill.ID]; exists {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("duplicate skill id %d", skill.ID))
		}
		nameKey := strings.ToLower(skill.Name)
		if _, exists := t.skillsByName[nameKey]; exists {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("duplicate skill name %q", skill.Name))
		}
		t.skills[skill.ID] = skill
		t.skillsByName[nameKey] = skill.ID
		t.skillOrder = append(t.skillOrder, skill.ID)
	}
	sort.Slice(t.skillOrder, func(i, j int) bool { return t.skillOrder[i] < t.skillOrder[j] })

	seenCategories := make(map[string]bool)
	for _, id := range t.skillOrder {
		category := t.skills[id].Category
		if !seenCategories[category] {
			seenCategories[category] = true
			t.categories = append(t.categories, category)
		}
	}

	for _, prof := range professions {
		if strings.TrimSpace(prof.ID) == "" {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, "profession id is required")
		}
		if _, exists := t.professions[prof.ID]; exists {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("duplicate profession %q", prof.ID))
		}
		specializations := make(map[SkillID]int, len(prof.Specializations))
		for skillID, factor := range prof.Specializations {
			if _, known := t.skills[skillID]; !known {
				return nil, apperrors.WithMetadata(
					apperrors.CodeContentInvalidPack,
					fmt.Sprintf("profession %q specializes unknown skill %d", prof.ID, skillID),
					map[string]string{"Profession": prof.ID, "Skill": fmt.Sprintf("%d", skillID)},
				)
			}
			if factor <= 0 {
				return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("profession %q has invalid factor for skill %d", prof.ID, skillID))
			}
			specializations[skillID] = factor
		}
		prof.Specializations = specializations
		t.professions[prof.ID] = prof
	}

	return t, nil
}

func validateSchedule(schedule IPSchedule) error {
	if schedule.Base <= 0 {
		return apperrors.New(apperrors.CodeContentInvalidPack, "ip schedule base must be positive")
	}
	previousTo := 1
	for _, bracket := range schedule.Brackets {
		if bracket.From != previousTo+1 {
			return apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("ip schedule bracket starting at %d is not contiguous", bracket.From))
		}
		if bracket.To < bracket.From {
			return apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("ip schedule bracket %d..%d is inverted", bracket.From, bracket.To))
		}
		if bracket.PerLevel <= 0 {
			return apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("ip schedule bracket %d..%d grants no points", bracket.From, bracket.To))
		}
		previousTo = bracket.To
	}
	if previousTo < LevelMax {
		return apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("ip schedule stops at level %d, want %d", previousTo, LevelMax))
	}
	return nil
}

func cloneSchedule(schedule IPSchedule) IPSchedule {
	out := IPSchedule{Base: schedule.Base}
	out.Brackets = append([]IPBracket(nil), schedule.Brackets...)
	return out
}

// Breed resolves a breed by ID.
func (t *Tables) Breed(id string) (Breed, bool) {
	breed, ok := t.breeds[id]
	return breed, ok
}

// Profession resolves a profession by ID.
func (t *Tables) Profession(id string) (Profession, bool) {
	prof, ok := t.professions[id]
	return prof, ok
}

// DefaultProfession returns the profession used when none is requested.
func (t *Tables) DefaultProfession() string {
	return t.defaultProf
}

// SkillDef resolves a skill definition by numeric ID.
func (t *Tables) SkillDef(id SkillID) (SkillDef, bool) {
	def, ok := t.skills[id]
	return def, ok
}

// SkillByName resolves a skill definition by canonical name, case-insensitively.
func (t *Tables) SkillByName(name string) (SkillDef, bool) {
	id, ok := t.skillsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return SkillDef{}, false
	}
	return t.skills[id], true
}

// SkillIDs returns all skill IDs in ascending order.
func (t *Tables) SkillIDs() []SkillID {
	return append([]SkillID(nil), t.skillOrder...)
}

// Categories returns the skill category names in first-seen skill-ID order.
func (t *Tables) Categories() []string {
	return append([]string(nil), t.categories...)
}

// SkillsInCategory returns the IDs of every skill in the named category.
func (t *Tables) SkillsInCategory(category string) []SkillID {
	var ids []SkillID
	for _, id := range t.skillOrder {
		if t.skills[id].Category == category {
			ids = append(ids, id)
		}
	}
	return ids
}

// BreedIDs returns all breed IDs in ascending order.
func (t *Tables) BreedIDs() []string {
	ids := make([]string, 0, len(t.breeds))
	for id := range t.breeds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ProfessionIDs returns all profession IDs in ascending order.
func (t *Tables) ProfessionIDs() []string {
	ids := make([]string, 0, len(t.professions))
	for id := range t.professions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CostFactor returns the effective IP cost factor in tenths for a skill under
// a profession: the specialization discount when present, the skill default
// otherwise. Unknown skills fall back to DefaultSkillCostTenths so older
// profile shapes stay priceable.
func (t *Tables) CostFactor(professionID string, skillID SkillID) int {
	if prof, ok := t.professions[professionID]; ok {
		if factor, ok := prof.Specializations[skillID]; ok {
			return factor
		}
	}
	if def, ok := t.skills[skillID]; ok {
		return def.CostTenths
	}
	return DefaultSkillCostTenths
}

// Specialized reports whether the profession trains the skill at a discount.
func (t *Tables) Specialized(professionID string, skillID SkillID) bool {
	prof, ok := t.professions[professionID]
	if !ok {
		return false
	}
	_, ok = prof.Specializations[skillID]
	return ok
}

// AbilityCostFactor returns the breed's IP cost factor in tenths for one
// ability point. Unknown breeds price at DefaultAbilityCostTenths.
func (t *Tables) AbilityCostFactor(breedID string, ability AbilityID) int {
	breed, ok := t.breeds[breedID]
	if !ok || !ability.Valid() {
		return DefaultAbilityCostTenths
	}
	return breed.CostTenths[ability]
}

// Schedule returns a copy of the IP grant schedule.
func (t *Tables) Schedule() IPSchedule {
	return cloneSchedule(t.schedule)
}

// AbilityName resolves an ability ID to its canonical name, completing the
// bidirectional registry next to ParseAbility and SkillByName.
func (t *Tables) AbilityName(id AbilityID) (string, bool) {
	if !id.Valid() {
		return "", false
	}
	return id.String(), true
}
