package anarchy

import (
	"errors"
	"testing"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
)

var errInvalidPack = apperrors.New(apperrors.CodeContentInvalidPack, "")

func TestNewTablesRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*[]Breed, *[]Profession, *[]SkillDef, *IPSchedule)
	}{
		{"no breeds", func(b *[]Breed, _ *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			*b = nil
		}},
		{"no professions", func(_ *[]Breed, p *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			*p = nil
		}},
		{"no skills", func(_ *[]Breed, _ *[]Profession, s *[]SkillDef, _ *IPSchedule) {
			*s = nil
		}},
		{"duplicate breed id", func(b *[]Breed, _ *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			*b = append(*b, (*b)[0])
		}},
		{"blank breed id", func(b *[]Breed, _ *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			(*b)[0].ID = "  "
		}},
		{"zero breed base", func(b *[]Breed, _ *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			(*b)[0].Base[2] = 0
		}},
		{"hard cap below base", func(b *[]Breed, _ *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			(*b)[0].HardCap[0] = (*b)[0].Base[0] - 1
		}},
		{"free ability points", func(b *[]Breed, _ *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			(*b)[0].CostTenths[1] = 0
		}},
		{"duplicate profession id", func(_ *[]Breed, p *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			*p = append(*p, (*p)[0])
		}},
		{"specialization for unknown skill", func(_ *[]Breed, p *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			(*p)[0].Specializations = map[SkillID]int{8888: 10}
		}},
		{"specialization with free points", func(_ *[]Breed, p *[]Profession, _ *[]SkillDef, _ *IPSchedule) {
			(*p)[0].Specializations = map[SkillID]int{testSkillSwimming: 0}
		}},
		{"duplicate skill id", func(_ *[]Breed, _ *[]Profession, s *[]SkillDef, _ *IPSchedule) {
			*s = append(*s, (*s)[0])
		}},
		{"duplicate skill name", func(_ *[]Breed, _ *[]Profession, s *[]SkillDef, _ *IPSchedule) {
			dup := (*s)[0]
			dup.ID = 9001
			dup.Name = (*s)[1].Name
			*s = append(*s, dup)
		}},
		{"nameless skill", func(_ *[]Breed, _ *[]Profession, s *[]SkillDef, _ *IPSchedule) {
			(*s)[0].Name = ""
		}},
		{"free skill points", func(_ *[]Breed, _ *[]Profession, s *[]SkillDef, _ *IPSchedule) {
			(*s)[0].CostTenths = 0
		}},
		{"negative trickle weight", func(_ *[]Breed, _ *[]Profession, s *[]SkillDef, _ *IPSchedule) {
			(*s)[0].Weights[3] = -1
		}},
		{"schedule base zero", func(_ *[]Breed, _ *[]Profession, _ *[]SkillDef, sch *IPSchedule) {
			sch.Base = 0
		}},
		{"schedule gap", func(_ *[]Breed, _ *[]Profession, _ *[]SkillDef, sch *IPSchedule) {
			sch.Brackets[1].From++
		}},
		{"schedule stops early", func(_ *[]Breed, _ *[]Profession, _ *[]SkillDef, sch *IPSchedule) {
			sch.Brackets = sch.Brackets[:len(sch.Brackets)-1]
		}},
		{"schedule grants nothing", func(_ *[]Breed, _ *[]Profession, _ *[]SkillDef, sch *IPSchedule) {
			sch.Brackets[0].PerLevel = 0
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			breeds := testBreeds()
			professions := testProfessions()
			skills := testSkills()
			schedule := testSchedule()
			tc.mutate(&breeds, &professions, &skills, &schedule)

			_, err := NewTables(breeds, professions, skills, schedule)
			if !errors.Is(err, errInvalidPack) {
				t.Fatalf("err = %v, want invalid pack", err)
			}
		})
	}
}

func TestTablesRegistryLookups(t *testing.T) {
	tables := testTables(t)

	if got := tables.DefaultProfession(); got != "adventurer" {
		t.Fatalf("default profession = %q, want first listed", got)
	}

	// Numeric ID and canonical name must resolve to the same definition.
	for _, id := range tables.SkillIDs() {
		def, ok := tables.SkillDef(id)
		if !ok {
			t.Fatalf("SkillDef(%d) missing", id)
		}
		byName, ok := tables.SkillByName(def.Name)
		if !ok || byName.ID != id {
			t.Fatalf("SkillByName(%q) = %+v, want id %d", def.Name, byName, id)
		}
	}
	if _, ok := tables.SkillByName("  pIsToL "); !ok {
		t.Fatal("SkillByName must trim and ignore case")
	}
	if _, ok := tables.SkillByName("Underwater Basket Weaving"); ok {
		t.Fatal("SkillByName resolved a skill that does not exist")
	}

	for _, name := range []string{"stamina", "STAMINA", " Stamina "} {
		id, err := ParseAbility(name)
		if err != nil || id != AbilityStamina {
			t.Fatalf("ParseAbility(%q) = %v, %v", name, id, err)
		}
	}
	if _, err := ParseAbility("luck"); !errors.Is(err, ErrUnknownAbility) {
		t.Fatalf("ParseAbility(luck) err = %v, want ErrUnknownAbility", err)
	}
	if name, ok := tables.AbilityName(AbilityPsychic); !ok || name != "Psychic" {
		t.Fatalf("AbilityName(Psychic) = %q, %v", name, ok)
	}
	if _, ok := tables.AbilityName(AbilityID(17)); ok {
		t.Fatal("AbilityName resolved an out-of-range id")
	}

	wantBreeds := []string{"atrox", "solitus"}
	gotBreeds := tables.BreedIDs()
	if len(gotBreeds) != len(wantBreeds) {
		t.Fatalf("BreedIDs = %v, want %v", gotBreeds, wantBreeds)
	}
	for i, id := range wantBreeds {
		if gotBreeds[i] != id {
			t.Fatalf("BreedIDs = %v, want %v", gotBreeds, wantBreeds)
		}
	}

	categories := tables.Categories()
	seen := make(map[string]bool)
	total := 0
	for _, category := range categories {
		if seen[category] {
			t.Fatalf("category %q listed twice", category)
		}
		seen[category] = true
		ids := tables.SkillsInCategory(category)
		if len(ids) == 0 {
			t.Fatalf("category %q has no skills", category)
		}
		for _, id := range ids {
			def, _ := tables.SkillDef(id)
			if def.Category != category {
				t.Fatalf("skill %d filed under %q, want %q", id, category, def.Category)
			}
		}
		total += len(ids)
	}
	if total != len(tables.SkillIDs()) {
		t.Fatalf("categories cover %d skills, want %d", total, len(tables.SkillIDs()))
	}
}

func TestCostFactorSpecialization(t *testing.T) {
	tables := testTables(t)

	if got := tables.CostFactor("adventurer", testSkillSwimming); got != 10 {
		t.Fatalf("specialized factor = %d, want 10", got)
	}
	if got := tables.CostFactor("soldier", testSkillSwimming); got != 12 {
		t.Fatalf("unspecialized factor = %d, want skill default 12", got)
	}
	if got := tables.CostFactor("adventurer", 7777); got != DefaultSkillCostTenths {
		t.Fatalf("unknown skill factor = %d, want fallback %d", got, DefaultSkillCostTenths)
	}
	if !tables.Specialized("soldier", testSkillRifle) {
		t.Fatal("soldier must specialize in rifle")
	}
	if tables.Specialized("adventurer", testSkillRifle) {
		t.Fatal("adventurer must not specialize in rifle")
	}
	if tables.Specialized("monk", testSkillRifle) {
		t.Fatal("unknown profession cannot specialize")
	}

	if got := tables.AbilityCostFactor("atrox", AbilityStrength); got != 15 {
		t.Fatalf("atrox strength factor = %d, want 15", got)
	}
	if got := tables.AbilityCostFactor("nanomage", AbilityStrength); got != DefaultAbilityCostTenths {
		t.Fatalf("unknown breed factor = %d, want fallback %d", got, DefaultAbilityCostTenths)
	}
}

func TestTablesReturnCopies(t *testing.T) {
	tables := testTables(t)

	ids := tables.SkillIDs()
	ids[0] = 31337
	if tables.SkillIDs()[0] == 31337 {
		t.Fatal("SkillIDs leaked internal storage")
	}

	schedule := tables.Schedule()
	schedule.Brackets[0].PerLevel = 0
	if tables.Schedule().Brackets[0].PerLevel == 0 {
		t.Fatal("Schedule leaked internal storage")
	}

	categories := tables.Categories()
	if len(categories) > 0 {
		categories[0] = "Mutated"
		if tables.Categories()[0] == "Mutated" {
			t.Fatal("Categories leaked internal storage")
		}
	}
}
