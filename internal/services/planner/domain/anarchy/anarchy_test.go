package anarchy

import "testing"

// Test fixture IDs, loosely following the game's stat numbering.
const (
	testSkillBodyDev  SkillID = 152
	testSkillOneHand  SkillID = 102
	testSkillPistol   SkillID = 112
	testSkillRifle    SkillID = 113
	testSkillFirstAid SkillID = 127
	testSkillSwimming SkillID = 138
)

func testBreeds() []Breed {
	return []Breed{
		{
			ID:           "solitus",
			Name:         "Solitus",
			Base:         [AbilityCount]int{6, 6, 6, 6, 6, 6},
			GrowthTenths: [AbilityCount]int{6, 6, 6, 6, 6, 6},
			HardCap:      [AbilityCount]int{480, 480, 480, 480, 480, 480},
			CostTenths:   [AbilityCount]int{20, 20, 20, 20, 20, 20},
		},
		{
			ID:           "atrox",
			Name:         "Atrox",
			Base:         [AbilityCount]int{15, 6, 10, 3, 3, 3},
			GrowthTenths: [AbilityCount]int{7, 6, 7, 5, 5, 4},
			HardCap:      [AbilityCount]int{544, 480, 544, 448, 448, 416},
			CostTenths:   [AbilityCount]int{15, 20, 15, 28, 20, 30},
		},
	}
}

func testProfessions() []Profession {
	return []Profession{
		{
			ID:   "adventurer",
			Name: "Adventurer",
			Specializations: map[SkillID]int{
				testSkillSwimming: 10,
			},
		},
		{
			ID:       "soldier",
			Name:     "Soldier",
			CapShift: [AbilityCount]int{2, 0, 2, 0, 0, 0},
			Specializations: map[SkillID]int{
				testSkillRifle: 10,
			},
		},
	}
}

func testSkills() []SkillDef {
	return []SkillDef{
		{ID: testSkillOneHand, Name: "1h Blunt", Category: "Melee Weapons", BaseValue: 5, CostTenths: 20, Weights: Weights{5, 2, 3, 0, 0, 0}},
		{ID: testSkillPistol, Name: "Pistol", Category: "Ranged Weapons", BaseValue: 5, CostTenths: 24, Weights: Weights{0, 6, 0, 0, 4, 0}},
		{ID: testSkillRifle, Name: "Rifle", Category: "Ranged Weapons", BaseValue: 5, CostTenths: 28, Weights: Weights{0, 6, 0, 0, 4, 0}},
		{ID: testSkillFirstAid, Name: "First Aid", Category: "Trade & Repair", BaseValue: 5, CostTenths: 16, Weights: Weights{0, 3, 0, 3, 4, 0}},
		{ID: testSkillSwimming, Name: "Swimming", Category: "Body & Defense", BaseValue: 5, CostTenths: 12, Weights: Weights{3, 2, 3, 0, 2, 0}},
		{ID: testSkillBodyDev, Name: "Body Dev.", Category: "Body & Defense", BaseValue: 5, CostTenths: 20, Weights: Weights{0, 0, 10, 0, 0, 0}},
	}
}

func testSchedule() IPSchedule {
	return IPSchedule{
		Base: 1500,
		Brackets: []IPBracket{
			{From: 2, To: 14, PerLevel: 4000},
			{From: 15, To: 49, PerLevel: 10000},
			{From: 50, To: 99, PerLevel: 20000},
			{From: 100, To: 149, PerLevel: 40000},
			{From: 150, To: 189, PerLevel: 80000},
			{From: 190, To: 204, PerLevel: 150000},
			{From: 205, To: 220, PerLevel: 600000},
		},
	}
}

func testTables(t *testing.T) *Tables {
	t.Helper()
	tables, err := NewTables(testBreeds(), testProfessions(), testSkills(), testSchedule())
	if err != nil {
		t.Fatalf("build test tables: %v", err)
	}
	return tables
}

func freshProfile(t *testing.T, tables *Tables, level int) *Profile {
	t.Helper()
	p, err := NewDefaultProfile(tables, "Test Character", "solitus", "adventurer")
	if err != nil {
		t.Fatalf("new default profile: %v", err)
	}
	if level != LevelMin {
		if err := SetLevel(tables, p, level); err != nil {
			t.Fatalf("set level %d: %v", level, err)
		}
	}
	return p
}

// checkInvariants asserts the structural identities that must hold for every
// profile after a recompute pass.
func checkInvariants(t *testing.T, tables *Tables, p *Profile) {
	t.Helper()
	for i := 0; i < AbilityCount; i++ {
		ability := p.Abilities[i]
		if ability.Value != ability.BreedBase+ability.PointsFromIP {
			t.Fatalf("%s value = %d, want breedBase %d + pointsFromIP %d", AbilityID(i), ability.Value, ability.BreedBase, ability.PointsFromIP)
		}
		if ability.Value > ability.Cap {
			t.Fatalf("%s value %d exceeds cap %d", AbilityID(i), ability.Value, ability.Cap)
		}
	}
	values := p.AbilityValues()
	for id, skill := range p.Skills {
		if skill.Value != skill.BaseValue+skill.TrickleDown+skill.PointsFromIP {
			t.Fatalf("skill %d value = %d, want base %d + trickle %d + pointsFromIP %d", id, skill.Value, skill.BaseValue, skill.TrickleDown, skill.PointsFromIP)
		}
		if skill.Value > skill.Cap {
			t.Fatalf("skill %d value %d exceeds cap %d", id, skill.Value, skill.Cap)
		}
		if def, ok := tables.SkillDef(id); ok {
			if want := TrickleDown(def.Weights, values); skill.TrickleDown != want {
				t.Fatalf("skill %d trickle = %d, want %d", id, skill.TrickleDown, want)
			}
		}
	}
	tracker := p.IP
	if tracker.TotalUsed != tracker.AbilityIP+tracker.SkillIP {
		t.Fatalf("totalUsed = %d, want abilityIP %d + skillIP %d", tracker.TotalUsed, tracker.AbilityIP, tracker.SkillIP)
	}
	if tracker.Remaining != tracker.TotalAvailable-tracker.TotalUsed {
		t.Fatalf("remaining = %d, want totalAvailable %d - totalUsed %d", tracker.Remaining, tracker.TotalAvailable, tracker.TotalUsed)
	}
}
