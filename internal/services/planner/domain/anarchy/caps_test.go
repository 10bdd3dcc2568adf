package anarchy

import "testing"

func TestAbilityCapGrowsWithLevel(t *testing.T) {
	tables := testTables(t)
	breed, _ := tables.Breed("solitus")
	prof, _ := tables.Profession("adventurer")

	previous := 0
	for level := LevelMin; level <= LevelMax; level++ {
		got := AbilityCap(breed, prof, AbilityStamina, level)
		if got < previous {
			t.Fatalf("cap decreased from %d to %d at level %d", previous, got, level)
		}
		if got < breed.Base[AbilityStamina] {
			t.Fatalf("cap %d fell below breed base %d at level %d", got, breed.Base[AbilityStamina], level)
		}
		previous = got
	}

	if got := AbilityCap(breed, prof, AbilityStamina, 50); got != 36 {
		t.Fatalf("solitus stamina cap at level 50 = %d, want 36", got)
	}
}

func TestAbilityCapRespectsHardCap(t *testing.T) {
	breed := Breed{
		ID:           "capped",
		Base:         [AbilityCount]int{6, 6, 6, 6, 6, 6},
		GrowthTenths: [AbilityCount]int{100, 100, 100, 100, 100, 100},
		HardCap:      [AbilityCount]int{40, 40, 40, 40, 40, 40},
		CostTenths:   [AbilityCount]int{20, 20, 20, 20, 20, 20},
	}
	if got := AbilityCap(breed, Profession{}, AbilityStrength, 200); got != 40 {
		t.Fatalf("cap = %d, want hard cap 40", got)
	}
}

func TestAbilityCapProfessionShift(t *testing.T) {
	tables := testTables(t)
	breed, _ := tables.Breed("solitus")
	adventurer, _ := tables.Profession("adventurer")
	soldier, _ := tables.Profession("soldier")

	base := AbilityCap(breed, adventurer, AbilityStrength, 10)
	shifted := AbilityCap(breed, soldier, AbilityStrength, 10)
	if shifted != base+2 {
		t.Fatalf("soldier strength cap = %d, want %d", shifted, base+2)
	}
}

func TestRatePerLevel(t *testing.T) {
	tests := []struct {
		costTenths  int
		specialized bool
		want        int
	}{
		{10, false, 5},
		{12, false, 4},
		{20, false, 4},
		{24, false, 3},
		{28, false, 3},
		{40, false, 2},
		{60, false, 2},
		{28, true, 4},
		{10, true, 5},
	}
	for _, tc := range tests {
		if got := RatePerLevel(tc.costTenths, tc.specialized); got != tc.want {
			t.Fatalf("RatePerLevel(%d, %v) = %d, want %d", tc.costTenths, tc.specialized, got, tc.want)
		}
	}
}

func TestLevelLimitGrowsWithLevel(t *testing.T) {
	previous := 0
	for level := LevelMin; level <= LevelMax; level++ {
		got := LevelLimit(5, level, 4)
		if got <= previous {
			t.Fatalf("level limit did not grow at level %d: %d -> %d", level, previous, got)
		}
		previous = got
	}
	if got := LevelLimit(5, 50, 4); got != 205 {
		t.Fatalf("LevelLimit(5, 50, 4) = %d, want 205", got)
	}
}

func TestAbilityPotentialLimit(t *testing.T) {
	weights := Weights{0, 0, 10, 0, 0, 0}
	caps := [AbilityCount]int{36, 36, 36, 36, 36, 36}
	bases := [AbilityCount]int{6, 6, 6, 6, 6, 6}

	if got := AbilityPotentialLimit(6, weights, caps, bases); got != 13 {
		t.Fatalf("potential at fresh value 6 = %d, want 13", got)
	}
	if got := AbilityPotentialLimit(10, weights, caps, bases); got != 17 {
		t.Fatalf("potential at value 10 = %d, want 17", got)
	}
}

func TestSkillCapTakesTheLowerLimit(t *testing.T) {
	if got := SkillCap(205, 13); got != 13 {
		t.Fatalf("SkillCap(205, 13) = %d, want 13", got)
	}
	if got := SkillCap(9, 13); got != 9 {
		t.Fatalf("SkillCap(9, 13) = %d, want 9", got)
	}
}
