package anarchy

import "testing"

func TestPointCost(t *testing.T) {
	tests := []struct {
		points int
		factor int
		want   int
	}{
		{0, 20, 0},
		{-3, 20, 0},
		{1, 10, 1},
		{1, 15, 2},  // 1.5 rounds up
		{2, 15, 3},  // 3.0 exact
		{3, 15, 5},  // 4.5 rounds up
		{14, 20, 28},
		{7, 12, 8},  // 8.4 rounds down
		{100, 24, 240},
	}
	for _, tc := range tests {
		if got := PointCost(tc.points, tc.factor); got != tc.want {
			t.Fatalf("PointCost(%d, %d) = %d, want %d", tc.points, tc.factor, got, tc.want)
		}
	}
}

func TestMaxPointsWithin(t *testing.T) {
	tests := []struct {
		budget int
		factor int
		want   int
	}{
		{0, 20, 0},
		{-5, 20, 0},
		{1, 20, 0},
		{2, 20, 1},
		{28, 20, 14},
		{29, 20, 14},
		{30, 20, 15},
		{5, 15, 3},  // 3 points cost 5, 4 cost 6
		{1000, 10, 1000},
	}
	for _, tc := range tests {
		got := MaxPointsWithin(tc.budget, tc.factor)
		if got != tc.want {
			t.Fatalf("MaxPointsWithin(%d, %d) = %d, want %d", tc.budget, tc.factor, got, tc.want)
		}
		if cost := PointCost(got, tc.factor); cost > tc.budget {
			t.Fatalf("MaxPointsWithin(%d, %d) = %d costs %d, exceeding the budget", tc.budget, tc.factor, got, cost)
		}
		if next := PointCost(got+1, tc.factor); tc.budget > 0 && next <= tc.budget {
			t.Fatalf("MaxPointsWithin(%d, %d) = %d but %d more points still fit", tc.budget, tc.factor, got, got+1)
		}
	}
}

func TestScheduleTotalAvailable(t *testing.T) {
	schedule := testSchedule()

	tests := []struct {
		level int
		want  int
	}{
		{1, 1500},
		{2, 5500},
		{14, 53500},
		{15, 63500},
		{49, 403500},
		{50, 423500},
		{100, 1443500},
	}
	for _, tc := range tests {
		if got := schedule.TotalAvailable(tc.level); got != tc.want {
			t.Fatalf("TotalAvailable(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}

	previous := 0
	for level := LevelMin; level <= LevelMax; level++ {
		got := schedule.TotalAvailable(level)
		if got <= previous {
			t.Fatalf("schedule not strictly monotone at level %d: %d -> %d", level, previous, got)
		}
		previous = got
	}
}

func TestCalculateProfileIPFreshProfile(t *testing.T) {
	tables := testTables(t)
	p := freshProfile(t, tables, 50)

	tracker := CalculateProfileIP(tables, p)
	if tracker.TotalUsed != 0 {
		t.Fatalf("fresh profile totalUsed = %d, want 0", tracker.TotalUsed)
	}
	if tracker.AbilityIP != 0 || tracker.SkillIP != 0 {
		t.Fatalf("fresh profile spent abilityIP %d skillIP %d, want 0/0", tracker.AbilityIP, tracker.SkillIP)
	}
	if tracker.Remaining <= 0 {
		t.Fatalf("fresh level 50 remaining = %d, want > 0", tracker.Remaining)
	}
	if tracker.TotalAvailable != 423500 {
		t.Fatalf("level 50 totalAvailable = %d, want 423500", tracker.TotalAvailable)
	}
	if tracker.Efficiency != 0 {
		t.Fatalf("fresh profile efficiency = %v, want 0", tracker.Efficiency)
	}
}

func TestCalculateProfileIPIdempotent(t *testing.T) {
	tables := testTables(t)
	p := freshProfile(t, tables, 60)
	if _, err := ModifyAbility(tables, p, AbilityStamina, 20); err != nil {
		t.Fatalf("modify ability: %v", err)
	}
	if _, err := ModifySkill(tables, p, testSkillBodyDev, 40); err != nil {
		t.Fatalf("modify skill: %v", err)
	}

	first := CalculateProfileIP(tables, p)
	second := CalculateProfileIP(tables, p)
	if first != second {
		t.Fatalf("trackers differ across idempotent calls: %+v vs %+v", first, second)
	}
}

func TestCalculateProfileIPDoesNotMutate(t *testing.T) {
	tables := testTables(t)
	p := freshProfile(t, tables, 25)
	if _, err := ModifyAbility(tables, p, AbilityAgility, 12); err != nil {
		t.Fatalf("modify ability: %v", err)
	}

	before := *p
	beforeSkills := make(map[SkillID]Skill, len(p.Skills))
	for id, skill := range p.Skills {
		beforeSkills[id] = skill
	}

	_ = CalculateProfileIP(tables, p)

	if p.Level != before.Level || p.Abilities != before.Abilities || p.IP != before.IP {
		t.Fatal("CalculateProfileIP mutated the profile")
	}
	for id, skill := range p.Skills {
		if beforeSkills[id] != skill {
			t.Fatalf("CalculateProfileIP mutated skill %d", id)
		}
	}
}

func TestAbilityOnlySpendKeepsSkillIPZero(t *testing.T) {
	tables := testTables(t)
	p := freshProfile(t, tables, 50)

	if _, err := ModifyAbility(tables, p, AbilityStamina, 20); err != nil {
		t.Fatalf("modify ability: %v", err)
	}

	if p.IP.AbilityIP <= 0 {
		t.Fatalf("abilityIP = %d, want > 0", p.IP.AbilityIP)
	}
	if p.IP.SkillIP != 0 {
		t.Fatalf("skillIP = %d, want 0 until skill points are spent", p.IP.SkillIP)
	}
	if p.IP.TotalUsed != p.IP.AbilityIP {
		t.Fatalf("totalUsed = %d, want abilityIP %d only", p.IP.TotalUsed, p.IP.AbilityIP)
	}
}

// Regression: an untouched stat must cost exactly zero, no matter how often
// the ledger is recomputed.
func TestUntouchedStatsCostNothing(t *testing.T) {
	tables := testTables(t)
	p := freshProfile(t, tables, 100)

	for i := 0; i < 5; i++ {
		Recalculate(tables, p)
	}
	if p.IP.TotalUsed != 0 {
		t.Fatalf("untouched profile totalUsed = %d after recomputes, want 0", p.IP.TotalUsed)
	}

	if _, err := ModifySkill(tables, p, testSkillPistol, 30); err != nil {
		t.Fatalf("modify skill: %v", err)
	}
	spent := p.IP.SkillIP
	for i := 0; i < 5; i++ {
		Recalculate(tables, p)
	}
	if p.IP.SkillIP != spent {
		t.Fatalf("skillIP drifted from %d to %d across recomputes", spent, p.IP.SkillIP)
	}
	if p.IP.AbilityIP != 0 {
		t.Fatalf("abilityIP = %d for untouched abilities, want 0", p.IP.AbilityIP)
	}
}
