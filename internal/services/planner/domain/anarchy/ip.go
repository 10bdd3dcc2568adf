package anarchy

// Fallback cost factors in tenths for stats missing from the reference
// tables, so older profile shapes stay priceable instead of failing.
const (
	DefaultAbilityCostTenths = 20
	DefaultSkillCostTenths   = 20
)

// PointCost converts invested points into IP at a cost factor given in
// tenths, rounding half up. Zero points always cost zero.
func PointCost(points, factorTenths int) int {
	if points <= 0 {
		return 0
	}
	return (points*factorTenths + 5) / 10
}

// MaxPointsWithin returns the largest number of points whose PointCost fits
// the budget.
func MaxPointsWithin(budget, factorTenths int) int {
	if budget <= 0 || factorTenths <= 0 {
		return 0
	}
	points := (budget*10 - 5) / factorTenths
	if points < 0 {
		points = 0
	}
	for PointCost(points+1, factorTenths) <= budget {
		points++
	}
	for points > 0 && PointCost(points, factorTenths) > budget {
		points--
	}
	return points
}

// TotalAvailable computes the cumulative IP budget granted by the schedule at
// a character level. Levels below the minimum grant the base budget only; the
// schedule is strictly monotone in level.
func (s IPSchedule) TotalAvailable(level int) int {
	total := s.Base
	if level <= LevelMin {
		return total
	}
	for _, bracket := range s.Brackets {
		if level < bracket.From {
			break
		}
		upper := bracket.To
		if level < upper {
			upper = level
		}
		total += (upper - bracket.From + 1) * bracket.PerLevel
	}
	return total
}

// IPTracker is the derived budget snapshot. It is recomputed wholesale from
// the authoritative PointsFromIP fields and never maintained incrementally.
type IPTracker struct {
	TotalAvailable int
	TotalUsed      int
	AbilityIP      int
	SkillIP        int
	Remaining      int
	// Efficiency is the percentage of the budget spent, for display only.
	Efficiency float64
}

// CalculateProfileIP derives a fresh budget snapshot from the profile's
// invested points. It never mutates the profile and is idempotent: two calls
// on an unmodified profile return identical trackers.
func CalculateProfileIP(tables *Tables, p *Profile) IPTracker {
	tracker := IPTracker{}
	if p == nil {
		return tracker
	}

	level := p.Level
	if level < LevelMin {
		level = LevelMin
	}
	tracker.TotalAvailable = tables.schedule.TotalAvailable(level)

	for i := 0; i < AbilityCount; i++ {
		points := p.Abilities[i].PointsFromIP
		if points <= 0 {
			continue
		}
		tracker.AbilityIP += PointCost(points, tables.AbilityCostFactor(p.Breed, AbilityID(i)))
	}

	for id, skill := range p.Skills {
		if skill.PointsFromIP <= 0 {
			continue
		}
		tracker.SkillIP += PointCost(skill.PointsFromIP, tables.CostFactor(p.Profession, id))
	}

	tracker.TotalUsed = tracker.AbilityIP + tracker.SkillIP
	tracker.Remaining = tracker.TotalAvailable - tracker.TotalUsed
	if tracker.TotalAvailable > 0 {
		tracker.Efficiency = float64(tracker.TotalUsed) * 100 / float64(tracker.TotalAvailable)
	}
	return tracker
}
