package anarchy

// UpdateProfileSkillInfo recomputes ability caps, trickle-down, and skill
// caps in place, clamping values that drifted above their ceilings. It does
// not touch the IP tracker. Missing or partial profile data is repaired
// rather than rejected, so older saved shapes recompute cleanly.
func UpdateProfileSkillInfo(tables *Tables, p *Profile) {
	if tables == nil || p == nil {
		return
	}
	normalize(tables, p)

	breed, knownBreed := tables.Breed(p.Breed)
	prof, _ := tables.Profession(p.Profession)

	var abilityCaps, breedBases [AbilityCount]int
	for i := 0; i < AbilityCount; i++ {
		ability := p.Abilities[i]
		if knownBreed {
			ability.Cap = AbilityCap(breed, prof, AbilityID(i), p.Level)
		} else {
			ability.Cap = ability.BreedBase
		}
		if ability.BreedBase+ability.PointsFromIP > ability.Cap {
			ability.PointsFromIP = ability.Cap - ability.BreedBase
			if ability.PointsFromIP < 0 {
				ability.PointsFromIP = 0
			}
		}
		ability.Value = ability.BreedBase + ability.PointsFromIP
		p.Abilities[i] = ability
		abilityCaps[i] = ability.Cap
		breedBases[i] = ability.BreedBase
	}

	abilityValues := p.AbilityValues()
	for id, skill := range p.Skills {
		def, known := tables.SkillDef(id)
		if known {
			skill.TrickleDown = TrickleDown(def.Weights, abilityValues)
		} else {
			// No weight vector on record: the skill cannot trickle.
			skill.TrickleDown = 0
		}

		skill.Value = skill.BaseValue + skill.TrickleDown + skill.PointsFromIP

		factor := tables.CostFactor(p.Profession, id)
		rate := RatePerLevel(factor, tables.Specialized(p.Profession, id))
		levelLimit := LevelLimit(skill.BaseValue, p.Level, rate)
		potential := levelLimit
		if known {
			potential = AbilityPotentialLimit(skill.Value, def.Weights, abilityCaps, breedBases)
		}
		skill.Cap = SkillCap(levelLimit, potential)

		if skill.Value > skill.Cap {
			skill.PointsFromIP -= skill.Value - skill.Cap
			if skill.PointsFromIP < 0 {
				skill.PointsFromIP = 0
			}
			skill.Value = skill.BaseValue + skill.TrickleDown + skill.PointsFromIP
		}
		p.Skills[id] = skill
	}
}

// Recalculate is the full pass run after any mutation: ability caps, trickle
// propagation, skill caps, clamping, then a fresh IP tracker. It is
// bit-for-bit idempotent on an unchanged profile, so callers may invoke it
// once per field edit without accumulating drift.
func Recalculate(tables *Tables, p *Profile) {
	if tables == nil || p == nil {
		return
	}
	UpdateProfileSkillInfo(tables, p)
	p.IP = CalculateProfileIP(tables, p)
}

// UpdateProfileWithIPTracking recomputes derived skill data and attaches a
// fresh budget snapshot, returning the same profile for chaining.
func UpdateProfileWithIPTracking(tables *Tables, p *Profile) *Profile {
	Recalculate(tables, p)
	return p
}

// SetLevel changes the character level and reruns the full recompute.
// Levels outside 1..220 are contract violations.
func SetLevel(tables *Tables, p *Profile, level int) error {
	if err := ValidateLevel(level); err != nil {
		return err
	}
	p.Level = level
	Recalculate(tables, p)
	return nil
}
