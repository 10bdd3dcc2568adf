package anarchy

// AbilityCap computes the maximum legal value for one ability: the breed base
// plus level growth plus the profession's shift, bounded by the breed hard
// cap and never below the breed base. Monotonically non-decreasing in level.
func AbilityCap(breed Breed, prof Profession, ability AbilityID, level int) int {
	if !ability.Valid() {
		return 0
	}
	if level < LevelMin {
		level = LevelMin
	}
	limit := breed.Base[ability] + level*breed.GrowthTenths[ability]/10 + prof.CapShift[ability]
	if limit > breed.HardCap[ability] {
		limit = breed.HardCap[ability]
	}
	if limit < breed.Base[ability] {
		limit = breed.Base[ability]
	}
	return limit
}

// skillRateFloor and skillRateCeil bound how many skill points a level grants.
const (
	skillRateFloor = 2
	skillRateCeil  = 5
)

// RatePerLevel converts a skill's effective cost factor into the points of
// headroom gained per character level. Cheap skills climb faster; profession
// specialization adds one point per level.
func RatePerLevel(costTenths int, specialized bool) int {
	rate := 6 - (costTenths+9)/10
	if specialized {
		rate++
	}
	if rate < skillRateFloor {
		rate = skillRateFloor
	}
	if rate > skillRateCeil {
		rate = skillRateCeil
	}
	return rate
}

// LevelLimit is the level-driven skill ceiling, independent of ability
// investment.
func LevelLimit(baseValue, level, ratePerLevel int) int {
	if level < LevelMin {
		level = LevelMin
	}
	return baseValue + ratePerLevel*level
}

// AbilityPotentialLimit previews how far a skill could climb if its governing
// abilities were raised to their own current caps: the current skill value
// plus the trickle the remaining breed-base-to-cap ability headroom would
// grant. The headroom term depends only on caps and breed bases, so the limit
// never drops as abilities rise.
func AbilityPotentialLimit(value int, weights Weights, abilityCaps, breedBase [AbilityCount]int) int {
	headroom := 0
	for i := 0; i < AbilityCount; i++ {
		room := abilityCaps[i] - breedBase[i]
		if room < 0 {
			room = 0
		}
		headroom += weights[i] * room
	}
	return value + headroom/trickleDivisorTenths
}

// SkillCap is the binding ceiling for a skill right now: the lower of the
// level-driven limit and the ability-potential limit.
func SkillCap(levelLimit, abilityPotentialLimit int) int {
	if levelLimit < abilityPotentialLimit {
		return levelLimit
	}
	return abilityPotentialLimit
}
