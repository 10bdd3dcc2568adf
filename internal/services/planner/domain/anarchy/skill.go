package anarchy

// SkillID is the numeric registry identifier for a trainable skill.
type SkillID int

// Weights is a six-element trickle-down weight vector in tenths, one entry
// per ability in canonical order. A weight of 10 means the ability
// contributes with factor 1.0; a weight of 0 means no contribution.
type Weights [AbilityCount]int

// Sum returns the total weight in tenths.
func (w Weights) Sum() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// Skill holds one trainable skill on a profile.
//
// Value is derived: Value == BaseValue + TrickleDown + PointsFromIP after a
// recompute, and Value never exceeds Cap. PointsFromIP is the authoritative
// field; TrickleDown and Cap are rewritten on every recompute pass.
type Skill struct {
	ID           SkillID
	Value        int
	PointsFromIP int
	TrickleDown  int
	Cap          int
	BaseValue    int
}
