package anarchy

// trickleDivisorTenths is the load-bearing trickle-down divisor. Weights are
// stored in tenths, so dividing the tenths-weighted ability sum by 40
// reproduces floor(sum(weight_i * ability_i) / 4) exactly, without floats.
const trickleDivisorTenths = 40

// TrickleDown computes the passive skill bonus granted by the current ability
// values: floor of the weighted ability sum divided by four. It is stateless
// and order-independent; recomputing with unchanged inputs yields the same
// result.
func TrickleDown(weights Weights, abilities [AbilityCount]int) int {
	sum := 0
	for i := 0; i < AbilityCount; i++ {
		sum += weights[i] * abilities[i]
	}
	if sum <= 0 {
		return 0
	}
	return sum / trickleDivisorTenths
}

// AbilityValues extracts the six current ability values in canonical order.
func (p *Profile) AbilityValues() [AbilityCount]int {
	var values [AbilityCount]int
	for i := 0; i < AbilityCount; i++ {
		values[i] = p.Abilities[i].Value
	}
	return values
}
