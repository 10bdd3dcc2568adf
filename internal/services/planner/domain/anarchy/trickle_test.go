package anarchy

import "testing"

func TestTrickleDownExactness(t *testing.T) {
	tests := []struct {
		name      string
		weights   Weights
		abilities [AbilityCount]int
		want      int
	}{
		{
			name:      "single ability weight one point zero at twenty",
			weights:   Weights{0, 0, 10, 0, 0, 0},
			abilities: [AbilityCount]int{0, 0, 20, 0, 0, 0},
			want:      5,
		},
		{
			name:      "single ability at breed minimum",
			weights:   Weights{0, 0, 10, 0, 0, 0},
			abilities: [AbilityCount]int{6, 6, 6, 6, 6, 6},
			want:      1,
		},
		{
			name:      "floor discards the fraction",
			weights:   Weights{0, 0, 10, 0, 0, 0},
			abilities: [AbilityCount]int{0, 0, 7, 0, 0, 0},
			want:      1,
		},
		{
			name:      "sparse three ability vector",
			weights:   Weights{5, 2, 3, 0, 0, 0},
			abilities: [AbilityCount]int{10, 20, 30, 40, 50, 60},
			want:      4, // (50 + 40 + 90) / 40
		},
		{
			name:      "zero weights contribute nothing",
			weights:   Weights{},
			abilities: [AbilityCount]int{100, 100, 100, 100, 100, 100},
			want:      0,
		},
		{
			name:      "fractional weights in tenths",
			weights:   Weights{0, 6, 0, 0, 4, 0},
			abilities: [AbilityCount]int{6, 15, 6, 6, 10, 6},
			want:      3, // (90 + 40) / 40
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TrickleDown(tc.weights, tc.abilities); got != tc.want {
				t.Fatalf("TrickleDown = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTrickleDownIdempotent(t *testing.T) {
	weights := Weights{5, 2, 3, 0, 0, 0}
	abilities := [AbilityCount]int{12, 9, 17, 6, 6, 6}

	first := TrickleDown(weights, abilities)
	for i := 0; i < 10; i++ {
		if got := TrickleDown(weights, abilities); got != first {
			t.Fatalf("recompute %d returned %d, want %d", i, got, first)
		}
	}
}

func TestTrickleDownMonotonicity(t *testing.T) {
	weights := Weights{0, 0, 10, 0, 0, 0}

	previous := -1
	for value := 6; value <= 120; value++ {
		abilities := [AbilityCount]int{6, 6, value, 6, 6, 6}
		got := TrickleDown(weights, abilities)
		if got < previous {
			t.Fatalf("trickle decreased from %d to %d at ability %d", previous, got, value)
		}
		previous = got
	}

	// A full weight guarantees one extra point of trickle per four ability points.
	for value := 6; value <= 116; value += 4 {
		before := TrickleDown(weights, [AbilityCount]int{6, 6, value, 6, 6, 6})
		after := TrickleDown(weights, [AbilityCount]int{6, 6, value + 4, 6, 6, 6})
		if after != before+1 {
			t.Fatalf("trickle at ability %d+4 = %d, want %d", value, after, before+1)
		}
	}
}
