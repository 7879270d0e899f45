package melody

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"aleatoria/motif/internal/notegraph"
)

// Result is one generated melody with its intensity trace. Both slices
// always have equal length. The result is owned by the caller; Generate
// keeps no state between calls.
type Result struct {
	ID          string           `json:"id"`
	Mood        Mood             `json:"mood"`
	Notes       []notegraph.Note `json:"notes"`
	Intensities []float64        `json:"intensities"`
}

// Generate performs a mood-weighted random walk of up to length steps over
// the note graph, starting from a uniformly random note. Each step appends
// the current note plus one independent intensity draw in [0,1), then moves
// to a neighbor sampled with probability proportional to its mood-adjusted
// edge weight. The walk ends early only if a note has no outgoing edges,
// which the standard construction rules out.
//
// rng is the caller's random source; seed it for reproducible output.
func Generate(g *notegraph.Graph, length int, mood Mood, rng *rand.Rand) (*Result, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: length must be positive, got %d", notegraph.ErrInvalidArgument, length)
	}
	profile, err := GetProfile(mood)
	if err != nil {
		return nil, err
	}
	all := g.Notes()
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: empty graph", notegraph.ErrInvalidArgument)
	}

	result := &Result{
		ID:          uuid.NewString(),
		Mood:        mood,
		Notes:       make([]notegraph.Note, 0, length),
		Intensities: make([]float64, 0, length),
	}

	current := all[rng.IntN(len(all))]
	for step := 0; step < length; step++ {
		result.Notes = append(result.Notes, current)
		result.Intensities = append(result.Intensities, rng.Float64())

		out, err := g.Neighbors(current)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			break
		}
		current = out[sampleIndex(rng, adjustedWeights(out, profile.WeightMul))].To
	}
	return result, nil
}

// Weighted pairs a destination note with its normalized probability.
type Weighted struct {
	To          notegraph.Note `json:"to"`
	Probability float64        `json:"probability"`
}

// TransitionProbabilities returns the one-step distribution from a note
// under the given mood: every outgoing weight is multiplied by the mood's
// multiplier and the results are normalized to sum to 1.
func TransitionProbabilities(g *notegraph.Graph, from notegraph.Note, mood Mood) ([]Weighted, error) {
	profile, err := GetProfile(mood)
	if err != nil {
		return nil, err
	}
	out, err := g.Neighbors(from)
	if err != nil {
		return nil, err
	}
	weights := adjustedWeights(out, profile.WeightMul)
	probs := normalize(weights)
	result := make([]Weighted, len(out))
	for i, e := range out {
		result[i] = Weighted{To: e.To, Probability: probs[i]}
	}
	return result, nil
}

func adjustedWeights(out []notegraph.Edge, mul float64) []float64 {
	weights := make([]float64, len(out))
	for i, e := range out {
		weights[i] = e.Weight * mul
	}
	return weights
}

// normalize converts weights to a probability distribution. A non-positive
// sum (degenerate multiplier) falls back to uniform.
func normalize(weights []float64) []float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	probs := make([]float64, len(weights))
	if total > 0 {
		for i, w := range weights {
			probs[i] = w / total
		}
	} else {
		for i := range weights {
			probs[i] = 1.0 / float64(len(weights))
		}
	}
	return probs
}

// sampleIndex draws an index with probability proportional to its weight.
// Falls back to a uniform draw when the weight sum is not positive.
func sampleIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.IntN(len(weights))
	}
	r := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	// Float rounding can leave r marginally above the accumulated sum.
	return len(weights) - 1
}
