package extractive

import (
	"math"
	"sort"
)

// Ranker scores sentence importance over a similarity graph. The returned
// slice is indexed by sentence and normalized to sum to 1, which keeps
// top-K selection deterministic. TextRank is the default; alternative
// ranking algorithms can be substituted without touching the engine.
type Ranker interface {
	Rank(g similarityGraph) []float64
}

// TextRank runs the PageRank recurrence over the sentence graph: each
// score converges to a convex combination of the uniform baseline and the
// degree-normalized scores of its neighbors.
type TextRank struct {
	Damping       float64 // default 0.85
	Tolerance     float64 // L1 delta convergence bound, default 1e-4
	MaxIterations int     // hard cap so pathological graphs still terminate
}

func NewTextRank() TextRank {
	return TextRank{
		Damping:       0.85,
		Tolerance:     1e-4,
		MaxIterations: 100,
	}
}

func (r TextRank) Rank(g similarityGraph) []float64 {
	if g.n == 0 {
		return nil
	}

	damping := r.Damping
	if damping <= 0 || damping >= 1 {
		damping = 0.85
	}
	tolerance := r.Tolerance
	if tolerance <= 0 {
		tolerance = 1e-4
	}
	maxIterations := r.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 100
	}

	n := float64(g.n)
	baseline := (1 - damping) / n

	// Uniform start, no randomness: identical input converges to the
	// same fixed point every run.
	scores := make([]float64, g.n)
	for i := range scores {
		scores[i] = 1 / n
	}

	next := make([]float64, g.n)
	for iteration := 0; iteration < maxIterations; iteration++ {
		for i := 0; i < g.n; i++ {
			sum := 0.0
			for _, e := range g.edges[i] {
				// Weight contribution is normalized by the
				// neighbor's total outgoing weight.
				sum += scores[e.to] * e.weight / g.degrees[e.to]
			}
			next[i] = baseline + damping*sum
		}

		delta := 0.0
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores
		if delta < tolerance {
			break
		}
	}

	// Isolated nodes hold only baseline mass, so the total can drift
	// below 1; renormalize before selection.
	total := 0.0
	for _, s := range scores {
		total += s
	}
	if total > 0 {
		for i := range scores {
			scores[i] /= total
		}
	}
	return scores
}

// topKSourceOrder picks the k highest-scored sentence indices, breaking
// ties by earlier source position, then re-sorts the winners into source
// order. Ranking decides which sentences survive; source order decides
// how they read.
func topKSourceOrder(scores []float64, k int) []int {
	if k <= 0 || len(scores) == 0 {
		return nil
	}
	if k > len(scores) {
		k = len(scores)
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b]
	})

	selected := append([]int(nil), order[:k]...)
	sort.Ints(selected)
	return selected
}
