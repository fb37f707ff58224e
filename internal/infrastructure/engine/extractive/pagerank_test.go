package extractive

import (
	"math"
	"reflect"
	"sort"
	"testing"
)

func graphFromEdges(n int, edges map[[2]int]float64) similarityGraph {
	g := similarityGraph{
		n:       n,
		edges:   make([][]edge, n),
		degrees: make([]float64, n),
	}
	for pair, w := range edges {
		i, j := pair[0], pair[1]
		g.edges[i] = append(g.edges[i], edge{to: j, weight: w})
		g.edges[j] = append(g.edges[j], edge{to: i, weight: w})
	}
	// Sort adjacency and sum degrees in sorted order, matching what
	// buildGraph produces.
	for i := range g.edges {
		sort.Slice(g.edges[i], func(a, b int) bool { return g.edges[i][a].to < g.edges[i][b].to })
		for _, e := range g.edges[i] {
			g.degrees[i] += e.weight
		}
	}
	return g
}

func TestRankScoresSumToOne(t *testing.T) {
	g := graphFromEdges(4, map[[2]int]float64{
		{0, 1}: 0.9,
		{1, 2}: 0.4,
		{2, 3}: 0.2,
	})

	scores := NewTextRank().Rank(g)
	if len(scores) != 4 {
		t.Fatalf("expected 4 scores, got %d", len(scores))
	}
	sum := 0.0
	for _, s := range scores {
		if s <= 0 {
			t.Fatalf("scores must stay positive, got %v", scores)
		}
		sum += s
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("scores sum to %v, want 1", sum)
	}
}

func TestRankSymmetricGraphGivesEqualScores(t *testing.T) {
	// A triangle with equal weights has no distinguished node.
	g := graphFromEdges(3, map[[2]int]float64{
		{0, 1}: 0.5,
		{1, 2}: 0.5,
		{0, 2}: 0.5,
	})

	scores := NewTextRank().Rank(g)
	for i := 1; i < len(scores); i++ {
		if math.Abs(scores[i]-scores[0]) > 1e-6 {
			t.Fatalf("expected symmetric scores, got %v", scores)
		}
	}
}

func TestRankCentralNodeWins(t *testing.T) {
	// Star topology: node 0 touches everyone else.
	g := graphFromEdges(4, map[[2]int]float64{
		{0, 1}: 0.6,
		{0, 2}: 0.6,
		{0, 3}: 0.6,
	})

	scores := NewTextRank().Rank(g)
	for i := 1; i < len(scores); i++ {
		if scores[0] <= scores[i] {
			t.Fatalf("hub should outrank leaves, got %v", scores)
		}
	}
}

func TestRankIsolatedNodeGetsBaselineOnly(t *testing.T) {
	g := graphFromEdges(3, map[[2]int]float64{
		{0, 1}: 0.8,
	})

	scores := NewTextRank().Rank(g)
	if scores[2] >= scores[0] || scores[2] >= scores[1] {
		t.Fatalf("isolated node should rank below connected ones, got %v", scores)
	}
}

func TestRankEmptyGraph(t *testing.T) {
	if scores := NewTextRank().Rank(similarityGraph{}); scores != nil {
		t.Fatalf("expected nil for empty graph, got %v", scores)
	}
}

func TestRankDeterministic(t *testing.T) {
	g := graphFromEdges(5, map[[2]int]float64{
		{0, 1}: 0.3,
		{1, 2}: 0.7,
		{2, 3}: 0.1,
		{3, 4}: 0.9,
		{0, 4}: 0.5,
	})

	first := NewTextRank().Rank(g)
	for i := 0; i < 3; i++ {
		if again := NewTextRank().Rank(g); !reflect.DeepEqual(first, again) {
			t.Fatalf("ranking not deterministic:\n%v\n%v", first, again)
		}
	}
}

func TestRankBitwiseStableWithHighDegreeHub(t *testing.T) {
	// A degree-4 hub sums four neighbor contributions per iteration.
	// Float addition is not associative, so the scores are identical
	// across runs only if the accumulation order is fixed.
	g := graphFromEdges(5, map[[2]int]float64{
		{0, 1}: 0.9,
		{0, 2}: 0.7,
		{0, 3}: 0.4,
		{0, 4}: 0.2,
		{1, 2}: 0.3,
	})

	first := NewTextRank().Rank(g)
	for run := 0; run < 20; run++ {
		again := NewTextRank().Rank(g)
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: score[%d] = %.20g, want exactly %.20g", run, i, again[i], first[i])
			}
		}
	}
}

func TestTopKSourceOrder(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
		k      int
		want   []int
	}{
		{"top two reordered to source order", []float64{0.1, 0.5, 0.4}, 2, []int{1, 2}},
		{"ties break to lower index", []float64{0.5, 0.1, 0.5, 0.9}, 2, []int{0, 3}},
		{"k larger than input", []float64{0.2, 0.8}, 8, []int{0, 1}},
		{"k zero", []float64{0.2, 0.8}, 0, nil},
		{"all equal selects prefix", []float64{0.25, 0.25, 0.25, 0.25}, 2, []int{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := topKSourceOrder(tc.scores, tc.k)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("topKSourceOrder(%v, %d) = %v, want %v", tc.scores, tc.k, got, tc.want)
			}
		})
	}
}
