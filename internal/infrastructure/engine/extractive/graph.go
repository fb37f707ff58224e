package extractive

// edge points at a neighboring sentence with the cosine similarity of
// the pair.
type edge struct {
	to     int
	weight float64
}

// similarityGraph is the weighted undirected sentence graph for one
// request. Nodes are sentence indices. Adjacency lists are sorted by
// neighbor index, so every traversal accumulates weights in the same
// order and ranking stays reproducible bit for bit.
type similarityGraph struct {
	n       int
	edges   [][]edge  // symmetric adjacency, no self loops
	degrees []float64 // sum of incident edge weights
}

// defaultSimilarityThreshold excludes exact-zero noise while keeping any
// informative overlap. Tunable, not contract.
const defaultSimilarityThreshold = 1e-8

// buildGraph connects every sentence pair whose cosine similarity exceeds
// the threshold. Symmetry holds by construction: each pair is computed
// once and written to both endpoints. The i<j sweep appends neighbors in
// increasing index order, which keeps every adjacency list sorted.
func buildGraph(vectors []sparseVector, threshold float64) similarityGraph {
	if threshold <= 0 {
		threshold = defaultSimilarityThreshold
	}

	g := similarityGraph{
		n:       len(vectors),
		edges:   make([][]edge, len(vectors)),
		degrees: make([]float64, len(vectors)),
	}

	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			w := dot(vectors[i], vectors[j])
			if w <= threshold {
				continue
			}
			g.edges[i] = append(g.edges[i], edge{to: j, weight: w})
			g.edges[j] = append(g.edges[j], edge{to: i, weight: w})
			g.degrees[i] += w
			g.degrees[j] += w
		}
	}
	return g
}

func (g similarityGraph) isolated(i int) bool {
	return g.degrees[i] == 0
}
