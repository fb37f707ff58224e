package extractive

import (
	"math"
	"sort"
)

// Latent-topic salience via a truncated SVD of the term-by-sentence
// matrix. Rather than factorizing the tall term matrix directly, the
// extractor works on the sentence Gram matrix G = AᵀA: its eigenvectors
// are the right singular vectors of A and its eigenvalues the squared
// singular values, so for N sentences everything stays N×N.
const (
	lsaPowerTolerance  = 1e-9
	lsaPowerIterations = 100
	lsaRankEpsilon     = 1e-10
)

// latentSalience scores each sentence by its singular-value-weighted norm
// in the reduced latent-topic space. topics is truncated to the matrix
// rank; a rank-0 matrix yields all-zero salience and the caller falls
// back to plain term frequency.
func latentSalience(vectors []sparseVector, topics int) []float64 {
	n := len(vectors)
	salience := make([]float64, n)
	if n == 0 || topics <= 0 {
		return salience
	}
	if topics > n {
		topics = n
	}

	gram := make([][]float64, n)
	for i := range gram {
		gram[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		gram[i][i] = dot(vectors[i], vectors[i])
		for j := i + 1; j < n; j++ {
			w := dot(vectors[i], vectors[j])
			gram[i][j] = w
			gram[j][i] = w
		}
	}

	for k := 0; k < topics; k++ {
		eigenvalue, eigenvector := dominantEigenpair(gram)
		if eigenvalue <= lsaRankEpsilon {
			break // numerical rank reached
		}

		sigma := math.Sqrt(eigenvalue)
		for i := 0; i < n; i++ {
			projection := sigma * eigenvector[i]
			salience[i] += projection * projection
		}

		// Deflate so the next pass finds the next topic.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				gram[i][j] -= eigenvalue * eigenvector[i] * eigenvector[j]
			}
		}
	}

	for i := range salience {
		salience[i] = math.Sqrt(salience[i])
	}
	return salience
}

// dominantEigenpair runs power iteration with a fixed, seedless start
// vector. The start has strictly decreasing positive entries, so it is
// never orthogonal to a nonnegative dominant eigenvector and identical
// input always converges to the same pair.
func dominantEigenpair(m [][]float64) (float64, []float64) {
	n := len(m)
	v := make([]float64, n)
	for i := range v {
		v[i] = 1 / float64(i+1)
	}
	normalize(v)

	next := make([]float64, n)
	for iteration := 0; iteration < lsaPowerIterations; iteration++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += m[i][j] * v[j]
			}
			next[i] = sum
		}
		if normalize(next) <= lsaRankEpsilon {
			return 0, v
		}

		delta := 0.0
		for i := range v {
			delta += math.Abs(next[i] - v[i])
		}
		v, next = next, v
		if delta < lsaPowerTolerance {
			break
		}
	}

	// Rayleigh quotient of the converged vector.
	eigenvalue := 0.0
	for i := 0; i < n; i++ {
		row := 0.0
		for j := 0; j < n; j++ {
			row += m[i][j] * v[j]
		}
		eigenvalue += v[i] * row
	}
	if eigenvalue < 0 {
		eigenvalue = 0
	}
	return eigenvalue, v
}

func normalize(v []float64) float64 {
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range v {
			v[i] /= norm
		}
	}
	return norm
}

// frequencySalience is the degenerate-rank fallback: a sentence scores
// the summed document frequency of its tokens.
func frequencySalience(sentences []sentence) []float64 {
	freq := make(map[string]float64)
	for _, s := range sentences {
		for _, tok := range s.tokens {
			freq[tok]++
		}
	}

	salience := make([]float64, len(sentences))
	for i, s := range sentences {
		for _, tok := range s.tokens {
			salience[i] += freq[tok]
		}
	}
	return salience
}

// topBySalience returns up to max sentence indices in descending salience
// order. Unlike summary selection this view stays rank-ordered; ties
// break toward the earlier sentence.
func topBySalience(salience []float64, max int) []int {
	order := make([]int, len(salience))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if salience[order[a]] != salience[order[b]] {
			return salience[order[a]] > salience[order[b]]
		}
		return order[a] < order[b]
	})
	if max < 0 {
		max = 0
	}
	if max > len(order) {
		max = len(order)
	}
	return order[:max]
}
