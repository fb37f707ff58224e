package extractive

import (
	"math"
	"sort"
)

// docVectors is the term dictionary and sparse sentence vectors built for
// one document. The corpus for IDF weighting is the document's own
// sentences; nothing survives the request.
type docVectors struct {
	terms   []string       // sorted vocabulary, index = column
	vocab   map[string]int // term -> column
	idf     []float64
	vectors []sparseVector // per sentence, L2-normalized TF-IDF
	counts  []map[string]int
}

// sparseEntry pairs a vocabulary column with its weight.
type sparseEntry struct {
	col    int
	weight float64
}

// sparseVector is a column-sorted sparse row. Slice order fixes the
// float accumulation order: identical input always sums to identical
// values, which keeps ranking reproducible bit for bit. A sentence whose
// tokens were all stop-words keeps a nil slice and stays the zero vector.
type sparseVector []sparseEntry

func vectorize(sentences []sentence) docVectors {
	df := make(map[string]int)
	counts := make([]map[string]int, len(sentences))
	for i, s := range sentences {
		if len(s.tokens) == 0 {
			continue
		}
		tf := make(map[string]int, len(s.tokens))
		for _, tok := range s.tokens {
			tf[tok]++
		}
		counts[i] = tf
		for term := range tf {
			df[term]++
		}
	}

	// Sorted vocabulary keeps column assignment deterministic.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(sentences))
	for col, term := range terms {
		vocab[term] = col
		idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]sparseVector, len(sentences))
	for i, tf := range counts {
		if len(tf) == 0 {
			continue
		}
		total := 0
		for _, c := range tf {
			total += c
		}

		cols := make([]int, 0, len(tf))
		for term := range tf {
			cols = append(cols, vocab[term])
		}
		sort.Ints(cols)

		vec := make(sparseVector, 0, len(cols))
		norm := 0.0
		for _, col := range cols {
			w := (float64(tf[terms[col]]) / float64(total)) * idf[col]
			vec = append(vec, sparseEntry{col: col, weight: w})
			norm += w * w
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for k := range vec {
				vec[k].weight /= norm
			}
		}
		vectors[i] = vec
	}

	return docVectors{
		terms:   terms,
		vocab:   vocab,
		idf:     idf,
		vectors: vectors,
		counts:  counts,
	}
}

// dot of two L2-normalized sparse vectors is their cosine similarity,
// computed as a merge join over the column-sorted entries. Either operand
// being the zero vector yields 0, never a division error.
func dot(a, b sparseVector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].col < b[j].col:
			i++
		case a[i].col > b[j].col:
			j++
		default:
			sum += a[i].weight * b[j].weight
			i++
			j++
		}
	}
	return sum
}
