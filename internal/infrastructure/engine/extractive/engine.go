// Package extractive implements the offline summarization engine: a
// TextRank sentence ranker for the summary and an LSA salience extractor
// for key points. The engine is deterministic, stateless per call, and
// needs no network access.
package extractive

import (
	"context"
	"strings"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

const defaultKeyPointCount = 5

type Config struct {
	Damping             float64
	Tolerance           float64
	MaxIterations       int
	SimilarityThreshold float64
	KeyPointCount       int
}

type Engine struct {
	ranker    Ranker
	threshold float64
	keyPoints int
}

func NewEngine(cfg Config) *Engine {
	ranker := NewTextRank()
	if cfg.Damping > 0 && cfg.Damping < 1 {
		ranker.Damping = cfg.Damping
	}
	if cfg.Tolerance > 0 {
		ranker.Tolerance = cfg.Tolerance
	}
	if cfg.MaxIterations > 0 {
		ranker.MaxIterations = cfg.MaxIterations
	}
	return NewEngineWithRanker(cfg, ranker)
}

// NewEngineWithRanker swaps the ranking algorithm while keeping the rest
// of the pipeline.
func NewEngineWithRanker(cfg Config, ranker Ranker) *Engine {
	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = defaultSimilarityThreshold
	}
	keyPoints := cfg.KeyPointCount
	if keyPoints <= 0 {
		keyPoints = defaultKeyPointCount
	}
	return &Engine{
		ranker:    ranker,
		threshold: threshold,
		keyPoints: keyPoints,
	}
}

// Summarize runs segmentation, vectorization, graph ranking and selection,
// then reuses the vectors for LSA key points. All intermediate structures
// are local to the call.
func (e *Engine) Summarize(_ context.Context, text string, length domain.LengthSetting) (string, []string, error) {
	sentences, err := segment(text)
	if err != nil {
		return "", nil, err
	}

	vectors := vectorize(sentences)
	graph := buildGraph(vectors.vectors, e.threshold)
	scores := e.ranker.Rank(graph)

	target := length.TargetCount(len(sentences))
	selected := topKSourceOrder(scores, target)

	parts := make([]string, len(selected))
	for i, idx := range selected {
		parts[i] = sentences[idx].text
	}
	summary := strings.Join(parts, " ")

	keyPoints := e.keyPointsFrom(sentences, vectors, e.keyPoints)
	return summary, keyPoints, nil
}

// ExtractKeyPoints returns up to maxPoints sentences in descending latent
// salience order.
func (e *Engine) ExtractKeyPoints(_ context.Context, text string, maxPoints int) ([]string, error) {
	sentences, err := segment(text)
	if err != nil {
		return nil, err
	}
	if maxPoints <= 0 {
		maxPoints = e.keyPoints
	}
	return e.keyPointsFrom(sentences, vectorize(sentences), maxPoints), nil
}

func (e *Engine) keyPointsFrom(sentences []sentence, vectors docVectors, maxPoints int) []string {
	topics := maxPoints
	if len(sentences) < topics {
		topics = len(sentences)
	}
	if len(vectors.terms) < topics {
		topics = len(vectors.terms)
	}

	salience := latentSalience(vectors.vectors, topics)
	if allZero(salience) {
		// Degenerate matrix rank; degrade to term frequency rather
		// than failing.
		salience = frequencySalience(sentences)
	}

	points := make([]string, 0, maxPoints)
	for _, idx := range topBySalience(salience, maxPoints) {
		points = append(points, sentences[idx].text)
	}
	return points
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}
