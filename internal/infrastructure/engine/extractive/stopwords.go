package extractive

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// The stop-word set is the only process-wide state in the engine. It is
// loaded exactly once and read-only afterwards, so concurrent first calls
// from independent requests cannot race a reload.
var (
	stopwordsOnce sync.Once
	stopwordSet   map[string]struct{}
	stopwordsErr  error
)

// InitStopwords loads the stop-word set, optionally from a YAML file of the
// form `stopwords: [a, an, the, ...]`. An empty path keeps the embedded
// English list. Only the first call has any effect.
func InitStopwords(path string) error {
	stopwordsOnce.Do(func() {
		stopwordSet, stopwordsErr = loadStopwords(path)
	})
	return stopwordsErr
}

func stopwords() map[string]struct{} {
	// Falls back to the embedded list when bootstrap never called
	// InitStopwords explicitly.
	_ = InitStopwords("")
	return stopwordSet
}

func loadStopwords(path string) (map[string]struct{}, error) {
	words := defaultStopwords
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read stopwords file: %w", err)
		}
		var parsed struct {
			Stopwords []string `yaml:"stopwords"`
		}
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("parse stopwords yaml: %w", err)
		}
		if len(parsed.Stopwords) > 0 {
			words = parsed.Stopwords
		}
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set, nil
}

var defaultStopwords = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
	"to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was",
	"were", "be", "been", "being", "am", "do", "does", "did", "have",
	"has", "had", "it", "its", "this", "that", "these", "those", "from",
	"up", "down", "over", "under", "again", "further", "than", "so",
	"such", "into", "about", "between", "through", "during", "before",
	"after", "above", "below", "out", "off", "own", "same", "too", "very",
	"can", "will", "just", "should", "could", "would", "not", "no", "nor",
	"now", "he", "she", "they", "them", "their", "we", "our", "you",
	"your", "i", "me", "my", "his", "her", "him", "who", "whom", "which",
	"what", "when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "only",
}
