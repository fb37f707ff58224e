package extractive

import (
	"errors"
	"strings"
	"unicode"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

// sentence is one segmented unit: stable source-order index, the raw
// surface text, and the normalized scoring tokens (lower-cased,
// stop-words removed). The surface text is what display paths see.
type sentence struct {
	index  int
	text   string
	tokens []string
}

// Words a trailing period does not terminate a sentence after.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "fig": {}, "no": {}, "inc": {}, "ltd": {},
	"co": {}, "dept": {}, "est": {}, "approx": {},
}

// segment splits raw text into source-ordered sentences. Splitting is
// deterministic and side-effect free; the same text always yields the
// same sequence.
func segment(text string) ([]sentence, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, domain.WrapError(domain.ErrEmptyInput, "segment text", errors.New("no non-whitespace characters"))
	}

	runes := []rune(trimmed)
	sentences := make([]sentence, 0, 16)
	start := 0

	flush := func(end int) {
		raw := strings.TrimSpace(string(runes[start:end]))
		start = end
		// Punctuation-only fragments ("...", "?!") are not sentences.
		if raw == "" || !hasWordRune(raw) {
			return
		}
		sentences = append(sentences, sentence{
			index:  len(sentences),
			text:   raw,
			tokens: tokenize(raw),
		})
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if !isTerminator(r) {
			continue
		}

		// Swallow terminator runs ("...", "?!") and trailing quotes.
		j := i + 1
		for j < len(runes) && (isTerminator(runes[j]) || isClosing(runes[j])) {
			j++
		}

		if r == '.' && isAbbreviation(runes[start:i]) {
			i = j - 1
			continue
		}
		if j < len(runes) && !boundaryFollows(runes, j) {
			i = j - 1
			continue
		}

		flush(j)
		i = j - 1
	}
	if start < len(runes) {
		flush(len(runes))
	}

	if len(sentences) == 0 {
		// Terminator-only input such as "..." carries no sentences.
		return nil, domain.WrapError(domain.ErrEmptyInput, "segment text", errors.New("no sentences found"))
	}
	return sentences, nil
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isClosing(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == ']' || r == '»' || r == '”' || r == '’'
}

// boundaryFollows reports whether the rune sequence after a terminator run
// looks like the start of a new sentence: whitespace, then an upper-case
// letter, digit, or opening punctuation.
func boundaryFollows(runes []rune, j int) bool {
	if !unicode.IsSpace(runes[j]) {
		return false
	}
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j >= len(runes) {
		return true
	}
	r := runes[j]
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '\'' || r == '(' || r == '«' || r == '“'
}

// isAbbreviation inspects the word immediately before a period. Single
// letters are treated as initials.
func isAbbreviation(before []rune) bool {
	end := len(before)
	beginning := end
	for beginning > 0 && unicode.IsLetter(before[beginning-1]) {
		beginning--
	}
	word := strings.ToLower(string(before[beginning:end]))
	if word == "" {
		return false
	}
	if len([]rune(word)) == 1 {
		return true
	}
	_, ok := abbreviations[word]
	return ok
}

// tokenize lower-cases a sentence and strips punctuation and stop-words.
// Apostrophes inside a word are kept ("don't" stays one token).
func tokenize(text string) []string {
	stop := stopwords()
	tokens := make([]string, 0, 16)
	var b strings.Builder

	flush := func() {
		if b.Len() == 0 {
			return
		}
		token := strings.Trim(b.String(), "'’")
		b.Reset()
		if token == "" {
			return
		}
		if _, ok := stop[token]; ok {
			return
		}
		tokens = append(tokens, token)
	}

	for _, r := range text {
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
