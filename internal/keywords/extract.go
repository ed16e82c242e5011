package keywords

import "strings"

// DefaultMinLength is the minimum token length kept by the extractor.
// Tokens shorter than this are discarded as noise.
const DefaultMinLength = 4

// defaultStopWords are common English function words that carry no topical
// signal. The exact list is a tuning parameter, not a contract; callers that
// need domain-specific exclusions add them via Extractor.StopWords.
var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "do", "does", "did", "will", "would",
	"could", "should", "may", "might", "can", "this", "that", "these",
	"those", "it", "its", "you", "your", "we", "our", "they", "their",
}

// Set is a set of normalized content words.
type Set map[string]struct{}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s) }

// Has reports whether the set contains word.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Add inserts every word of other into s.
func (s Set) Add(other Set) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// CountNotIn returns how many words of s are absent from prior.
func (s Set) CountNotIn(prior Set) int {
	n := 0
	for w := range s {
		if !prior.Has(w) {
			n++
		}
	}
	return n
}

// Extractor turns free text into a keyword set.
type Extractor struct {
	// MinLength is the minimum length of a kept token. Zero means
	// DefaultMinLength.
	MinLength int

	// StopWords are excluded in addition to the built-in list.
	StopWords []string

	stop map[string]struct{}
}

// NewExtractor returns an extractor with the default stop-word list, the
// given extras appended, and the given minimum token length (0 for default).
func NewExtractor(minLength int, extraStopWords []string) *Extractor {
	e := &Extractor{MinLength: minLength, StopWords: extraStopWords}
	e.buildStopSet()
	return e
}

func (e *Extractor) buildStopSet() {
	e.stop = make(map[string]struct{}, len(defaultStopWords)+len(e.StopWords))
	for _, w := range defaultStopWords {
		e.stop[w] = struct{}{}
	}
	for _, w := range e.StopWords {
		e.stop[strings.ToLower(w)] = struct{}{}
	}
}

// Extract normalizes text and returns its set of content words: whitespace
// tokens that meet the length cutoff and are not stop words. Duplicates
// collapse; empty or all-noise input yields an empty set.
func (e *Extractor) Extract(text string) Set {
	if e.stop == nil {
		e.buildStopSet()
	}
	minLen := e.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}

	set := make(Set)
	for _, tok := range strings.Fields(Normalize(text)) {
		if len(tok) < minLen {
			continue
		}
		if _, stopped := e.stop[tok]; stopped {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}
