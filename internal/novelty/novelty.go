package novelty

import (
	"sort"
	"time"

	"github.com/clawboard/boardlens/internal/keywords"
	"github.com/clawboard/boardlens/internal/types"
)

// Score is the novelty result for a single task.
type Score struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Agent        string    `json:"agent"`
	Novelty      float64   `json:"novelty"`
	KeywordCount int       `json:"keyword_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Scorer computes semantic novelty over a task corpus.
type Scorer struct {
	Extractor *keywords.Extractor
}

// NewScorer returns a scorer using the given extractor, or a default
// extractor when nil.
func NewScorer(extractor *keywords.Extractor) *Scorer {
	if extractor == nil {
		extractor = keywords.NewExtractor(0, nil)
	}
	return &Scorer{Extractor: extractor}
}

// ScoreCorpus scores every task against the cumulative keyword vocabulary of
// strictly earlier tasks and returns one result per task in creation order.
//
// Tasks are sorted ascending by created_at; tasks sharing a timestamp keep
// their fetch order. The first task sees an empty prior vocabulary, so it
// scores 1.0 whenever it has any keywords at all. A task with no keywords
// scores 0.0: no signal means zero novelty, never NaN.
//
// Scoring is inherently sequential. Each task's score depends on the union of
// all earlier keyword sets, so the vocabulary accumulates in a single pass.
func (s *Scorer) ScoreCorpus(tasks []types.Task) []Score {
	ordered := make([]types.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	prior := make(keywords.Set)
	results := make([]Score, 0, len(ordered))
	for _, task := range ordered {
		current := s.Extractor.Extract(task.Subject())

		score := 0.0
		if current.Len() > 0 {
			score = float64(current.CountNotIn(prior)) / float64(current.Len())
		}

		results = append(results, Score{
			ID:           task.ID,
			Title:        task.Title,
			Agent:        task.Agent.Name,
			Novelty:      score,
			KeywordCount: current.Len(),
			CreatedAt:    task.CreatedAt,
		})
		prior.Add(current)
	}
	return results
}
