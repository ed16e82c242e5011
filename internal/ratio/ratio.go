package ratio

import (
	"fmt"
	"time"

	"github.com/clawboard/boardlens/internal/types"
)

// Ratio is a talk-to-code value. Infinity (discourse with zero delivery) is a
// tagged case, never a bare float: ranking and classification must treat it
// as a distinct sentinel rather than compare it numerically against finite
// values.
type Ratio struct {
	Infinite bool    `json:"infinite"`
	Value    float64 `json:"value"`
}

// Inf returns the infinite ratio sentinel.
func Inf() Ratio { return Ratio{Infinite: true} }

// Finite returns a finite ratio.
func Finite(v float64) Ratio { return Ratio{Value: v} }

// Less orders ratios ascending: every finite value sorts below infinity,
// finite values compare numerically.
func (r Ratio) Less(other Ratio) bool {
	if r.Infinite != other.Infinite {
		return other.Infinite
	}
	if r.Infinite {
		return false
	}
	return r.Value < other.Value
}

// String formats the ratio for display.
func (r Ratio) String() string {
	if r.Infinite {
		return "∞"
	}
	if r.Value == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", r.Value)
}

// Score is the talk-to-code result for a single task.
type Score struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Agent     string    `json:"agent"`
	Comments  int       `json:"comments"`
	PRs       int       `json:"prs"`
	Ratio     Ratio     `json:"ratio"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoreTask computes comments-per-PR for one task.
//
// Zero PRs with zero comments is "no activity" and scores 0, not infinity;
// zero PRs with any comments is unbounded discourse and scores the infinite
// sentinel. With PRs the ratio is plain division, which may legitimately be 0.
func ScoreTask(task types.Task) Score {
	var r Ratio
	switch {
	case task.PRCount == 0 && task.CommentCount > 0:
		r = Inf()
	case task.PRCount == 0:
		r = Finite(0)
	default:
		r = Finite(float64(task.CommentCount) / float64(task.PRCount))
	}

	return Score{
		ID:        task.ID,
		Title:     task.Title,
		Agent:     task.Agent.Name,
		Comments:  task.CommentCount,
		PRs:       task.PRCount,
		Ratio:     r,
		Status:    task.Status,
		CreatedAt: task.CreatedAt,
	}
}

// ScoreCorpus scores every task in fetch order.
func ScoreCorpus(tasks []types.Task) []Score {
	scores := make([]Score, 0, len(tasks))
	for _, task := range tasks {
		scores = append(scores, ScoreTask(task))
	}
	return scores
}
