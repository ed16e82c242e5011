package ratio

import (
	"testing"

	"github.com/clawboard/boardlens/internal/types"
)

func taskWith(comments, prs int) types.Task {
	return types.Task{
		ID:           "t1",
		Title:        "some task",
		Agent:        types.Agent{Name: "echo"},
		CommentCount: comments,
		PRCount:      prs,
	}
}

func TestScoreTaskSentinelLaws(t *testing.T) {
	tests := []struct {
		name         string
		comments     int
		prs          int
		wantInfinite bool
		wantValue    float64
		wantClass    Class
	}{
		{"all talk", 5, 0, true, 0, ClassAllTalk},
		{"no activity", 0, 0, false, 0, ClassNew},
		{"pure delivery", 0, 3, false, 0, ClassShipped},
		{"theory", 12, 1, false, 12.0, ClassTheory},
		{"active", 8, 2, false, 4.0, ClassActive},
		{"building", 3, 2, false, 1.5, ClassBuilding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreTask(taskWith(tt.comments, tt.prs))
			if s.Ratio.Infinite != tt.wantInfinite {
				t.Errorf("infinite = %v, want %v", s.Ratio.Infinite, tt.wantInfinite)
			}
			if !s.Ratio.Infinite && s.Ratio.Value != tt.wantValue {
				t.Errorf("value = %v, want %v", s.Ratio.Value, tt.wantValue)
			}
			if got := Classify(s); got != tt.wantClass {
				t.Errorf("class = %v, want %v", got, tt.wantClass)
			}
		})
	}
}

func TestClassifyThresholds(t *testing.T) {
	// Ratio exactly 10 is ACTIVE, exactly 3 is BUILDING: the thresholds are
	// strict.
	if got := Classify(ScoreTask(taskWith(10, 1))); got != ClassActive {
		t.Errorf("ratio 10 = %v, want %v", got, ClassActive)
	}
	if got := Classify(ScoreTask(taskWith(3, 1))); got != ClassBuilding {
		t.Errorf("ratio 3 = %v, want %v", got, ClassBuilding)
	}
	if got := Classify(ScoreTask(taskWith(11, 1))); got != ClassTheory {
		t.Errorf("ratio 11 = %v, want %v", got, ClassTheory)
	}
}

func TestClassifyActivityBeforeThresholds(t *testing.T) {
	// The activity cases win over any threshold: infinite ratio with
	// comments is ALL TALK, never THEORY.
	s := ScoreTask(taskWith(100, 0))
	if got := Classify(s); got != ClassAllTalk {
		t.Errorf("100 comments, 0 PRs = %v, want %v", got, ClassAllTalk)
	}
}

func TestRatioLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Ratio
		want bool
	}{
		{"finite below infinite", Finite(1e18), Inf(), true},
		{"infinite not below finite", Inf(), Finite(1e18), false},
		{"infinite not below infinite", Inf(), Inf(), false},
		{"finite ordering", Finite(2), Finite(3), true},
		{"equal finite", Finite(2), Finite(2), false},
		{"zero below any positive", Finite(0), Finite(0.1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("(%v).Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioString(t *testing.T) {
	if got := Inf().String(); got != "∞" {
		t.Errorf("infinite ratio renders %q, want ∞", got)
	}
	if got := Finite(0).String(); got != "0" {
		t.Errorf("zero ratio renders %q, want 0", got)
	}
	if got := Finite(2.5).String(); got != "2.5" {
		t.Errorf("finite ratio renders %q, want 2.5", got)
	}
}

func TestScoreTaskCarriesTaskFields(t *testing.T) {
	task := taskWith(4, 2)
	task.Status = "in_progress"
	s := ScoreTask(task)

	if s.ID != task.ID || s.Title != task.Title || s.Agent != "echo" {
		t.Errorf("score lost identity fields: %+v", s)
	}
	if s.Status != "in_progress" {
		t.Errorf("status = %q, want in_progress", s.Status)
	}
	if s.Comments != 4 || s.PRs != 2 {
		t.Errorf("counts = (%d, %d), want (4, 2)", s.Comments, s.PRs)
	}
}

func TestScoreCorpusPreservesOrder(t *testing.T) {
	tasks := []types.Task{taskWith(1, 1), taskWith(2, 1), taskWith(3, 1)}
	tasks[0].ID, tasks[1].ID, tasks[2].ID = "a", "b", "c"

	scores := ScoreCorpus(tasks)
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	for i, want := range []string{"a", "b", "c"} {
		if scores[i].ID != want {
			t.Errorf("scores[%d].ID = %q, want %q", i, scores[i].ID, want)
		}
	}
}
