package report

import (
	"github.com/clawboard/boardlens/internal/novelty"
	"github.com/clawboard/boardlens/internal/ratio"
)

// NoveltySummary aggregates a scored corpus for the novelty report.
type NoveltySummary struct {
	TaskCount      int
	AverageNovelty float64

	// Pioneers counts tasks with novelty >= 0.8, Echoes with novelty < 0.2,
	// Derivative with novelty < 0.4.
	Pioneers   int
	Echoes     int
	Derivative int

	// MostNovel is the highest-scoring task, nil on an empty corpus.
	MostNovel *novelty.Score

	AgentMeans []AgentMean
}

// SummarizeNovelty computes aggregate metrics and insight counts over novelty
// scores.
func SummarizeNovelty(scores []novelty.Score) NoveltySummary {
	s := NoveltySummary{TaskCount: len(scores)}
	if len(scores) == 0 {
		return s
	}

	sum := 0.0
	for i := range scores {
		sc := &scores[i]
		sum += sc.Novelty
		if sc.Novelty >= 0.8 {
			s.Pioneers++
		}
		if sc.Novelty < 0.2 {
			s.Echoes++
		}
		if sc.Novelty < 0.4 {
			s.Derivative++
		}
		if s.MostNovel == nil || sc.Novelty > s.MostNovel.Novelty {
			s.MostNovel = sc
		}
	}
	s.AverageNovelty = sum / float64(len(scores))
	s.AgentMeans = AgentNoveltyMeans(scores)
	return s
}

// RatioSummary aggregates a scored corpus for the talk-to-code report.
type RatioSummary struct {
	TaskCount     int
	TotalComments int
	TotalPRs      int

	// OverallRatio is corpus-wide comments per PR. A corpus with zero PRs
	// divides by one instead, so the headline number stays finite.
	OverallRatio float64

	// AllTalk counts tasks with comments but no PRs. Shipped counts tasks
	// with at least one PR. HighRatio counts finite ratios above 5.
	// ZeroComments counts tasks nobody has discussed.
	AllTalk      int
	Shipped      int
	HighRatio    int
	ZeroComments int

	// AvgShippedRatio is the mean comments-per-PR over tasks with PRs.
	// Valid only when Shipped > 0.
	AvgShippedRatio float64

	// MostDiscourseHeavy is the all-talk task with the most comments.
	// BestBuilder is the shipped task with the lowest ratio. Either is nil
	// when no task qualifies.
	MostDiscourseHeavy *ratio.Score
	BestBuilder        *ratio.Score

	AgentMeans []AgentMean
}

// SummarizeRatio computes aggregate metrics and insight counts over
// talk-to-code scores.
func SummarizeRatio(scores []ratio.Score) RatioSummary {
	s := RatioSummary{TaskCount: len(scores)}
	if len(scores) == 0 {
		return s
	}

	shippedSum := 0.0
	for i := range scores {
		sc := &scores[i]
		s.TotalComments += sc.Comments
		s.TotalPRs += sc.PRs

		if sc.PRs == 0 && sc.Comments > 0 {
			s.AllTalk++
			if s.MostDiscourseHeavy == nil || sc.Comments > s.MostDiscourseHeavy.Comments {
				s.MostDiscourseHeavy = sc
			}
		}
		if sc.PRs > 0 {
			s.Shipped++
			shippedSum += sc.Ratio.Value
			if s.BestBuilder == nil || sc.Ratio.Less(s.BestBuilder.Ratio) {
				s.BestBuilder = sc
			}
		}
		if !sc.Ratio.Infinite && sc.Ratio.Value > 5 {
			s.HighRatio++
		}
		if sc.Comments == 0 {
			s.ZeroComments++
		}
	}

	divisor := s.TotalPRs
	if divisor == 0 {
		divisor = 1
	}
	s.OverallRatio = float64(s.TotalComments) / float64(divisor)

	if s.Shipped > 0 {
		s.AvgShippedRatio = shippedSum / float64(s.Shipped)
	}
	s.AgentMeans = AgentRatioMeans(scores)
	return s
}
