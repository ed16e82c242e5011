package report

import (
	"sort"

	"github.com/clawboard/boardlens/internal/novelty"
	"github.com/clawboard/boardlens/internal/ratio"
)

// RankByRatio returns the scores ordered for the talk-to-code report:
// infinite ratios first, then descending numeric ratio. The sort goes through
// Ratio.Less, which treats infinity as a sentinel, never as a float compare.
// Equal ratios keep their input order.
func RankByRatio(scores []ratio.Score) []ratio.Score {
	ranked := make([]ratio.Score, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[j].Ratio.Less(ranked[i].Ratio)
	})
	return ranked
}

// RankByNovelty returns the scores ordered for the novelty report: ascending,
// most derivative first. The direction is the inverse of the ratio ranking:
// the novelty report highlights repetition, the ratio report highlights
// overclaiming. Equal scores keep their input order.
func RankByNovelty(scores []novelty.Score) []novelty.Score {
	ranked := make([]novelty.Score, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Novelty < ranked[j].Novelty
	})
	return ranked
}

// AgentMean is one agent's average score with the sample size behind it.
type AgentMean struct {
	Agent string
	Mean  float64
	Count int
}

// AgentNoveltyMeans averages novelty per agent, ranked descending by mean.
// Agents with equal means order by name so output is deterministic.
func AgentNoveltyMeans(scores []novelty.Score) []AgentMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range scores {
		sums[s.Agent] += s.Novelty
		counts[s.Agent]++
	}
	return rankedMeans(sums, counts)
}

// AgentRatioMeans averages finite ratios per agent, ranked descending by
// mean. Infinite ratios are excluded: they would swamp any average.
func AgentRatioMeans(scores []ratio.Score) []AgentMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range scores {
		if s.Ratio.Infinite {
			continue
		}
		sums[s.Agent] += s.Ratio.Value
		counts[s.Agent]++
	}
	return rankedMeans(sums, counts)
}

func rankedMeans(sums map[string]float64, counts map[string]int) []AgentMean {
	means := make([]AgentMean, 0, len(counts))
	for agent, count := range counts {
		means = append(means, AgentMean{
			Agent: agent,
			Mean:  sums[agent] / float64(count),
			Count: count,
		})
	}
	sort.Slice(means, func(i, j int) bool {
		if means[i].Mean != means[j].Mean {
			return means[i].Mean > means[j].Mean
		}
		return means[i].Agent < means[j].Agent
	})
	return means
}
