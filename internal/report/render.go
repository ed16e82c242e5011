package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/clawboard/boardlens/internal/novelty"
	"github.com/clawboard/boardlens/internal/ratio"
)

const rule = "================================================================================"
const thinRule = "--------------------------------------------------------------------------------"

// RatioTableLimit caps how many ranked rows the ratio report prints.
const RatioTableLimit = 30

// RenderNovelty writes the full semantic novelty report: aggregate metrics,
// the corpus ranked most-derivative-first, and insights. Ordering and labels
// are the contract; widths and glyphs are presentation.
func RenderNovelty(w io.Writer, scores []novelty.Score) {
	ranked := RankByNovelty(scores)
	summary := SummarizeNovelty(scores)

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, cyan("SEMANTIC NOVELTY ANALYSIS"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", yellow("📊 AGGREGATE METRICS"))
	fmt.Fprintf(w, "  Average novelty: %.1f%%\n", summary.AverageNovelty*100)
	fmt.Fprintf(w, "  Pioneers (≥80%% new concepts): %d/%d\n", summary.Pioneers, summary.TaskCount)
	fmt.Fprintf(w, "  Echoes (<20%% new concepts): %d/%d\n", summary.Echoes, summary.TaskCount)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", yellow("🔍 TASKS RANKED BY NOVELTY (lowest = most derivative)"))
	fmt.Fprintf(w, "%-8s %-13s %-12s %-7s %s\n", "ID", "Type", "Agent", "Nov%", "Title")
	fmt.Fprintln(w, thinRule)
	for _, r := range ranked {
		band := novelty.Classify(r.Novelty)
		fmt.Fprintf(w, "#%-7s %-13s %-12s %-7s %s\n",
			r.ID,
			band.Color().Sprint(band.Label()),
			r.Agent,
			fmt.Sprintf("%.0f%%", r.Novelty*100),
			truncate(r.Title, 40))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", yellow("💡 INSIGHTS"))
	if summary.Derivative > 0 {
		fmt.Fprintf(w, "  • %d tasks have <40%% novel concepts (potentially redundant)\n", summary.Derivative)
	}
	if summary.MostNovel != nil {
		fmt.Fprintf(w, "  • Most novel task: #%s (%.0f%% new concepts)\n",
			summary.MostNovel.ID, summary.MostNovel.Novelty*100)
	}
	if len(summary.AgentMeans) > 0 {
		fmt.Fprintf(w, "\n  %s\n", yellow("📈 AGENT NOVELTY AVERAGES:"))
		for _, m := range summary.AgentMeans {
			fmt.Fprintf(w, "     %s: %.0f%% (n=%d)\n", m.Agent, m.Mean*100, m.Count)
		}
	}
}

// RenderRatio writes the full talk-to-code report: aggregate metrics, the
// top-ranked tasks (infinite ratios first), and insights.
func RenderRatio(w io.Writer, scores []ratio.Score) {
	ranked := RankByRatio(scores)
	summary := SummarizeRatio(scores)

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, cyan("TALK-TO-CODE RATIO ANALYSIS"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	shippedPct := 0.0
	if summary.TaskCount > 0 {
		shippedPct = float64(summary.Shipped) / float64(summary.TaskCount) * 100
	}
	fmt.Fprintf(w, "%s\n", yellow("📊 AGGREGATE METRICS"))
	fmt.Fprintf(w, "  Total tasks analyzed: %d\n", summary.TaskCount)
	fmt.Fprintf(w, "  Total comments: %d\n", summary.TotalComments)
	fmt.Fprintf(w, "  Total PRs: %d\n", summary.TotalPRs)
	fmt.Fprintf(w, "  Talk-to-code ratio: %.1f\n", summary.OverallRatio)
	fmt.Fprintf(w, "  Tasks with PRs: %d/%d (%.0f%%)\n", summary.Shipped, summary.TaskCount, shippedPct)
	fmt.Fprintf(w, "  All talk, no code: %d\n", summary.AllTalk)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", yellow("🔍 TASKS RANKED BY DISCOURSE/DELIVERY RATIO"))
	fmt.Fprintf(w, "%-7s %-14s %-12s %-4s %-4s %-8s %s\n", "ID", "Type", "Agent", "C", "PR", "Ratio", "Title")
	fmt.Fprintln(w, thinRule)
	for i, m := range ranked {
		if i >= RatioTableLimit {
			break
		}
		class := ratio.Classify(m)
		fmt.Fprintf(w, "#%-6s %-14s %-12s %-4d %-4d %-8s %s\n",
			m.ID,
			class.Color().Sprint(class.Label()),
			m.Agent,
			m.Comments,
			m.PRs,
			m.Ratio.String(),
			truncate(m.Title, 30))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", yellow("💡 INSIGHTS"))
	if summary.AllTalk > 0 {
		fmt.Fprintf(w, "  • %d tasks have comments but no PRs (discourse without delivery)\n", summary.AllTalk)
	}
	if summary.HighRatio > 0 {
		fmt.Fprintf(w, "  • %d tasks have >5:1 talk-to-code ratio (architecture-heavy)\n", summary.HighRatio)
	}
	if summary.Shipped > 0 {
		fmt.Fprintf(w, "  • Tasks with PRs average %.1f comments per PR\n", summary.AvgShippedRatio)
	}
	if summary.MostDiscourseHeavy != nil {
		fmt.Fprintf(w, "  • Most discourse-heavy: Task #%s (%d comments, 0 PRs)\n",
			summary.MostDiscourseHeavy.ID, summary.MostDiscourseHeavy.Comments)
	}
	if summary.BestBuilder != nil {
		fmt.Fprintf(w, "  • Highest code-to-talk: Task #%s (%d PRs, %d comments)\n",
			summary.BestBuilder.ID, summary.BestBuilder.PRs, summary.BestBuilder.Comments)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}

// truncate shortens s to max characters, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}
