// Package scoring turns a session's recorded events into per-task
// subscores, an overall score, and a coarse risk tier.
package scoring

import (
	"math"
	"sort"

	"quest-read-service/internal/models"
)

// Risk tiers derived from the overall score.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

var summaries = map[string]string{
	RiskLow:    "Strong early-reading indicators observed.",
	RiskMedium: "Mixed performance; monitor progress and continue guided reading.",
	RiskHigh:   "Potential reading-risk indicators detected; consider specialist follow-up.",
}

// Subscore is the aggregate for one task component.
type Subscore struct {
	Accuracy          float64 `json:"accuracy"`
	AvgResponseTimeMs float64 `json:"avgResponseTimeMs"`
}

// Report is the result of aggregating one session's events. Subscores
// only contains task components that actually occurred; a task with zero
// attempts is an absent key, not a zero entry.
type Report struct {
	Subscores    map[string]Subscore `json:"subscores"`
	OverallScore float64             `json:"overall_score"`
	RiskLevel    string              `json:"risk_level"`
	Summary      string              `json:"summary"`
}

type group struct {
	total        int
	correct      int
	latencyTotal int
}

// Aggregate groups events by task component and computes the report.
// With no events at all the overall score is 0.0 and the risk tier high.
func Aggregate(events []models.Event) Report {
	groups := make(map[string]*group)
	for _, e := range events {
		g := groups[e.TaskComponent]
		if g == nil {
			g = &group{}
			groups[e.TaskComponent] = g
		}
		g.total++
		if e.IsCorrect {
			g.correct++
		}
		g.latencyTotal += e.LatencyMs
	}

	// Sorted task order keeps the overall mean independent of map
	// iteration.
	tasks := make([]string, 0, len(groups))
	for task := range groups {
		tasks = append(tasks, task)
	}
	sort.Strings(tasks)

	subscores := make(map[string]Subscore, len(groups))
	accuracySum := 0.0
	for _, task := range tasks {
		g := groups[task]
		accuracy := float64(g.correct) / float64(g.total) * 100.0
		accuracySum += accuracy
		subscores[task] = Subscore{
			Accuracy:          round2(accuracy),
			AvgResponseTimeMs: round2(float64(g.latencyTotal) / float64(g.total)),
		}
	}

	overall := 0.0
	if len(tasks) > 0 {
		overall = round2(accuracySum / float64(len(tasks)))
	}

	risk := RiskFor(overall)
	return Report{
		Subscores:    subscores,
		OverallScore: overall,
		RiskLevel:    risk,
		Summary:      summaries[risk],
	}
}

// RiskFor maps an overall score onto a risk tier.
func RiskFor(overallScore float64) string {
	switch {
	case overallScore >= 80:
		return RiskLow
	case overallScore >= 50:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
