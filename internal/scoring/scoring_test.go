package scoring

import (
	"testing"

	"quest-read-service/internal/models"
)

func event(task string, correct bool, latencyMs int) models.Event {
	return models.Event{
		SessionID:     "s1",
		RoundID:       "r1",
		TaskComponent: task,
		IsCorrect:     correct,
		LatencyMs:     latencyMs,
	}
}

func TestAggregateMixedTasks(t *testing.T) {
	events := []models.Event{
		event(models.TaskScramble, true, 1000),
		event(models.TaskScramble, false, 2000),
		event(models.TaskImageColor, true, 500),
	}

	report := Aggregate(events)

	scramble, ok := report.Subscores[models.TaskScramble]
	if !ok {
		t.Fatal("missing scramble subscore")
	}
	if scramble.Accuracy != 50.0 {
		t.Errorf("scramble accuracy = %v, want 50.0", scramble.Accuracy)
	}
	if scramble.AvgResponseTimeMs != 1500.0 {
		t.Errorf("scramble avg latency = %v, want 1500.0", scramble.AvgResponseTimeMs)
	}

	imageColor, ok := report.Subscores[models.TaskImageColor]
	if !ok {
		t.Fatal("missing image_color subscore")
	}
	if imageColor.Accuracy != 100.0 {
		t.Errorf("image_color accuracy = %v, want 100.0", imageColor.Accuracy)
	}
	if imageColor.AvgResponseTimeMs != 500.0 {
		t.Errorf("image_color avg latency = %v, want 500.0", imageColor.AvgResponseTimeMs)
	}

	if report.OverallScore != 75.0 {
		t.Errorf("overall score = %v, want 75.0", report.OverallScore)
	}
	if report.RiskLevel != RiskMedium {
		t.Errorf("risk level = %q, want %q", report.RiskLevel, RiskMedium)
	}
	if report.Summary != summaries[RiskMedium] {
		t.Errorf("summary = %q, want medium-tier summary", report.Summary)
	}
}

func TestAggregateNoEvents(t *testing.T) {
	report := Aggregate(nil)

	if len(report.Subscores) != 0 {
		t.Errorf("want empty subscores, got %v", report.Subscores)
	}
	if report.OverallScore != 0.0 {
		t.Errorf("overall score = %v, want 0.0", report.OverallScore)
	}
	if report.RiskLevel != RiskHigh {
		t.Errorf("risk level = %q, want %q", report.RiskLevel, RiskHigh)
	}
	if report.Summary != summaries[RiskHigh] {
		t.Errorf("summary = %q, want high-tier summary", report.Summary)
	}
}

func TestAggregateOmitsAbsentTasks(t *testing.T) {
	events := []models.Event{
		event(models.TaskAudioMismatch, true, 800),
		event(models.TaskAudioMismatch, true, 1200),
	}

	report := Aggregate(events)

	if len(report.Subscores) != 1 {
		t.Fatalf("want 1 subscore, got %d", len(report.Subscores))
	}
	if _, ok := report.Subscores[models.TaskScramble]; ok {
		t.Error("scramble had no attempts and must not appear in subscores")
	}
	if report.OverallScore != 100.0 {
		t.Errorf("overall score = %v, want 100.0", report.OverallScore)
	}
	if report.RiskLevel != RiskLow {
		t.Errorf("risk level = %q, want %q", report.RiskLevel, RiskLow)
	}
}

func TestAggregateRounding(t *testing.T) {
	events := []models.Event{
		event(models.TaskScramble, true, 100),
		event(models.TaskScramble, false, 105),
		event(models.TaskScramble, false, 110),
	}

	report := Aggregate(events)

	scramble := report.Subscores[models.TaskScramble]
	if scramble.Accuracy != 33.33 {
		t.Errorf("accuracy = %v, want 33.33", scramble.Accuracy)
	}
	if scramble.AvgResponseTimeMs != 105.0 {
		t.Errorf("avg latency = %v, want 105.0", scramble.AvgResponseTimeMs)
	}
	if report.OverallScore != 33.33 {
		t.Errorf("overall score = %v, want 33.33", report.OverallScore)
	}
}

func TestRiskFor(t *testing.T) {
	testCases := []struct {
		score    float64
		expected string
	}{
		{100, RiskLow},
		{80, RiskLow},
		{79.99, RiskMedium},
		{50, RiskMedium},
		{49.99, RiskHigh},
		{0, RiskHigh},
	}

	for _, tc := range testCases {
		if got := RiskFor(tc.score); got != tc.expected {
			t.Errorf("RiskFor(%v) = %q, want %q", tc.score, got, tc.expected)
		}
	}
}
