package models

import "time"

// Session statuses. A session is open from creation until FinishSession
// stamps it; the transition is one-way.
const (
	SessionOpen     = "open"
	SessionFinished = "finished"
)

type Session struct {
	ID           string     `bson:"_id" json:"id"`
	AgeBand      string     `bson:"age_band" json:"age_band"`
	Status       string     `bson:"status" json:"status"`
	StartedAt    time.Time  `bson:"started_at" json:"started_at"`
	FinishedAt   *time.Time `bson:"finished_at,omitempty" json:"finished_at,omitempty"`
	OverallScore *float64   `bson:"overall_score,omitempty" json:"overall_score,omitempty"`
	RiskLevel    string     `bson:"risk_level,omitempty" json:"risk_level,omitempty"`
	Summary      string     `bson:"summary,omitempty" json:"summary,omitempty"`
}
