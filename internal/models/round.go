package models

import "time"

// Round is immutable after creation except for NextRoundID, which is set
// once when the following round of the same session is created.
type Round struct {
	ID          string               `bson:"_id" json:"id"`
	SessionID   string               `bson:"session_id" json:"session_id"`
	RoundNumber int                  `bson:"round_number" json:"round_number"`
	TotalRounds int                  `bson:"total_rounds" json:"total_rounds"`
	Content     map[string]Challenge `bson:"content" json:"content"`
	NextRoundID string               `bson:"next_round_id,omitempty" json:"next_round_id,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
}
