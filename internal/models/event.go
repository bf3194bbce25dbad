package models

import "time"

// Task components, one per challenge type.
const (
	TaskImageColor    = "image_color"
	TaskScramble      = "scramble"
	TaskAudioMismatch = "audio_mismatch"
)

// TaskComponents lists the valid task components in catalog order.
var TaskComponents = []string{TaskImageColor, TaskScramble, TaskAudioMismatch}

// Event is one recorded answer attempt. Events are append-only facts:
// created once, never updated or deleted.
type Event struct {
	ID            string         `bson:"_id,omitempty" json:"id"`
	SessionID     string         `bson:"session_id" json:"session_id"`
	RoundID       string         `bson:"round_id" json:"round_id"`
	TaskComponent string         `bson:"task_component" json:"task_component"`
	Selected      string         `bson:"selected" json:"selected"`
	Correct       string         `bson:"correct" json:"correct"`
	IsCorrect     bool           `bson:"is_correct" json:"is_correct"`
	LatencyMs     int            `bson:"latency_ms" json:"latency_ms"`
	AttemptNumber int            `bson:"attempt_number" json:"attempt_number"`
	Extra         map[string]any `bson:"extra" json:"extra"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
}
