package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"quest-read-service/internal/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordEventInput carries one answer attempt. Required fields are
// pointers so that zero values (latency 0, is_correct false) are
// distinguishable from absent fields. Extra is typed loosely on purpose:
// a non-map value is replaced with an empty map rather than rejected.
type RecordEventInput struct {
	SessionID     *string `json:"session_id" validate:"required"`
	RoundID       *string `json:"round_id" validate:"required"`
	TaskComponent *string `json:"task_component" validate:"required"`
	Selected      *string `json:"selected" validate:"required"`
	Correct       *string `json:"correct" validate:"required"`
	IsCorrect     *bool   `json:"is_correct" validate:"required"`
	LatencyMs     *int    `json:"latency_ms" validate:"required"`
	AttemptNumber *int    `json:"attempt_number" validate:"required"`
	Extra         any     `json:"extra"`
}

type EventService struct {
	sessions SessionStore
	rounds   RoundStore
	events   EventStore
	validate *validator.Validate
}

func NewEventService(sessions SessionStore, rounds RoundStore, events EventStore) *EventService {
	v := validator.New()
	// Report missing fields under their json names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &EventService{
		sessions: sessions,
		rounds:   rounds,
		events:   events,
		validate: v,
	}
}

// RecordEvent validates the input, resolves the round scoped to its
// session, and appends an immutable event. Latency is floored at 0 and
// attempt number at 1; neither is a hard failure.
func (s *EventService) RecordEvent(ctx context.Context, input RecordEventInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return "", &ValidationError{Fields: missing}
		}
		return "", err
	}

	session, err := s.sessions.FindByID(ctx, *input.SessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotFound
		}
		return "", err
	}
	round, err := s.rounds.FindBySessionAndID(ctx, session.ID, *input.RoundID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotFound
		}
		return "", err
	}

	latency := *input.LatencyMs
	if latency < 0 {
		latency = 0
	}
	attempt := *input.AttemptNumber
	if attempt < 1 {
		attempt = 1
	}
	extra, ok := input.Extra.(map[string]any)
	if !ok || extra == nil {
		extra = map[string]any{}
	}

	event := &models.Event{
		SessionID:     session.ID,
		RoundID:       round.ID,
		TaskComponent: *input.TaskComponent,
		Selected:      *input.Selected,
		Correct:       *input.Correct,
		IsCorrect:     *input.IsCorrect,
		LatencyMs:     latency,
		AttemptNumber: attempt,
		Extra:         extra,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return "", err
	}
	return event.ID, nil
}
