package service

import (
	"context"

	"quest-read-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Store interfaces decouple the lifecycle logic from Mongo; the
// repository package provides the production implementations.

type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, id string, update bson.M) error
}

type RoundStore interface {
	Create(ctx context.Context, round *models.Round) error
	FindByID(ctx context.Context, id string) (*models.Round, error)
	FindBySessionAndID(ctx context.Context, sessionID, id string) (*models.Round, error)
	SetNextRound(ctx context.Context, id, nextRoundID string) error
}

type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	FindBySession(ctx context.Context, sessionID string) ([]models.Event, error)
}

// RoundCache is an optional read-through cache for round payloads.
// Rounds never change after session creation, so cached entries cannot
// go stale.
type RoundCache interface {
	Get(ctx context.Context, id string) (*models.Round, bool)
	Set(ctx context.Context, round *models.Round)
}
