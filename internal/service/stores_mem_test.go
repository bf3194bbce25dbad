package service

import (
	"context"
	"fmt"
	"time"

	"quest-read-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory store fakes backing the lifecycle tests. They mirror the
// store's single-document semantics, including mongo.ErrNoDocuments on
// misses, so the services see the same error surface as in production.

type memBackend struct {
	sessions map[string]*models.Session
	rounds   map[string]*models.Round
	events   []models.Event
}

func newMemBackend() *memBackend {
	return &memBackend{
		sessions: make(map[string]*models.Session),
		rounds:   make(map[string]*models.Round),
	}
}

func (b *memBackend) sessionStore() *memSessionStore { return &memSessionStore{b: b} }
func (b *memBackend) roundStore() *memRoundStore     { return &memRoundStore{b: b} }
func (b *memBackend) eventStore() *memEventStore     { return &memEventStore{b: b} }

type memSessionStore struct{ b *memBackend }

func (s *memSessionStore) Create(_ context.Context, session *models.Session) error {
	clone := *session
	s.b.sessions[session.ID] = &clone
	return nil
}

func (s *memSessionStore) FindByID(_ context.Context, id string) (*models.Session, error) {
	session, ok := s.b.sessions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *session
	return &clone, nil
}

func (s *memSessionStore) Update(_ context.Context, id string, update bson.M) error {
	session, ok := s.b.sessions[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := update["status"].(string); ok {
		session.Status = v
	}
	if v, ok := update["finished_at"].(time.Time); ok {
		session.FinishedAt = &v
	}
	if v, ok := update["overall_score"].(float64); ok {
		session.OverallScore = &v
	}
	if v, ok := update["risk_level"].(string); ok {
		session.RiskLevel = v
	}
	if v, ok := update["summary"].(string); ok {
		session.Summary = v
	}
	return nil
}

type memRoundStore struct{ b *memBackend }

func (s *memRoundStore) Create(_ context.Context, round *models.Round) error {
	clone := *round
	s.b.rounds[round.ID] = &clone
	return nil
}

func (s *memRoundStore) FindByID(_ context.Context, id string) (*models.Round, error) {
	round, ok := s.b.rounds[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *round
	return &clone, nil
}

func (s *memRoundStore) FindBySessionAndID(_ context.Context, sessionID, id string) (*models.Round, error) {
	round, ok := s.b.rounds[id]
	if !ok || round.SessionID != sessionID {
		return nil, mongo.ErrNoDocuments
	}
	clone := *round
	return &clone, nil
}

func (s *memRoundStore) SetNextRound(_ context.Context, id, nextRoundID string) error {
	round, ok := s.b.rounds[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	round.NextRoundID = nextRoundID
	return nil
}

type memEventStore struct{ b *memBackend }

func (s *memEventStore) Create(_ context.Context, event *models.Event) error {
	event.ID = fmt.Sprintf("evt-%d", len(s.b.events)+1)
	s.b.events = append(s.b.events, *event)
	return nil
}

func (s *memEventStore) FindBySession(_ context.Context, sessionID string) ([]models.Event, error) {
	var events []models.Event
	for _, e := range s.b.events {
		if e.SessionID == sessionID {
			events = append(events, e)
		}
	}
	return events, nil
}

// memRoundCache counts hits and misses for cache wiring tests.
type memRoundCache struct {
	entries map[string]*models.Round
	hits    int
	misses  int
}

func newMemRoundCache() *memRoundCache {
	return &memRoundCache{entries: make(map[string]*models.Round)}
}

func (c *memRoundCache) Get(_ context.Context, id string) (*models.Round, bool) {
	round, ok := c.entries[id]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	clone := *round
	return &clone, true
}

func (c *memRoundCache) Set(_ context.Context, round *models.Round) {
	clone := *round
	c.entries[round.ID] = &clone
}
