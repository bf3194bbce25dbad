package service

import (
	"context"
	"errors"
	"time"

	"quest-read-service/internal/catalog"
	"quest-read-service/internal/difficulty"
	"quest-read-service/internal/models"
	"quest-read-service/internal/scoring"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionService struct {
	sessions SessionStore
	rounds   RoundStore
	events   EventStore
	cache    RoundCache
}

func NewSessionService(sessions SessionStore, rounds RoundStore, events EventStore) *SessionService {
	return &SessionService{
		sessions: sessions,
		rounds:   rounds,
		events:   events,
	}
}

// WithRoundCache attaches an optional round cache. A nil cache leaves
// lookups going straight to the store.
func (s *SessionService) WithRoundCache(cache RoundCache) *SessionService {
	s.cache = cache
	return s
}

// StartResult is returned by StartSession.
type StartResult struct {
	SessionID    string `json:"session_id"`
	FirstRoundID string `json:"first_round_id"`
}

// FinishResult is returned by FinishSession. NextRoundID is always null:
// finishing never produces a further round.
type FinishResult struct {
	Subscores    map[string]scoring.Subscore `json:"subscores"`
	OverallScore float64                     `json:"overall_score"`
	RiskLevel    string                      `json:"risk_level"`
	Summary      string                      `json:"summary"`
	NextRoundID  *string                     `json:"next_round_id"`
}

// StartSession normalizes the age band, creates the session and its
// round(s) at the band's difficulty, and links round 1 forward to round
// 2 when the band gets two rounds.
func (s *SessionService) StartSession(ctx context.Context, ageBandInput string) (*StartResult, error) {
	ageBand := difficulty.NormalizeAgeBand(ageBandInput)
	totalRounds := difficulty.TotalRounds(ageBand)

	session := &models.Session{
		ID:        uuid.NewString(),
		AgeBand:   ageBand,
		Status:    models.SessionOpen,
		StartedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	roundOne := buildRound(session.ID, 1, totalRounds, ageBand)
	if err := s.rounds.Create(ctx, roundOne); err != nil {
		return nil, err
	}

	if totalRounds > 1 {
		roundTwo := buildRound(session.ID, 2, totalRounds, ageBand)
		if err := s.rounds.Create(ctx, roundTwo); err != nil {
			return nil, err
		}
		if err := s.rounds.SetNextRound(ctx, roundOne.ID, roundTwo.ID); err != nil {
			return nil, err
		}
		roundOne.NextRoundID = roundTwo.ID
	}

	return &StartResult{SessionID: session.ID, FirstRoundID: roundOne.ID}, nil
}

// GetRound fetches a round by id, going through the cache when one is
// configured.
func (s *SessionService) GetRound(ctx context.Context, roundID string) (*models.Round, error) {
	if s.cache != nil {
		if round, ok := s.cache.Get(ctx, roundID); ok {
			return round, nil
		}
	}
	round, err := s.rounds.FindByID(ctx, roundID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, round)
	}
	return round, nil
}

// FinishSession aggregates all recorded events for the session and
// stamps the session's terminal fields. Calling it again recomputes from
// the current event set and overwrites; the write itself is one atomic
// update.
func (s *SessionService) FinishSession(ctx context.Context, sessionID string) (*FinishResult, error) {
	if _, err := s.sessions.FindByID(ctx, sessionID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	events, err := s.events.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	report := scoring.Aggregate(events)

	update := bson.M{
		"status":        models.SessionFinished,
		"finished_at":   time.Now().UTC(),
		"overall_score": report.OverallScore,
		"risk_level":    report.RiskLevel,
		"summary":       report.Summary,
	}
	if err := s.sessions.Update(ctx, sessionID, update); err != nil {
		return nil, err
	}

	return &FinishResult{
		Subscores:    report.Subscores,
		OverallScore: report.OverallScore,
		RiskLevel:    report.RiskLevel,
		Summary:      report.Summary,
		NextRoundID:  nil,
	}, nil
}

func buildRound(sessionID string, roundNumber, totalRounds int, ageBand string) *models.Round {
	level := difficulty.Level(ageBand, roundNumber)
	return &models.Round{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		RoundNumber: roundNumber,
		TotalRounds: totalRounds,
		Content:     catalog.ForRound(roundNumber, level),
		CreatedAt:   time.Now().UTC(),
	}
}
