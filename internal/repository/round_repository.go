package repository

import (
	"context"

	"quest-read-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoundRepository struct {
	Col *mongo.Collection
}

func NewRoundRepository(db *mongo.Database) *RoundRepository {
	return &RoundRepository{Col: db.Collection("rounds")}
}

func (r *RoundRepository) Create(ctx context.Context, round *models.Round) error {
	_, err := r.Col.InsertOne(ctx, round)
	return err
}

func (r *RoundRepository) FindByID(ctx context.Context, id string) (*models.Round, error) {
	var round models.Round
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&round); err != nil {
		return nil, err
	}
	return &round, nil
}

// FindBySessionAndID resolves a round scoped to its owning session, so a
// round id belonging to another session behaves like a missing round.
func (r *RoundRepository) FindBySessionAndID(ctx context.Context, sessionID, id string) (*models.Round, error) {
	var round models.Round
	filter := bson.M{"_id": id, "session_id": sessionID}
	if err := r.Col.FindOne(ctx, filter).Decode(&round); err != nil {
		return nil, err
	}
	return &round, nil
}

// SetNextRound records the forward link from a round to the round that
// follows it in the same session.
func (r *RoundRepository) SetNextRound(ctx context.Context, id, nextRoundID string) error {
	update := bson.M{"$set": bson.M{"next_round_id": nextRoundID}}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
