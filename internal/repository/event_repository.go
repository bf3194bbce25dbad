package repository

import (
	"context"

	"quest-read-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository struct {
	Col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{Col: db.Collection("events")}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	res, err := r.Col.InsertOne(ctx, event)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid.Hex()
	}
	return nil
}

func (r *EventRepository) FindBySession(ctx context.Context, sessionID string) ([]models.Event, error) {
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var events []models.Event
	for cur.Next(ctx) {
		var e models.Event
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, cur.Err()
}
