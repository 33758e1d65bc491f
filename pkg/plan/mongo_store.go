package plan

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoStore persists plans in a MongoDB collection, one document per plan,
// keyed by the plan ID. Field names follow the Plan bson tags so the store
// interoperates with documents written by earlier versions of the
// marketplace.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a store backed by the given collection.
// Panics if coll is nil to fail fast during initialization.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	if coll == nil {
		panic("plan: mongo collection is required")
	}
	return &MongoStore{coll: coll}
}

// EnsureIndexes creates the userId index used by ListByUser. Safe to call on
// every startup; index creation is idempotent.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create userId index: %w", err)
	}
	return nil
}

func (s *MongoStore) Insert(ctx context.Context, p *Plan) error {
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert plan %s: %w", p.ID, err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, p *Plan) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("update plan %s: %w", p.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (s *MongoStore) ListByUser(ctx context.Context, userID string) ([]Plan, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("list plans for user %s: %w", userID, err)
	}

	var plans []Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("decode plans for user %s: %w", userID, err)
	}
	return plans, nil
}
