package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trujillo96/novisapp-sub000/assignment"
	"github.com/trujillo96/novisapp-sub000/models"
)

type CaseStore struct {
	coll *mongo.Collection
}

func (s *CaseStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Case, error) {
	var c models.Case
	err := s.coll.FindOne(ctx, bson.M{"_id": id, "deletedAt": nil}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: case %s", assignment.ErrNotFound, id.Hex())
		}
		return nil, err
	}
	return &c, nil
}

func (s *CaseStore) Save(ctx context.Context, c *models.Case) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, opts)
	return err
}

// Find returns non-deleted cases matching filter, newest first. Used by
// the thin case CRUD handlers, not by the engine.
func (s *CaseStore) Find(ctx context.Context, filter bson.M) ([]models.Case, error) {
	if filter == nil {
		filter = bson.M{}
	}
	filter["deletedAt"] = nil

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cases []models.Case
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}
	if cases == nil {
		cases = []models.Case{}
	}
	return cases, nil
}
