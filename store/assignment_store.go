package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trujillo96/novisapp-sub000/models"
)

type AssignmentStore struct {
	coll *mongo.Collection
}

func (s *AssignmentStore) FindActiveByCase(ctx context.Context, caseID primitive.ObjectID) ([]models.Assignment, error) {
	filter := bson.M{"caseId": caseID, "status": models.AssignmentStatusActive}
	opts := options.Find().SetSort(bson.D{{Key: "assignedAt", Value: 1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []models.Assignment{}
	}
	return assignments, nil
}

func (s *AssignmentStore) SaveAll(ctx context.Context, assignments []models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(assignments))
	for i := range assignments {
		if assignments[i].ID.IsZero() {
			assignments[i].ID = primitive.NewObjectID()
		}
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": assignments[i].ID}).
			SetReplacement(assignments[i]).
			SetUpsert(true))
	}

	_, err := s.coll.BulkWrite(ctx, writes)
	return err
}

func (s *AssignmentStore) ExistsActive(ctx context.Context, caseID, attorneyID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"caseId":     caseID,
		"attorneyId": attorneyID,
		"status":     models.AssignmentStatusActive,
	}
	count, err := s.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *AssignmentStore) CountActiveByAttorney(ctx context.Context, attorneyID primitive.ObjectID) (int, error) {
	filter := bson.M{"attorneyId": attorneyID, "status": models.AssignmentStatusActive}
	count, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
