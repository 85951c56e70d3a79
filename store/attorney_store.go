package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trujillo96/novisapp-sub000/models"
)

type AttorneyStore struct {
	coll *mongo.Collection
}

func (s *AttorneyStore) FindAllByID(ctx context.Context, ids []primitive.ObjectID) ([]models.Attorney, error) {
	if len(ids) == 0 {
		return []models.Attorney{}, nil
	}

	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}, "deletedAt": nil})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attorneys []models.Attorney
	if err := cursor.All(ctx, &attorneys); err != nil {
		return nil, err
	}
	if attorneys == nil {
		attorneys = []models.Attorney{}
	}
	return attorneys, nil
}

func (s *AttorneyStore) Save(ctx context.Context, a *models.Attorney) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, a, opts)
	return err
}

// FindEligible returns active attorneys holding role LAWYER or
// MANAGING_PARTNER, optionally filtered to one specialty tag.
func (s *AttorneyStore) FindEligible(ctx context.Context, specialty models.Specialty) ([]models.Attorney, error) {
	filter := bson.M{
		"active":    true,
		"deletedAt": nil,
		"role":      bson.M{"$in": []models.AttorneyRole{models.RoleLawyer, models.RoleManagingPartner}},
	}
	if specialty != "" {
		filter["specialties"] = specialty
	}

	opts := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attorneys []models.Attorney
	if err := cursor.All(ctx, &attorneys); err != nil {
		return nil, err
	}
	if attorneys == nil {
		attorneys = []models.Attorney{}
	}
	return attorneys, nil
}
