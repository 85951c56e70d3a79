package assignment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trujillo96/novisapp-sub000/models"
)

// CaseStore persists cases. FindByID returns ErrNotFound for unknown ids.
type CaseStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Case, error)
	Save(ctx context.Context, c *models.Case) error
}

// AttorneyStore persists attorneys. FindEligible returns active attorneys
// holding role LAWYER or MANAGING_PARTNER, optionally filtered to those
// carrying the given specialty tag.
type AttorneyStore interface {
	FindAllByID(ctx context.Context, ids []primitive.ObjectID) ([]models.Attorney, error)
	Save(ctx context.Context, a *models.Attorney) error
	FindEligible(ctx context.Context, specialty models.Specialty) ([]models.Attorney, error)
}

// AssignmentStore persists assignment records.
type AssignmentStore interface {
	FindActiveByCase(ctx context.Context, caseID primitive.ObjectID) ([]models.Assignment, error)
	SaveAll(ctx context.Context, assignments []models.Assignment) error
	ExistsActive(ctx context.Context, caseID, attorneyID primitive.ObjectID) (bool, error)
	CountActiveByAttorney(ctx context.Context, attorneyID primitive.ObjectID) (int, error)
}

// TxRunner executes fn as one failure-atomic unit of work. Every write the
// engine performs between an assignment-status flip and the workload delta
// it justifies goes through one Run call.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
