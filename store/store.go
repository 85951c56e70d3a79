// Package store provides the MongoDB-backed implementations of the
// assignment engine's store contracts.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Stores bundles the per-collection stores sharing one client.
type Stores struct {
	Cases       *CaseStore
	Attorneys   *AttorneyStore
	Assignments *AssignmentStore
	Tx          *TxRunner
}

func New(client *mongo.Client, dbName string) *Stores {
	db := client.Database(dbName)
	return &Stores{
		Cases:       &CaseStore{coll: db.Collection("cases")},
		Attorneys:   &AttorneyStore{coll: db.Collection("users")},
		Assignments: &AssignmentStore{coll: db.Collection("assignments")},
		Tx:          &TxRunner{client: client},
	}
}

// TxRunner wraps fn in a MongoDB multi-document transaction so the
// deactivate/activate/ledger writes land or fail as one unit.
type TxRunner struct {
	client *mongo.Client
}

func (t *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
