// handlers/collections.go
package handlers

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trujillo96/novisapp-sub000/assignment"
	"github.com/trujillo96/novisapp-sub000/config"
	"github.com/trujillo96/novisapp-sub000/database"
	"github.com/trujillo96/novisapp-sub000/models"
	"github.com/trujillo96/novisapp-sub000/store"
)

var (
	userCollection     *mongo.Collection
	auditLogCollection *mongo.Collection

	stores      *store.Stores
	teamService *assignment.Service
)

func InitCollections() {
	db := database.Client.Database(config.DatabaseName)
	userCollection = db.Collection("users")
	auditLogCollection = db.Collection("audit_logs")

	stores = store.New(database.Client, config.DatabaseName)
	teamService = assignment.NewService(stores.Cases, stores.Attorneys, stores.Assignments, stores.Tx, config.MaxActiveCases)
}

// writeAudit records a mutation in the audit trail. Failures are logged,
// never surfaced to the caller.
func writeAudit(ctx context.Context, actorID primitive.ObjectID, actorName, action, entityType string, entityID primitive.ObjectID, details bson.M) {
	audit := models.AuditLog{
		ID:         primitive.NewObjectID(),
		UserID:     actorID,
		UserName:   actorName,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := auditLogCollection.InsertOne(ctx, audit); err != nil {
		log.Printf("Failed to create audit log: %v", err)
	}
}
