// models/assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssignmentRole string

const (
	AssignmentRoleLead       AssignmentRole = "LEAD"
	AssignmentRoleAssociate  AssignmentRole = "ASSOCIATE"
	AssignmentRoleConsultant AssignmentRole = "CONSULTANT"
	AssignmentRoleSupporting AssignmentRole = "SUPPORTING"
)

type AssignmentStatus string

const (
	AssignmentStatusActive   AssignmentStatus = "ACTIVE"
	AssignmentStatusInactive AssignmentStatus = "INACTIVE"
)

// Assignment links one attorney to one case. It is never hard-deleted;
// team changes flip Status to INACTIVE and stamp EndDate.
type Assignment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CaseID         primitive.ObjectID `bson:"caseId" json:"caseId"`
	AttorneyID     primitive.ObjectID `bson:"attorneyId" json:"attorneyId"`
	Role           AssignmentRole     `bson:"role" json:"role"`
	Status         AssignmentStatus   `bson:"status" json:"status"`
	AssignedBy     primitive.ObjectID `bson:"assignedBy,omitempty" json:"assignedBy,omitempty"`
	AssignedAt     time.Time          `bson:"assignedAt" json:"assignedAt"`
	StartDate      time.Time          `bson:"startDate" json:"startDate"`
	EndDate        *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Specialty      Specialty          `bson:"specialty" json:"specialty"`
	EstimatedHours int                `bson:"estimatedHours" json:"estimatedHours"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

func (a *Assignment) IsActive() bool {
	return a.Status == AssignmentStatusActive
}

// Deactivate flips the record to INACTIVE and stamps the end timestamp.
func (a *Assignment) Deactivate(at time.Time) {
	a.Status = AssignmentStatusInactive
	a.EndDate = &at
}
