// models/case.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "OPEN"
	CaseStatusInProgress CaseStatus = "IN_PROGRESS"
	CaseStatusCompleted  CaseStatus = "COMPLETED"
	CaseStatusClosed     CaseStatus = "CLOSED"
	CaseStatusCancelled  CaseStatus = "CANCELLED"
)

type CasePriority string

const (
	PriorityLow    CasePriority = "LOW"
	PriorityMedium CasePriority = "MEDIUM"
	PriorityHigh   CasePriority = "HIGH"
	PriorityUrgent CasePriority = "URGENT"
)

type CaseComplexity string

const (
	ComplexitySimple      CaseComplexity = "SIMPLE"
	ComplexityMedium      CaseComplexity = "MEDIUM"
	ComplexityComplex     CaseComplexity = "COMPLEX"
	ComplexityVeryComplex CaseComplexity = "VERY_COMPLEX"
)

// HighValueThreshold is the estimated case value above which only a
// managing partner may act as primary attorney.
const HighValueThreshold = 100000.0

type Case struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CaseNumber        string              `bson:"caseNumber" json:"caseNumber"`
	Title             string              `bson:"title" json:"title"`
	Description       string              `bson:"description,omitempty" json:"description,omitempty"`
	Status            CaseStatus          `bson:"status" json:"status"`
	Specialty         string              `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Priority          CasePriority        `bson:"priority" json:"priority"`
	Complexity        CaseComplexity      `bson:"complexity" json:"complexity"`
	EstimatedValue    float64             `bson:"estimatedValue,omitempty" json:"estimatedValue,omitempty"`
	MinTeamSize       int                 `bson:"minTeamSize,omitempty" json:"minTeamSize,omitempty"`
	MaxTeamSize       int                 `bson:"maxTeamSize,omitempty" json:"maxTeamSize,omitempty"`
	PrimaryAttorneyID *primitive.ObjectID `bson:"primaryAttorneyId,omitempty" json:"primaryAttorneyId,omitempty"`
	TeamCommitted     bool                `bson:"teamCommitted" json:"teamCommitted"`
	ClientName        string              `bson:"clientName,omitempty" json:"clientName,omitempty"`
	CreatedBy         primitive.ObjectID  `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	DeletedAt         *time.Time          `bson:"deletedAt,omitempty" json:"-"`
}

// AcceptsAssignment reports whether the case status allows team mutations.
// The status machine itself is owned by case intake, not by the engine.
func (c *Case) AcceptsAssignment() bool {
	return c.Status == CaseStatusOpen || c.Status == CaseStatusInProgress
}

// IsHighValue reports whether primary-attorney duty requires a managing
// partner: estimated value above the threshold, or high/urgent priority.
func (c *Case) IsHighValue() bool {
	if c.EstimatedValue > HighValueThreshold {
		return true
	}
	return c.Priority == PriorityHigh || c.Priority == PriorityUrgent
}

// EffectiveMinTeamSize is the firm-wide floor of 2 raised by any larger
// per-case minimum.
func (c *Case) EffectiveMinTeamSize() int {
	if c.MinTeamSize > 2 {
		return c.MinTeamSize
	}
	return 2
}
