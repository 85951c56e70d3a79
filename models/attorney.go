// models/attorney.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttorneyRole string

const (
	RoleLawyer          AttorneyRole = "LAWYER"
	RoleManagingPartner AttorneyRole = "MANAGING_PARTNER"
	RoleParalegal       AttorneyRole = "PARALEGAL"
	RoleAdmin           AttorneyRole = "ADMIN"
)

// Attorney is a role-tagged platform user. Only active lawyers and
// managing partners can hold active case assignments.
type Attorney struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName" json:"lastName"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash    string             `bson:"passwordHash" json:"-"`
	Role            AttorneyRole       `bson:"role" json:"role"`
	Active          bool               `bson:"active" json:"active"`
	Specialties     []Specialty        `bson:"specialties,omitempty" json:"specialties,omitempty"`
	CurrentWorkload int                `bson:"currentWorkload" json:"currentWorkload"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	DeletedAt       *time.Time         `bson:"deletedAt,omitempty" json:"-"`
}

func (a *Attorney) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Eligible reports whether the attorney may hold an active assignment.
func (a *Attorney) Eligible() bool {
	if !a.Active || a.DeletedAt != nil {
		return false
	}
	return a.Role == RoleLawyer || a.Role == RoleManagingPartner
}

// HasSpecialty reports set membership in the attorney's practice areas.
func (a *Attorney) HasSpecialty(tag Specialty) bool {
	for _, s := range a.Specialties {
		if s == tag {
			return true
		}
	}
	return false
}
