package assignment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trujillo96/novisapp-sub000/models"
)

func lawyer(name string, workload int) models.Attorney {
	return models.Attorney{
		ID:              primitive.NewObjectID(),
		FirstName:       name,
		LastName:        "Attorney",
		Role:            models.RoleLawyer,
		Active:          true,
		CurrentWorkload: workload,
	}
}

func requireReason(t *testing.T, err error, code ReasonCode) {
	t.Helper()
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	require.Equal(t, code, ve.Code)
	require.NotEmpty(t, ve.Detail)
}

func TestValidateTeam(t *testing.T) {
	c := &models.Case{CaseNumber: "CASE-1", Status: models.CaseStatusOpen}

	t.Run("accepts a valid two-lawyer team", func(t *testing.T) {
		err := ValidateTeam(c, []models.Attorney{lawyer("ana", 3), lawyer("ben", 0)}, 10)
		require.NoError(t, err)
	})

	t.Run("rejects empty team", func(t *testing.T) {
		requireReason(t, ValidateTeam(c, nil, 10), ReasonMinLawyers)
	})

	t.Run("rejects single-member team", func(t *testing.T) {
		requireReason(t, ValidateTeam(c, []models.Attorney{lawyer("ana", 0)}, 10), ReasonMinLawyers)
	})

	t.Run("honors per-case minimum above the floor", func(t *testing.T) {
		big := &models.Case{CaseNumber: "CASE-2", MinTeamSize: 3}
		requireReason(t, ValidateTeam(big, []models.Attorney{lawyer("ana", 0), lawyer("ben", 0)}, 10), ReasonMinLawyers)
	})

	t.Run("honors per-case maximum", func(t *testing.T) {
		capped := &models.Case{CaseNumber: "CASE-3", MaxTeamSize: 2}
		team := []models.Attorney{lawyer("ana", 0), lawyer("ben", 0), lawyer("cem", 0)}
		requireReason(t, ValidateTeam(capped, team, 10), ReasonMaxLawyersExceeded)
	})

	t.Run("rejects inactive member", func(t *testing.T) {
		inactive := lawyer("ana", 0)
		inactive.Active = false
		requireReason(t, ValidateTeam(c, []models.Attorney{inactive, lawyer("ben", 0)}, 10), ReasonInvalidLawyer)
	})

	t.Run("rejects paralegal member", func(t *testing.T) {
		para := lawyer("ana", 0)
		para.Role = models.RoleParalegal
		requireReason(t, ValidateTeam(c, []models.Attorney{para, lawyer("ben", 0)}, 10), ReasonInvalidLawyer)
	})

	t.Run("rejects member at the workload cap", func(t *testing.T) {
		loaded := lawyer("ana", 10)
		err := ValidateTeam(c, []models.Attorney{loaded, lawyer("ben", 0)}, 10)
		requireReason(t, err, ReasonWorkloadExceeded)
		ve, _ := AsValidationError(err)
		require.Contains(t, ve.Detail, "ana")
		require.Contains(t, ve.Detail, "10")
	})

	t.Run("rejects duplicate attorneys", func(t *testing.T) {
		a := lawyer("ana", 0)
		requireReason(t, ValidateTeam(c, []models.Attorney{a, a}, 10), ReasonDuplicateLawyers)
	})

	t.Run("requires declared specialty coverage", func(t *testing.T) {
		tax := &models.Case{CaseNumber: "CASE-4", Specialty: "TAX"}
		requireReason(t, ValidateTeam(tax, []models.Attorney{lawyer("ana", 0), lawyer("ben", 0)}, 10), ReasonMissingSpecialization)

		expert := lawyer("ana", 0)
		expert.Specialties = []models.Specialty{models.SpecialtyTax}
		require.NoError(t, ValidateTeam(tax, []models.Attorney{expert, lawyer("ben", 0)}, 10))
	})

	t.Run("unrecognized specialty degrades to no requirement", func(t *testing.T) {
		odd := &models.Case{CaseNumber: "CASE-5", Specialty: "space law"}
		require.NoError(t, ValidateTeam(odd, []models.Attorney{lawyer("ana", 0), lawyer("ben", 0)}, 10))
	})

	t.Run("rule order: size before eligibility", func(t *testing.T) {
		inactive := lawyer("ana", 0)
		inactive.Active = false
		requireReason(t, ValidateTeam(c, []models.Attorney{inactive}, 10), ReasonMinLawyers)
	})
}

func TestValidatePrimary(t *testing.T) {
	t.Run("accepts eligible member on a normal case", func(t *testing.T) {
		c := &models.Case{CaseNumber: "CASE-1", Priority: models.PriorityMedium}
		a := lawyer("ana", 0)
		require.NoError(t, ValidatePrimary(c, &a, true))
	})

	t.Run("rejects non-member", func(t *testing.T) {
		c := &models.Case{CaseNumber: "CASE-1", Priority: models.PriorityMedium}
		a := lawyer("ana", 0)
		requireReason(t, ValidatePrimary(c, &a, false), ReasonNotAssigned)
	})

	t.Run("rejects ineligible candidate", func(t *testing.T) {
		c := &models.Case{CaseNumber: "CASE-1"}
		a := lawyer("ana", 0)
		a.Active = false
		requireReason(t, ValidatePrimary(c, &a, true), ReasonInvalidLawyer)
	})

	t.Run("high-value case requires a managing partner", func(t *testing.T) {
		urgent := &models.Case{CaseNumber: "CASE-2", Priority: models.PriorityUrgent}
		a := lawyer("ana", 0)
		requireReason(t, ValidatePrimary(urgent, &a, true), ReasonInsufficientAuthority)

		valuable := &models.Case{CaseNumber: "CASE-3", Priority: models.PriorityLow, EstimatedValue: 250000}
		requireReason(t, ValidatePrimary(valuable, &a, true), ReasonInsufficientAuthority)

		partner := lawyer("pam", 0)
		partner.Role = models.RoleManagingPartner
		require.NoError(t, ValidatePrimary(urgent, &partner, true))
	})
}

func TestValidateRemoval(t *testing.T) {
	caseID := primitive.NewObjectID()
	a := lawyer("ana", 1)
	b := lawyer("ben", 1)
	d := lawyer("dan", 1)

	activeFor := func(ids ...primitive.ObjectID) []models.Assignment {
		out := make([]models.Assignment, 0, len(ids))
		for i, id := range ids {
			role := models.AssignmentRoleAssociate
			if i == 0 {
				role = models.AssignmentRoleLead
			}
			out = append(out, models.Assignment{
				ID:         primitive.NewObjectID(),
				CaseID:     caseID,
				AttorneyID: id,
				Role:       role,
				Status:     models.AssignmentStatusActive,
			})
		}
		return out
	}

	byID := map[primitive.ObjectID]models.Attorney{a.ID: a, b.ID: b, d.ID: d}

	t.Run("rejects attorney without an active assignment", func(t *testing.T) {
		c := &models.Case{ID: caseID, CaseNumber: "CASE-1"}
		requireReason(t, ValidateRemoval(c, d.ID, activeFor(a.ID, b.ID), byID), ReasonNotAssigned)
	})

	t.Run("rejects removal that breaks the minimum team", func(t *testing.T) {
		c := &models.Case{ID: caseID, CaseNumber: "CASE-1"}
		requireReason(t, ValidateRemoval(c, b.ID, activeFor(a.ID, b.ID), byID), ReasonMinLawyersRequired)
	})

	t.Run("allows removing one of three members", func(t *testing.T) {
		c := &models.Case{ID: caseID, CaseNumber: "CASE-1"}
		require.NoError(t, ValidateRemoval(c, d.ID, activeFor(a.ID, b.ID, d.ID), byID))
	})

	t.Run("rejects removing primary with no eligible alternative", func(t *testing.T) {
		inactiveB := b
		inactiveB.Active = false
		inactiveD := d
		inactiveD.Active = false
		weak := map[primitive.ObjectID]models.Attorney{a.ID: a, b.ID: inactiveB, d.ID: inactiveD}
		c := &models.Case{ID: caseID, CaseNumber: "CASE-1", PrimaryAttorneyID: &a.ID}
		requireReason(t, ValidateRemoval(c, a.ID, activeFor(a.ID, b.ID, d.ID), weak), ReasonNoAlternativePrimary)
	})

	t.Run("allows removing primary with an alternative", func(t *testing.T) {
		c := &models.Case{ID: caseID, CaseNumber: "CASE-1", PrimaryAttorneyID: &a.ID}
		require.NoError(t, ValidateRemoval(c, a.ID, activeFor(a.ID, b.ID, d.ID), byID))
	})
}
