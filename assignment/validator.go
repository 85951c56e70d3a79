package assignment

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trujillo96/novisapp-sub000/models"
)

// ValidateTeam applies the team-composition rules in order and returns the
// first violation as a *ValidationError, or nil when the proposal is valid.
// Pure function, no persistence access.
func ValidateTeam(c *models.Case, team []models.Attorney, maxWorkload int) error {
	minSize := c.EffectiveMinTeamSize()
	if len(team) < minSize {
		return newValidationError(ReasonMinLawyers,
			"a case team requires at least %d attorneys, got %d", minSize, len(team))
	}

	if c.MaxTeamSize > 0 && len(team) > c.MaxTeamSize {
		return newValidationError(ReasonMaxLawyersExceeded,
			"case %s allows at most %d attorneys, got %d", c.CaseNumber, c.MaxTeamSize, len(team))
	}

	for i := range team {
		if !team[i].Eligible() {
			return newValidationError(ReasonInvalidLawyer,
				"%s is not an active lawyer or managing partner", team[i].FullName())
		}
	}

	for i := range team {
		if team[i].CurrentWorkload >= maxWorkload {
			return newValidationError(ReasonWorkloadExceeded,
				"%s already carries %d active cases (limit %d)",
				team[i].FullName(), team[i].CurrentWorkload, maxWorkload)
		}
	}

	seen := make(map[primitive.ObjectID]bool, len(team))
	for i := range team {
		if seen[team[i].ID] {
			return newValidationError(ReasonDuplicateLawyers,
				"%s appears more than once in the proposed team", team[i].FullName())
		}
		seen[team[i].ID] = true
	}

	// GENERAL carries no expertise requirement: it is also the degradation
	// target for unrecognized case specialties.
	required := models.NormalizeSpecialty(c.Specialty)
	if c.Specialty != "" && required != models.SpecialtyGeneral {
		covered := false
		for i := range team {
			if team[i].HasSpecialty(required) {
				covered = true
				break
			}
		}
		if !covered {
			return newValidationError(ReasonMissingSpecialization,
				"no proposed team member practices %s", required)
		}
	}

	return nil
}

// ValidatePrimary checks that candidate may become the case's primary
// attorney. isMember states whether the candidate currently holds an
// active assignment on the case.
func ValidatePrimary(c *models.Case, candidate *models.Attorney, isMember bool) error {
	if !candidate.Eligible() {
		return newValidationError(ReasonInvalidLawyer,
			"%s is not an active lawyer or managing partner", candidate.FullName())
	}

	if !isMember {
		return newValidationError(ReasonNotAssigned,
			"%s is not assigned to case %s", candidate.FullName(), c.CaseNumber)
	}

	if c.IsHighValue() && candidate.Role != models.RoleManagingPartner {
		return newValidationError(ReasonInsufficientAuthority,
			"case %s is high value; the primary attorney must be a managing partner", c.CaseNumber)
	}

	return nil
}

// ValidateRemoval checks that attorneyID can be taken off the case without
// breaking the minimum team size or leaving the case without a primary.
// active is the case's current active assignment set; attorneys maps the
// ids appearing in it to their records.
func ValidateRemoval(c *models.Case, attorneyID primitive.ObjectID, active []models.Assignment, attorneys map[primitive.ObjectID]models.Attorney) error {
	assigned := false
	members := make(map[primitive.ObjectID]bool, len(active))
	for i := range active {
		members[active[i].AttorneyID] = true
		if active[i].AttorneyID == attorneyID {
			assigned = true
		}
	}
	if !assigned {
		return newValidationError(ReasonNotAssigned,
			"attorney %s holds no active assignment on case %s", attorneyID.Hex(), c.CaseNumber)
	}

	if len(members)-1 < 2 {
		return newValidationError(ReasonMinLawyersRequired,
			"removing this attorney would leave case %s below the 2-attorney minimum", c.CaseNumber)
	}

	if c.PrimaryAttorneyID != nil && *c.PrimaryAttorneyID == attorneyID {
		hasAlternative := false
		for id := range members {
			if id == attorneyID {
				continue
			}
			if a, ok := attorneys[id]; ok && a.Eligible() {
				hasAlternative = true
				break
			}
		}
		if !hasAlternative {
			return newValidationError(ReasonNoAlternativePrimary,
				"no remaining team member on case %s can take over as primary", c.CaseNumber)
		}
	}

	return nil
}
