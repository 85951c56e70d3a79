// Package assignment implements the case-attorney assignment engine: team
// validation, team commit/replace, removals, primary reassignment,
// workload-aware team selection and the workload dashboard. All mutations
// keep the case's active assignment set and the attorneys' workload
// counters consistent inside one unit of work.
package assignment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trujillo96/novisapp-sub000/models"
)

// Base estimated hours per complexity tier, split across the team.
var complexityBaseHours = map[models.CaseComplexity]int{
	models.ComplexitySimple:      20,
	models.ComplexityMedium:      40,
	models.ComplexityComplex:     80,
	models.ComplexityVeryComplex: 120,
}

const minEstimatedHours = 10

func estimateHours(complexity models.CaseComplexity, teamSize int) int {
	base, ok := complexityBaseHours[complexity]
	if !ok {
		base = complexityBaseHours[models.ComplexityMedium]
	}
	hours := base / teamSize
	if hours < minEstimatedHours {
		hours = minEstimatedHours
	}
	return hours
}

// Service orchestrates validation, persistence and workload-ledger updates
// for every team mutation path.
type Service struct {
	cases       CaseStore
	attorneys   AttorneyStore
	assignments AssignmentStore
	tx          TxRunner
	maxWorkload int
}

func NewService(cases CaseStore, attorneys AttorneyStore, assignments AssignmentStore, tx TxRunner, maxWorkload int) *Service {
	return &Service{
		cases:       cases,
		attorneys:   attorneys,
		assignments: assignments,
		tx:          tx,
		maxWorkload: maxWorkload,
	}
}

// AssignTeam commits attorneyIDs as the case's full team, replacing any
// current one. The first attorney becomes LEAD and primary. Resubmitting
// the same list is an idempotent replace, so callers may safely retry.
func (s *Service) AssignTeam(ctx context.Context, caseID primitive.ObjectID, attorneyIDs []primitive.ObjectID, assignedBy primitive.ObjectID) (*models.Case, []models.Assignment, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, nil, err
	}
	if !c.AcceptsAssignment() {
		return nil, nil, fmt.Errorf("%w: case %s is %s", ErrInvalidState, c.CaseNumber, c.Status)
	}

	team, err := s.resolveTeam(ctx, attorneyIDs)
	if err != nil {
		return nil, nil, err
	}

	if err := ValidateTeam(c, team, s.maxWorkload); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	var created []models.Assignment

	err = s.tx.Run(ctx, func(ctx context.Context) error {
		active, err := s.assignments.FindActiveByCase(ctx, caseID)
		if err != nil {
			return err
		}

		// Workload delta per attorney: -1 per deactivation, +1 per
		// activation. An attorney kept across the replace nets zero.
		delta := make(map[primitive.ObjectID]int)
		changed := make([]models.Assignment, 0, len(active)+len(team))

		for i := range active {
			active[i].Deactivate(now)
			delta[active[i].AttorneyID]--
			changed = append(changed, active[i])
		}

		hours := estimateHours(c.Complexity, len(team))
		specialty := models.NormalizeSpecialty(c.Specialty)
		created = make([]models.Assignment, 0, len(team))
		for i := range team {
			role := models.AssignmentRoleAssociate
			if i == 0 {
				role = models.AssignmentRoleLead
			}
			created = append(created, models.Assignment{
				ID:             primitive.NewObjectID(),
				CaseID:         caseID,
				AttorneyID:     team[i].ID,
				Role:           role,
				Status:         models.AssignmentStatusActive,
				AssignedBy:     assignedBy,
				AssignedAt:     now,
				StartDate:      now,
				Specialty:      specialty,
				EstimatedHours: hours,
			})
			delta[team[i].ID]++
		}
		changed = append(changed, created...)

		if err := s.applyWorkloadDeltas(ctx, team, delta, now); err != nil {
			return err
		}

		c.PrimaryAttorneyID = &team[0].ID
		c.TeamCommitted = true
		if c.Status == models.CaseStatusOpen {
			c.Status = models.CaseStatusInProgress
		}
		c.UpdatedAt = now

		if err := s.assignments.SaveAll(ctx, changed); err != nil {
			return err
		}
		return s.cases.Save(ctx, c)
	})
	if err != nil {
		return nil, nil, err
	}

	return c, created, nil
}

// RemoveAttorney deactivates the attorney's active assignment on the case
// and, when the removed attorney was primary, promotes a remaining member
// (managing partners first) to LEAD and primary.
func (s *Service) RemoveAttorney(ctx context.Context, caseID, attorneyID primitive.ObjectID) (*models.Case, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.AcceptsAssignment() {
		return nil, fmt.Errorf("%w: case %s is %s", ErrInvalidState, c.CaseNumber, c.Status)
	}

	active, err := s.assignments.FindActiveByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]primitive.ObjectID, 0, len(active))
	for i := range active {
		memberIDs = append(memberIDs, active[i].AttorneyID)
	}
	members, err := s.attorneys.FindAllByID(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Attorney, len(members))
	for i := range members {
		byID[members[i].ID] = members[i]
	}

	if err := ValidateRemoval(c, attorneyID, active, byID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.tx.Run(ctx, func(ctx context.Context) error {
		changed := make([]models.Assignment, 0, 2)
		removedCount := 0
		for i := range active {
			if active[i].AttorneyID == attorneyID {
				active[i].Deactivate(now)
				changed = append(changed, active[i])
				removedCount++
			}
		}

		wasPrimary := c.PrimaryAttorneyID != nil && *c.PrimaryAttorneyID == attorneyID
		if wasPrimary {
			promoted := pickPromotee(active, byID, attorneyID)
			if promoted != nil {
				promoted.Role = models.AssignmentRoleLead
				changed = append(changed, *promoted)
				id := promoted.AttorneyID
				c.PrimaryAttorneyID = &id
			}
		}

		removed, ok := byID[attorneyID]
		if ok {
			removed.CurrentWorkload -= removedCount
			if removed.CurrentWorkload < 0 {
				removed.CurrentWorkload = 0
			}
			removed.UpdatedAt = now
			if err := s.attorneys.Save(ctx, &removed); err != nil {
				return err
			}
		}

		c.UpdatedAt = now
		if err := s.assignments.SaveAll(ctx, changed); err != nil {
			return err
		}
		return s.cases.Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// pickPromotee chooses the replacement primary among the remaining active
// members: managing partners first, then lawyers, in assignment order.
func pickPromotee(active []models.Assignment, byID map[primitive.ObjectID]models.Attorney, removed primitive.ObjectID) *models.Assignment {
	var fallback *models.Assignment
	for i := range active {
		if active[i].AttorneyID == removed || !active[i].IsActive() {
			continue
		}
		a, ok := byID[active[i].AttorneyID]
		if !ok || !a.Eligible() {
			continue
		}
		if a.Role == models.RoleManagingPartner {
			return &active[i]
		}
		if fallback == nil {
			fallback = &active[i]
		}
	}
	return fallback
}

// ReassignPrimary makes newPrimaryID the case's primary attorney. The LEAD
// role flag owns that fact: the old lead's assignment is demoted to
// ASSOCIATE, the new primary's promoted to LEAD, and the case reference is
// recomputed as a projection of the role change.
func (s *Service) ReassignPrimary(ctx context.Context, caseID, newPrimaryID primitive.ObjectID) (*models.Case, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.AcceptsAssignment() {
		return nil, fmt.Errorf("%w: case %s is %s", ErrInvalidState, c.CaseNumber, c.Status)
	}

	candidates, err := s.attorneys.FindAllByID(ctx, []primitive.ObjectID{newPrimaryID})
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: attorney %s", ErrNotFound, newPrimaryID.Hex())
	}
	candidate := candidates[0]

	active, err := s.assignments.FindActiveByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	isMember := false
	for i := range active {
		if active[i].AttorneyID == newPrimaryID {
			isMember = true
			break
		}
	}

	if err := ValidatePrimary(c, &candidate, isMember); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.tx.Run(ctx, func(ctx context.Context) error {
		changed := make([]models.Assignment, 0, 2)
		for i := range active {
			switch {
			case active[i].AttorneyID == newPrimaryID && active[i].Role != models.AssignmentRoleLead:
				active[i].Role = models.AssignmentRoleLead
				changed = append(changed, active[i])
			case active[i].AttorneyID != newPrimaryID && active[i].Role == models.AssignmentRoleLead:
				active[i].Role = models.AssignmentRoleAssociate
				changed = append(changed, active[i])
			}
		}

		c.PrimaryAttorneyID = &newPrimaryID
		c.UpdatedAt = now

		if len(changed) > 0 {
			if err := s.assignments.SaveAll(ctx, changed); err != nil {
				return err
			}
		}
		return s.cases.Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SelectTeam proposes a team for the case without a human-specified list:
// the least-loaded eligible attorneys, three of them when the case is high
// priority. The result feeds straight into AssignTeam.
func (s *Service) SelectTeam(ctx context.Context, caseID primitive.ObjectID, specialization string) ([]primitive.ObjectID, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	filter := models.Specialty("")
	if specialization != "" {
		filter = models.NormalizeSpecialty(specialization)
	}

	candidates, err := s.attorneys.FindEligible(ctx, filter)
	if err != nil {
		return nil, err
	}

	ranked := rankCandidates(c, candidates, s.maxWorkload)
	if ranked == nil {
		return nil, ErrInsufficientCandidates
	}

	ids := make([]primitive.ObjectID, len(ranked))
	for i := range ranked {
		ids[i] = ranked[i].ID
	}
	return ids, nil
}

// GetActiveAssignments returns the case's active assignment set.
func (s *Service) GetActiveAssignments(ctx context.Context, caseID primitive.ObjectID) ([]models.Assignment, error) {
	if _, err := s.cases.FindByID(ctx, caseID); err != nil {
		return nil, err
	}
	return s.assignments.FindActiveByCase(ctx, caseID)
}

// resolveTeam maps the requested ids, in caller order, onto attorney
// records. Any id that does not resolve fails the whole call.
func (s *Service) resolveTeam(ctx context.Context, attorneyIDs []primitive.ObjectID) ([]models.Attorney, error) {
	unique := make([]primitive.ObjectID, 0, len(attorneyIDs))
	seen := make(map[primitive.ObjectID]bool, len(attorneyIDs))
	for _, id := range attorneyIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	resolved, err := s.attorneys.FindAllByID(ctx, unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Attorney, len(resolved))
	for i := range resolved {
		byID[resolved[i].ID] = resolved[i]
	}

	team := make([]models.Attorney, 0, len(attorneyIDs))
	for _, id := range attorneyIDs {
		a, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown attorney id %s", ErrInvalidArgument, id.Hex())
		}
		team = append(team, a)
	}
	return team, nil
}

// applyWorkloadDeltas loads every attorney touched by delta (reusing the
// already-resolved team records) and persists the adjusted counters.
func (s *Service) applyWorkloadDeltas(ctx context.Context, team []models.Attorney, delta map[primitive.ObjectID]int, now time.Time) error {
	records := make(map[primitive.ObjectID]models.Attorney, len(delta))
	for i := range team {
		records[team[i].ID] = team[i]
	}

	missing := make([]primitive.ObjectID, 0)
	for id := range delta {
		if _, ok := records[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		loaded, err := s.attorneys.FindAllByID(ctx, missing)
		if err != nil {
			return err
		}
		for i := range loaded {
			records[loaded[i].ID] = loaded[i]
		}
	}

	for id, d := range delta {
		if d == 0 {
			continue
		}
		a, ok := records[id]
		if !ok {
			// Attorney vanished between the flip and the ledger update;
			// the counter is reconciled from the assignment set on read.
			continue
		}
		a.CurrentWorkload += d
		if a.CurrentWorkload < 0 {
			a.CurrentWorkload = 0
		}
		a.UpdatedAt = now
		if err := s.attorneys.Save(ctx, &a); err != nil {
			return err
		}
	}
	return nil
}
