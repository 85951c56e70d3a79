package assignment

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trujillo96/novisapp-sub000/models"
)

// In-memory store fakes backing the engine tests.

type memCases struct {
	items map[primitive.ObjectID]models.Case
}

func newMemCases() *memCases {
	return &memCases{items: make(map[primitive.ObjectID]models.Case)}
}

func (m *memCases) FindByID(_ context.Context, id primitive.ObjectID) (*models.Case, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: case %s", ErrNotFound, id.Hex())
	}
	cp := c
	return &cp, nil
}

func (m *memCases) Save(_ context.Context, c *models.Case) error {
	m.items[c.ID] = *c
	return nil
}

type memAttorneys struct {
	order []primitive.ObjectID
	items map[primitive.ObjectID]models.Attorney
}

func newMemAttorneys() *memAttorneys {
	return &memAttorneys{items: make(map[primitive.ObjectID]models.Attorney)}
}

func (m *memAttorneys) add(a models.Attorney) {
	if _, ok := m.items[a.ID]; !ok {
		m.order = append(m.order, a.ID)
	}
	m.items[a.ID] = a
}

func (m *memAttorneys) FindAllByID(_ context.Context, ids []primitive.ObjectID) ([]models.Attorney, error) {
	out := make([]models.Attorney, 0, len(ids))
	for _, id := range ids {
		if a, ok := m.items[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAttorneys) Save(_ context.Context, a *models.Attorney) error {
	m.add(*a)
	return nil
}

func (m *memAttorneys) FindEligible(_ context.Context, specialty models.Specialty) ([]models.Attorney, error) {
	out := make([]models.Attorney, 0, len(m.items))
	for _, id := range m.order {
		a := m.items[id]
		if !a.Eligible() {
			continue
		}
		if specialty != "" && !a.HasSpecialty(specialty) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type memAssignments struct {
	items []models.Assignment
}

func (m *memAssignments) FindActiveByCase(_ context.Context, caseID primitive.ObjectID) ([]models.Assignment, error) {
	out := make([]models.Assignment, 0)
	for i := range m.items {
		if m.items[i].CaseID == caseID && m.items[i].IsActive() {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *memAssignments) SaveAll(_ context.Context, assignments []models.Assignment) error {
	for _, a := range assignments {
		if a.ID.IsZero() {
			a.ID = primitive.NewObjectID()
		}
		replaced := false
		for i := range m.items {
			if m.items[i].ID == a.ID {
				m.items[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			m.items = append(m.items, a)
		}
	}
	return nil
}

func (m *memAssignments) ExistsActive(_ context.Context, caseID, attorneyID primitive.ObjectID) (bool, error) {
	for i := range m.items {
		if m.items[i].CaseID == caseID && m.items[i].AttorneyID == attorneyID && m.items[i].IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAssignments) CountActiveByAttorney(_ context.Context, attorneyID primitive.ObjectID) (int, error) {
	count := 0
	for i := range m.items {
		if m.items[i].AttorneyID == attorneyID && m.items[i].IsActive() {
			count++
		}
	}
	return count, nil
}

type memTx struct{}

func (memTx) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testEnv struct {
	svc         *Service
	cases       *memCases
	attorneys   *memAttorneys
	assignments *memAssignments
}

func newTestEnv() *testEnv {
	cases := newMemCases()
	attorneys := newMemAttorneys()
	assignments := &memAssignments{}
	return &testEnv{
		svc:         NewService(cases, attorneys, assignments, memTx{}, 10),
		cases:       cases,
		attorneys:   attorneys,
		assignments: assignments,
	}
}

func (e *testEnv) addCase(c models.Case) models.Case {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.Status == "" {
		c.Status = models.CaseStatusOpen
	}
	if c.Priority == "" {
		c.Priority = models.PriorityMedium
	}
	if c.Complexity == "" {
		c.Complexity = models.ComplexityMedium
	}
	if c.CaseNumber == "" {
		c.CaseNumber = "CASE-" + c.ID.Hex()[:6]
	}
	e.cases.items[c.ID] = c
	return c
}

func (e *testEnv) addLawyer(name string, workload int) models.Attorney {
	return e.addAttorney(name, models.RoleLawyer, workload, nil)
}

func (e *testEnv) addAttorney(name string, role models.AttorneyRole, workload int, specialties []models.Specialty) models.Attorney {
	a := models.Attorney{
		ID:              primitive.NewObjectID(),
		FirstName:       name,
		LastName:        "Attorney",
		Email:           name + "@firm.test",
		Role:            role,
		Active:          true,
		Specialties:     specialties,
		CurrentWorkload: workload,
	}
	e.attorneys.add(a)
	return a
}
