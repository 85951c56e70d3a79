package assignment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trujillo96/novisapp-sub000/models"
)

func TestWorkloadStatusBuckets(t *testing.T) {
	require.Equal(t, WorkloadNone, workloadStatus(0))
	require.Equal(t, WorkloadLow, workloadStatus(10))
	require.Equal(t, WorkloadLow, workloadStatus(29))
	require.Equal(t, WorkloadNormal, workloadStatus(30))
	require.Equal(t, WorkloadNormal, workloadStatus(59))
	require.Equal(t, WorkloadHigh, workloadStatus(60))
	require.Equal(t, WorkloadHigh, workloadStatus(79))
	require.Equal(t, WorkloadOverloaded, workloadStatus(80))
	require.Equal(t, WorkloadOverloaded, workloadStatus(100))
}

func TestBuildWorkloadDashboard(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	counts := []int{0, 2, 5, 8, 9, 1}
	attorneys := make([]models.Attorney, 0, len(counts))
	for i, n := range counts {
		a := env.addLawyer(string(rune('a'+i))+"name", n)
		attorneys = append(attorneys, a)
		for j := 0; j < n; j++ {
			env.assignments.items = append(env.assignments.items, models.Assignment{
				ID:         primitive.NewObjectID(),
				CaseID:     primitive.NewObjectID(),
				AttorneyID: a.ID,
				Role:       models.AssignmentRoleAssociate,
				Status:     models.AssignmentStatusActive,
			})
		}
	}

	// entries derive from the assignment set, so a stale cached counter
	// must not leak into the report
	stale := env.attorneys.items[attorneys[0].ID]
	stale.CurrentWorkload = 7
	env.attorneys.add(stale)

	dash, err := env.svc.BuildWorkloadDashboard(ctx)
	require.NoError(t, err)

	require.Equal(t, 6, dash.TotalAttorneys)
	require.Len(t, dash.PerAttorneyWorkload, 6)
	require.InDelta(t, 25.0/6.0, dash.AverageCasesPerAttorney, 1e-9)

	byName := make(map[string]AttorneyWorkload, len(dash.PerAttorneyWorkload))
	for _, e := range dash.PerAttorneyWorkload {
		byName[e.Name] = e
	}

	first := byName[attorneys[0].FullName()]
	require.Equal(t, 0, first.CaseCount, "derived count wins over the stale counter")
	require.Equal(t, WorkloadNone, first.Status)

	second := byName[attorneys[1].FullName()]
	require.Equal(t, 2, second.CaseCount)
	require.Equal(t, 20, second.Percentage)
	require.Equal(t, WorkloadLow, second.Status)

	third := byName[attorneys[2].FullName()]
	require.Equal(t, WorkloadNormal, third.Status)

	fourth := byName[attorneys[3].FullName()]
	require.Equal(t, 80, fourth.Percentage)
	require.Equal(t, WorkloadOverloaded, fourth.Status)

	// top list is the first five after a descending sort
	require.Len(t, dash.TopWorkloadAttorneys, 5)
	require.Equal(t, 9, dash.TopWorkloadAttorneys[0].CaseCount)
	require.Equal(t, 8, dash.TopWorkloadAttorneys[1].CaseCount)
	require.Equal(t, 5, dash.TopWorkloadAttorneys[2].CaseCount)
	require.Equal(t, 2, dash.TopWorkloadAttorneys[3].CaseCount)
	require.Equal(t, 1, dash.TopWorkloadAttorneys[4].CaseCount)
}

func TestBuildWorkloadDashboardEmpty(t *testing.T) {
	env := newTestEnv()

	dash, err := env.svc.BuildWorkloadDashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, dash.TotalAttorneys)
	require.Zero(t, dash.AverageCasesPerAttorney)
	require.Empty(t, dash.PerAttorneyWorkload)
	require.Empty(t, dash.TopWorkloadAttorneys)
}
