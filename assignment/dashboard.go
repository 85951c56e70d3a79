package assignment

import (
	"context"
	"sort"
)

// WorkloadStatus buckets an attorney's utilization for the dashboard.
type WorkloadStatus string

const (
	WorkloadNone       WorkloadStatus = "none"
	WorkloadLow        WorkloadStatus = "low"
	WorkloadNormal     WorkloadStatus = "normal"
	WorkloadHigh       WorkloadStatus = "high"
	WorkloadOverloaded WorkloadStatus = "overloaded"
)

type AttorneyWorkload struct {
	AttorneyID string         `json:"attorneyId"`
	Name       string         `json:"name"`
	Role       string         `json:"role"`
	CaseCount  int            `json:"caseCount"`
	Percentage int            `json:"percentage"`
	Status     WorkloadStatus `json:"status"`
}

type Dashboard struct {
	TotalAttorneys          int                `json:"totalAttorneys"`
	AverageCasesPerAttorney float64            `json:"averageCasesPerAttorney"`
	PerAttorneyWorkload     []AttorneyWorkload `json:"perAttorneyWorkload"`
	TopWorkloadAttorneys    []AttorneyWorkload `json:"topWorkloadAttorneys"`
}

const topWorkloadCount = 5

// BuildWorkloadDashboard aggregates per-attorney utilization across all
// active eligible attorneys. Case counts are derived live from the
// assignment set rather than read from the cached counter, so a
// half-applied concurrent write can never skew the report.
func (s *Service) BuildWorkloadDashboard(ctx context.Context) (*Dashboard, error) {
	attorneys, err := s.attorneys.FindEligible(ctx, "")
	if err != nil {
		return nil, err
	}

	entries := make([]AttorneyWorkload, 0, len(attorneys))
	total := 0
	for i := range attorneys {
		count, err := s.assignments.CountActiveByAttorney(ctx, attorneys[i].ID)
		if err != nil {
			return nil, err
		}
		total += count
		entries = append(entries, AttorneyWorkload{
			AttorneyID: attorneys[i].ID.Hex(),
			Name:       attorneys[i].FullName(),
			Role:       string(attorneys[i].Role),
			CaseCount:  count,
			Percentage: count * 100 / s.maxWorkload,
			Status:     workloadStatus(count * 100 / s.maxWorkload),
		})
	}

	dash := &Dashboard{
		TotalAttorneys:      len(entries),
		PerAttorneyWorkload: entries,
	}
	if len(entries) > 0 {
		dash.AverageCasesPerAttorney = float64(total) / float64(len(entries))
	}

	ranked := make([]AttorneyWorkload, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CaseCount != ranked[j].CaseCount {
			return ranked[i].CaseCount > ranked[j].CaseCount
		}
		return ranked[i].AttorneyID < ranked[j].AttorneyID
	})
	if len(ranked) > topWorkloadCount {
		ranked = ranked[:topWorkloadCount]
	}
	dash.TopWorkloadAttorneys = ranked

	return dash, nil
}

func workloadStatus(percentage int) WorkloadStatus {
	switch {
	case percentage == 0:
		return WorkloadNone
	case percentage < 30:
		return WorkloadLow
	case percentage < 60:
		return WorkloadNormal
	case percentage < 80:
		return WorkloadHigh
	default:
		return WorkloadOverloaded
	}
}
