package assignment

import (
	"sort"

	"github.com/trujillo96/novisapp-sub000/models"
)

// rankCandidates orders eligible attorneys by ascending workload (ties by
// id) and picks the two least loaded, plus a third when the case is
// high priority and one exists. Attorneys already at the workload cap are
// never proposed, so the returned list always survives team validation on
// the workload rule.
func rankCandidates(c *models.Case, candidates []models.Attorney, maxWorkload int) []models.Attorney {
	ranked := make([]models.Attorney, 0, len(candidates))
	for i := range candidates {
		if !candidates[i].Eligible() {
			continue
		}
		if candidates[i].CurrentWorkload >= maxWorkload {
			continue
		}
		ranked = append(ranked, candidates[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CurrentWorkload != ranked[j].CurrentWorkload {
			return ranked[i].CurrentWorkload < ranked[j].CurrentWorkload
		}
		return ranked[i].ID.Hex() < ranked[j].ID.Hex()
	})

	if len(ranked) < 2 {
		return nil
	}

	size := 2
	if (c.Priority == models.PriorityHigh || c.Priority == models.PriorityUrgent) && len(ranked) >= 3 {
		size = 3
	}

	return ranked[:size]
}
