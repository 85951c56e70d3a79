package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/trujillo96/novisapp-sub000/utils"
)

// GetWorkloadDashboard returns per-attorney utilization across the firm.
func GetWorkloadDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dash, err := teamService.BuildWorkloadDashboard(ctx)
	if err != nil {
		log.Printf("workload dashboard error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to build workload dashboard")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dash)
}
