package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trujillo96/novisapp-sub000/assignment"
	"github.com/trujillo96/novisapp-sub000/utils"
	"github.com/trujillo96/novisapp-sub000/websocket"
)

// actorFromContext pulls the authenticated user out of the request context.
func actorFromContext(r *http.Request) (primitive.ObjectID, string) {
	idStr, _ := r.Context().Value("userID").(string)
	name, _ := r.Context().Value("userName").(string)
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, name
	}
	return id, name
}

// respondEngineError maps engine errors onto HTTP statuses. Validation
// rejections keep their reason code in the body.
func respondEngineError(w http.ResponseWriter, err error) {
	if ve, ok := assignment.AsValidationError(err); ok {
		utils.RespondWithReason(w, http.StatusUnprocessableEntity, string(ve.Code), ve.Detail)
		return
	}

	switch {
	case errors.Is(err, assignment.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, assignment.ErrInvalidArgument):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, assignment.ErrInvalidState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, assignment.ErrInsufficientCandidates):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, assignment.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("team operation failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "operation failed")
	}
}

type AssignTeamRequest struct {
	AttorneyIDs []string `json:"attorneyIds"`
	Notes       string   `json:"notes,omitempty"`
}

// AssignTeam commits a full team for the case (bulk replace).
func AssignTeam(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathObjectID(w, r, "id", "case")
	if !ok {
		return
	}

	var req AssignTeamRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	attorneyIDs := make([]primitive.ObjectID, 0, len(req.AttorneyIDs))
	for _, idStr := range req.AttorneyIDs {
		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid attorney id: "+idStr)
			return
		}
		attorneyIDs = append(attorneyIDs, id)
	}

	actorID, actorName := actorFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, assignments, err := teamService.AssignTeam(ctx, caseID, attorneyIDs, actorID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	writeAudit(ctx, actorID, actorName, "team_assign", "case", caseID, bson.M{
		"attorneyIds": req.AttorneyIDs,
		"teamSize":    len(assignments),
	})
	websocket.SendTeamAssigned(caseID.Hex(), assignments, actorID.Hex(), actorName)

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"case":        updated,
		"assignments": assignments,
	})
}

// GetCaseAssignments returns the case's active assignment set.
func GetCaseAssignments(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathObjectID(w, r, "id", "case")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assignments, err := teamService.GetActiveAssignments(ctx, caseID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, assignments)
}

// RemoveAttorney takes one attorney off the case team.
func RemoveAttorney(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathObjectID(w, r, "id", "case")
	if !ok {
		return
	}
	attorneyID, ok := pathObjectID(w, r, "attorneyId", "attorney")
	if !ok {
		return
	}

	actorID, actorName := actorFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := teamService.RemoveAttorney(ctx, caseID, attorneyID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	writeAudit(ctx, actorID, actorName, "team_remove_attorney", "case", caseID, bson.M{
		"attorneyId": attorneyID.Hex(),
	})
	websocket.SendAttorneyRemoved(caseID.Hex(), attorneyID.Hex(), actorID.Hex(), actorName)

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

type ReassignPrimaryRequest struct {
	AttorneyID string `json:"attorneyId"`
}

// ReassignPrimary hands the LEAD role and primary duty to another team member.
func ReassignPrimary(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathObjectID(w, r, "id", "case")
	if !ok {
		return
	}

	var req ReassignPrimaryRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	newPrimaryID, err := primitive.ObjectIDFromHex(req.AttorneyID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid attorney id format")
		return
	}

	actorID, actorName := actorFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := teamService.ReassignPrimary(ctx, caseID, newPrimaryID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	writeAudit(ctx, actorID, actorName, "team_reassign_primary", "case", caseID, bson.M{
		"primaryAttorneyId": newPrimaryID.Hex(),
	})
	websocket.SendPrimaryReassigned(caseID.Hex(), newPrimaryID.Hex(), actorID.Hex(), actorName)

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// SuggestTeam proposes the least-loaded eligible team for the case.
func SuggestTeam(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathObjectID(w, r, "id", "case")
	if !ok {
		return
	}

	specialty := r.URL.Query().Get("specialty")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	ids, err := teamService.SelectTeam(ctx, caseID, specialty)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	hexIDs := make([]string, len(ids))
	for i := range ids {
		hexIDs[i] = ids[i].Hex()
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"attorneyIds": hexIDs})
}

// pathObjectID extracts and validates an ObjectID path parameter.
func pathObjectID(w http.ResponseWriter, r *http.Request, key, entity string) (primitive.ObjectID, bool) {
	vars := mux.Vars(r)
	idStr := vars[key]
	if idStr == "" {
		utils.RespondWithError(w, http.StatusBadRequest, entity+" id required")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid "+entity+" id format")
		return primitive.NilObjectID, false
	}
	return id, true
}
