package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trujillo96/novisapp-sub000/models"
	"github.com/trujillo96/novisapp-sub000/utils"
)

// Thin CRUD over cases. The case status machine is owned here by intake;
// the assignment engine only consumes it.

func ListCases(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = models.CaseStatus(status)
	}

	cases, err := stores.Cases.Find(ctx, filter)
	if err != nil {
		log.Printf("cases Find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cases)
}

type CreateCaseRequest struct {
	CaseNumber     string  `json:"caseNumber"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	Specialty      string  `json:"specialty,omitempty"`
	Priority       string  `json:"priority,omitempty"`
	Complexity     string  `json:"complexity,omitempty"`
	EstimatedValue float64 `json:"estimatedValue,omitempty"`
	MinTeamSize    int     `json:"minTeamSize,omitempty"`
	MaxTeamSize    int     `json:"maxTeamSize,omitempty"`
	ClientName     string  `json:"clientName,omitempty"`
}

func CreateCase(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if req.CaseNumber == "" || req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing required fields: caseNumber and title")
		return
	}

	priority := models.CasePriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}
	complexity := models.CaseComplexity(req.Complexity)
	if complexity == "" {
		complexity = models.ComplexityMedium
	}

	actorID, actorName := actorFromContext(r)
	now := time.Now().UTC()

	c := models.Case{
		ID:             primitive.NewObjectID(),
		CaseNumber:     req.CaseNumber,
		Title:          req.Title,
		Description:    req.Description,
		Status:         models.CaseStatusOpen,
		Specialty:      req.Specialty,
		Priority:       priority,
		Complexity:     complexity,
		EstimatedValue: req.EstimatedValue,
		MinTeamSize:    req.MinTeamSize,
		MaxTeamSize:    req.MaxTeamSize,
		ClientName:     req.ClientName,
		CreatedBy:      actorID,
		CreatedAt:      now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := stores.Cases.Save(ctx, &c); err != nil {
		log.Printf("insert case error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create case")
		return
	}

	writeAudit(ctx, actorID, actorName, "case_create", "case", c.ID, bson.M{
		"caseNumber": c.CaseNumber,
		"title":      c.Title,
	})

	utils.RespondWithJSON(w, http.StatusCreated, c)
}

func GetCase(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathObjectID(w, r, "id", "case")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	c, err := stores.Cases.FindByID(ctx, caseID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, c)
}

type UpdateCaseStatusRequest struct {
	Status string `json:"status"`
}

var validCaseStatuses = map[models.CaseStatus]bool{
	models.CaseStatusOpen:       true,
	models.CaseStatusInProgress: true,
	models.CaseStatusCompleted:  true,
	models.CaseStatusClosed:     true,
	models.CaseStatusCancelled:  true,
}

func UpdateCaseStatus(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathObjectID(w, r, "id", "case")
	if !ok {
		return
	}

	var req UpdateCaseStatusRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	status := models.CaseStatus(req.Status)
	if !validCaseStatuses[status] {
		utils.RespondWithError(w, http.StatusBadRequest, "unknown case status: "+req.Status)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	c, err := stores.Cases.FindByID(ctx, caseID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	oldStatus := c.Status
	c.Status = status
	c.UpdatedAt = time.Now().UTC()

	if err := stores.Cases.Save(ctx, c); err != nil {
		log.Printf("update case status error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update case")
		return
	}

	actorID, actorName := actorFromContext(r)
	writeAudit(ctx, actorID, actorName, "case_status_change", "case", caseID, bson.M{
		"oldStatus": oldStatus,
		"newStatus": status,
	})

	utils.RespondWithJSON(w, http.StatusOK, c)
}

func DeleteCase(w http.ResponseWriter, r *http.Request) {
	caseID, ok := pathObjectID(w, r, "id", "case")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	c, err := stores.Cases.FindByID(ctx, caseID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	now := time.Now().UTC()
	c.Status = models.CaseStatusCancelled
	c.DeletedAt = &now
	c.UpdatedAt = now

	if err := stores.Cases.Save(ctx, c); err != nil {
		log.Printf("delete case error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete case")
		return
	}

	actorID, actorName := actorFromContext(r)
	writeAudit(ctx, actorID, actorName, "case_delete", "case", caseID, bson.M{
		"caseNumber": c.CaseNumber,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "case cancelled successfully"})
}
