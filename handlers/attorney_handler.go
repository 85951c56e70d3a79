package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trujillo96/novisapp-sub000/models"
	"github.com/trujillo96/novisapp-sub000/utils"
)

func ListAttorneys(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"deletedAt": nil}
	if role := r.URL.Query().Get("role"); role != "" {
		filter["role"] = models.AttorneyRole(role)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}).
		SetProjection(bson.M{"passwordHash": 0})

	cursor, err := userCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("attorneys Find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	defer cursor.Close(ctx)

	var attorneys []models.Attorney
	if err = cursor.All(ctx, &attorneys); err != nil {
		log.Printf("cursor decode error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to decode attorneys")
		return
	}

	if attorneys == nil {
		attorneys = []models.Attorney{}
	}

	utils.RespondWithJSON(w, http.StatusOK, attorneys)
}

// ListEligibleAttorneys returns the active lawyers and managing partners
// that team selection draws from, optionally filtered by specialty tag.
func ListEligibleAttorneys(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := models.Specialty("")
	if raw := r.URL.Query().Get("specialty"); raw != "" {
		filter = models.NormalizeSpecialty(raw)
	}

	attorneys, err := stores.Attorneys.FindEligible(ctx, filter)
	if err != nil {
		log.Printf("eligible attorneys Find error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, attorneys)
}

type CreateAttorneyRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	Role        string   `json:"role"`
	Specialties []string `json:"specialties,omitempty"`
}

func CreateAttorney(w http.ResponseWriter, r *http.Request) {
	var req CreateAttorneyRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing required fields: firstName, lastName, email")
		return
	}

	role := models.AttorneyRole(req.Role)
	if role == "" {
		role = models.RoleLawyer
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": req.Email, "deletedAt": nil})
	if err != nil {
		log.Printf("unique email check error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "an attorney with this email already exists")
		return
	}

	tempPassword := utils.GenerateRandomPassword(12)
	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		log.Printf("password hash error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create attorney")
		return
	}

	attorney := models.Attorney{
		ID:           primitive.NewObjectID(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		Specialties:  models.NormalizeSpecialties(req.Specialties),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := userCollection.InsertOne(ctx, attorney); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "an attorney with this email already exists")
			return
		}
		log.Printf("insert attorney error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create attorney")
		return
	}

	actorID, actorName := actorFromContext(r)
	writeAudit(ctx, actorID, actorName, "attorney_create", "attorney", attorney.ID, bson.M{
		"email": attorney.Email,
		"role":  attorney.Role,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"attorney":     attorney,
		"tempPassword": tempPassword,
	})
}

func GetAttorney(w http.ResponseWriter, r *http.Request) {
	attorneyID, ok := pathObjectID(w, r, "id", "attorney")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var attorney models.Attorney
	err := userCollection.FindOne(ctx, bson.M{"_id": attorneyID, "deletedAt": nil},
		options.FindOne().SetProjection(bson.M{"passwordHash": 0})).Decode(&attorney)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "attorney not found")
			return
		}
		log.Printf("find attorney error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, attorney)
}

type UpdateAttorneyRequest struct {
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Role        string   `json:"role,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

func UpdateAttorney(w http.ResponseWriter, r *http.Request) {
	attorneyID, ok := pathObjectID(w, r, "id", "attorney")
	if !ok {
		return
	}

	var req UpdateAttorneyRequest
	if err := utils.ParseJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	update := bson.M{}
	if req.FirstName != "" {
		update["firstName"] = req.FirstName
	}
	if req.LastName != "" {
		update["lastName"] = req.LastName
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.Role != "" {
		update["role"] = models.AttorneyRole(req.Role)
	}
	if req.Active != nil {
		update["active"] = *req.Active
	}
	if req.Specialties != nil {
		update["specialties"] = models.NormalizeSpecialties(req.Specialties)
	}

	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	update["updatedAt"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := userCollection.UpdateOne(ctx, bson.M{"_id": attorneyID, "deletedAt": nil}, bson.M{"$set": update})
	if err != nil {
		log.Printf("update attorney error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update attorney")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "attorney not found")
		return
	}

	actorID, actorName := actorFromContext(r)
	writeAudit(ctx, actorID, actorName, "attorney_update", "attorney", attorneyID, update)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "attorney updated successfully"})
}
