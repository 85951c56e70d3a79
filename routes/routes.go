package routes

import (
	"github.com/gorilla/mux"

	"github.com/trujillo96/novisapp-sub000/handlers"
	"github.com/trujillo96/novisapp-sub000/middleware"
	"github.com/trujillo96/novisapp-sub000/websocket"
)

// HTTP method constants for better maintainability
var (
	MethodsGetOnly    = []string{"GET", "OPTIONS"}
	MethodsPostOnly   = []string{"POST", "OPTIONS"}
	MethodsPutOnly    = []string{"PUT", "OPTIONS"}
	MethodsDeleteOnly = []string{"DELETE", "OPTIONS"}
)

const PathAPI = "/api"

func RegisterRoutes(r *mux.Router) {
	// ====================
	// HEALTH CHECK (Public)
	// ====================
	r.HandleFunc("/health", handlers.HealthCheck).Methods(MethodsGetOnly...)

	// ====================
	// AUTHENTICATION (Public)
	// ====================
	r.HandleFunc("/api/auth/login", handlers.Login).Methods(MethodsPostOnly...)
	r.HandleFunc("/api/auth/validate", handlers.ValidateToken).Methods(MethodsGetOnly...)

	// ====================
	// WEBSOCKET (team change events)
	// ====================
	r.HandleFunc("/ws", websocket.ServeWS)

	// ====================
	// PROTECTED API ROUTES
	// ====================
	apiRouter := r.PathPrefix(PathAPI).Subrouter()
	apiRouter.Use(middleware.AuthMiddleware)

	apiRouter.HandleFunc("/user/me", handlers.GetCurrentUser).Methods(MethodsGetOnly...)

	// ====================
	// CASES
	// ====================
	apiRouter.HandleFunc("/cases", handlers.ListCases).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/cases", handlers.CreateCase).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/cases/{id}", handlers.GetCase).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/cases/{id}", handlers.DeleteCase).Methods(MethodsDeleteOnly...)
	apiRouter.HandleFunc("/cases/{id}/status", handlers.UpdateCaseStatus).Methods(MethodsPutOnly...)

	// ====================
	// TEAM ASSIGNMENT
	// ====================
	apiRouter.HandleFunc("/cases/{id}/team", handlers.AssignTeam).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/cases/{id}/team/suggest", handlers.SuggestTeam).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/cases/{id}/team/{attorneyId}", handlers.RemoveAttorney).Methods(MethodsDeleteOnly...)
	apiRouter.HandleFunc("/cases/{id}/primary", handlers.ReassignPrimary).Methods(MethodsPutOnly...)
	apiRouter.HandleFunc("/cases/{id}/assignments", handlers.GetCaseAssignments).Methods(MethodsGetOnly...)

	// ====================
	// ATTORNEYS
	// ====================
	apiRouter.HandleFunc("/attorneys", handlers.ListAttorneys).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/attorneys", handlers.CreateAttorney).Methods(MethodsPostOnly...)
	apiRouter.HandleFunc("/attorneys/eligible", handlers.ListEligibleAttorneys).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/attorneys/{id}", handlers.GetAttorney).Methods(MethodsGetOnly...)
	apiRouter.HandleFunc("/attorneys/{id}", handlers.UpdateAttorney).Methods(MethodsPutOnly...)

	// ====================
	// WORKLOAD DASHBOARD
	// ====================
	apiRouter.HandleFunc("/dashboard/workload", handlers.GetWorkloadDashboard).Methods(MethodsGetOnly...)

	// ====================
	// AUDIT LOGS
	// ====================
	apiRouter.HandleFunc("/audit", handlers.ListAuditLogs).Methods(MethodsGetOnly...)
}
