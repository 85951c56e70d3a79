package websocket

import (
	"encoding/json"
	"log"
	"time"
)

// TeamUpdate represents a real-time team change event
type TeamUpdate struct {
	Type      string      `json:"type"` // TEAM_ASSIGNED, ATTORNEY_REMOVED, PRIMARY_REASSIGNED
	CaseID    string      `json:"caseId"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	UserID    string      `json:"userId,omitempty"`
	UserName  string      `json:"userName,omitempty"`
}

// BroadcastTeamUpdate sends the update to all connected clients
func BroadcastTeamUpdate(update TeamUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Failed to marshal team update: %v", err)
		return
	}
	hub.broadcast(data)
}

// SendTeamAssigned broadcasts a committed team replacement
func SendTeamAssigned(caseID string, team interface{}, userID, userName string) {
	BroadcastTeamUpdate(TeamUpdate{
		Type:      "TEAM_ASSIGNED",
		CaseID:    caseID,
		Data:      team,
		Timestamp: time.Now(),
		UserID:    userID,
		UserName:  userName,
	})
}

// SendAttorneyRemoved broadcasts a team member removal
func SendAttorneyRemoved(caseID, attorneyID string, userID, userName string) {
	BroadcastTeamUpdate(TeamUpdate{
		Type:   "ATTORNEY_REMOVED",
		CaseID: caseID,
		Data: map[string]interface{}{
			"attorneyId": attorneyID,
		},
		Timestamp: time.Now(),
		UserID:    userID,
		UserName:  userName,
	})
}

// SendPrimaryReassigned broadcasts a primary attorney change
func SendPrimaryReassigned(caseID, newPrimaryID string, userID, userName string) {
	BroadcastTeamUpdate(TeamUpdate{
		Type:   "PRIMARY_REASSIGNED",
		CaseID: caseID,
		Data: map[string]interface{}{
			"primaryAttorneyId": newPrimaryID,
		},
		Timestamp: time.Now(),
		UserID:    userID,
		UserName:  userName,
	})
}
