package notification

import (
	"encoding/json"
	"fmt"

	"github.com/olahol/melody"
)

// Service broadcasts realtime events to connected front-desk sessions.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Event is the JSON payload pushed over the websocket.
type Event struct {
	Type     string `json:"type"`
	TenantID uint   `json:"tenantId"`
	BranchID uint   `json:"branchId"`
	Message  string `json:"message"`
}

// BuildEvent serializes a lifecycle event for broadcast. Marshal errors are
// not expected for this shape; the fallback is the bare message.
func BuildEvent(eventType string, tenantID, branchID uint, message string) string {
	payload, err := json.Marshal(Event{
		Type:     eventType,
		TenantID: tenantID,
		BranchID: branchID,
		Message:  message,
	})
	if err != nil {
		return message
	}
	return string(payload)
}
