package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type AssessmentCompletedEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	Provider  string    `json:"provider"`
	Timestamp string    `json:"timestamp"`
}

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyAssessmentCompleted(userID uuid.UUID, provider string) {
	h := defaultHub.Load()
	if h == nil || userID == uuid.Nil {
		return
	}

	evt := AssessmentCompletedEvent{
		Type:      "assessment_completed",
		UserID:    userID,
		Provider:  provider,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyJobsUpdated(source string, count int) {
	h := defaultHub.Load()
	if h == nil || source == "" {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      "jobs_updated",
		Source:    source,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
