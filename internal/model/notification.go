package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification severity levels.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
)

// Notification is a transient toast-style message surfaced in the
// status bar. Notifications live only in memory; they are never
// persisted with the project snapshot.
type Notification struct {
	ID        string
	Type      string
	Title     string
	Message   string
	CreatedAt time.Time
}

// NewNotification creates a notification stamped with the current time.
func NewNotification(kind, title, message string) *Notification {
	return &Notification{
		ID:        uuid.New().String(),
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
