package model

import "time"

// MaxSavedSessions caps the saved-session list; the oldest entry is evicted
const MaxSavedSessions = 20

// SavedSession is a user-named snapshot of raw intake text
type SavedSession struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	IntakeText string    `json:"intakeText"`
}
