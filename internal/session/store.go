package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/store"
)

const sessionStoreKey = "opsbrief:v1:sessions"

// New creates a named snapshot of raw intake text
func New(name, intakeText string) model.SavedSession {
	return model.SavedSession{
		ID:         uuid.NewString(),
		Name:       name,
		CreatedAt:  time.Now().UTC(),
		IntakeText: intakeText,
	}
}

// LoadSessions returns the saved session list, newest first.
// Malformed stored JSON fails open to an empty list.
func LoadSessions(st store.Store) []model.SavedSession {
	raw, ok := st.Get(sessionStoreKey)
	if !ok {
		return []model.SavedSession{}
	}

	var sessions []model.SavedSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil || sessions == nil {
		return []model.SavedSession{}
	}
	return sessions
}

// SaveSessionToStorage prepends the session, evicts beyond the cap, and
// persists the list. Storage write failures propagate; existing is never
// mutated.
func SaveSessionToStorage(sess model.SavedSession, existing []model.SavedSession, st store.Store) ([]model.SavedSession, error) {
	sessions := make([]model.SavedSession, 0, len(existing)+1)
	sessions = append(sessions, sess)
	sessions = append(sessions, existing...)

	if len(sessions) > model.MaxSavedSessions {
		sessions = sessions[:model.MaxSavedSessions]
	}

	data, err := json.Marshal(sessions)
	if err != nil {
		return nil, fmt.Errorf("marshal sessions: %w", err)
	}
	if err := st.Set(sessionStoreKey, string(data)); err != nil {
		return nil, fmt.Errorf("persist sessions: %w", err)
	}

	return sessions, nil
}
