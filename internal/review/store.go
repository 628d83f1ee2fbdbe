package review

import (
	"encoding/json"
	"fmt"

	"github.com/fathomworks/opsbrief/internal/model"
	"github.com/fathomworks/opsbrief/internal/store"
)

// reviewerStoreKey holds the whole nested scope -> decision id -> entry map
const reviewerStoreKey = "opsbrief:v1:reviewers"

type reviewerStore map[string]map[string]model.ReviewerDecision

// LoadReviewerDecisions returns the reviewer entries for one scope.
// Malformed or absent stored state fails open to an empty map.
func LoadReviewerDecisions(scopeKey string, st store.Store) map[string]model.ReviewerDecision {
	all := loadAll(st)

	entries, ok := all[scopeKey]
	if !ok || entries == nil {
		return map[string]model.ReviewerDecision{}
	}
	return entries
}

// SaveReviewerDecision upserts an entry by decision id within the scope and
// persists the whole nested store. The returned map is a new value; current
// is not mutated. Storage write failures propagate.
func SaveReviewerDecision(entry model.ReviewerDecision, current map[string]model.ReviewerDecision, scopeKey string, st store.Store) (map[string]model.ReviewerDecision, error) {
	updated := make(map[string]model.ReviewerDecision, len(current)+1)
	for id, e := range current {
		updated[id] = e
	}
	updated[entry.DecisionID] = entry

	all := loadAll(st)
	all[scopeKey] = updated

	data, err := json.Marshal(all)
	if err != nil {
		return nil, fmt.Errorf("marshal reviewer store: %w", err)
	}
	if err := st.Set(reviewerStoreKey, string(data)); err != nil {
		return nil, fmt.Errorf("persist reviewer store: %w", err)
	}

	return updated, nil
}

// loadAll reads the nested store, treating malformed JSON as empty
func loadAll(st store.Store) reviewerStore {
	raw, ok := st.Get(reviewerStoreKey)
	if !ok {
		return reviewerStore{}
	}

	var all reviewerStore
	if err := json.Unmarshal([]byte(raw), &all); err != nil || all == nil {
		return reviewerStore{}
	}
	return all
}
