package review

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const scopePrefix = "opsbrief:v1:scope:"

// ScopeKey derives the reviewer-state partition key. An explicit session id
// wins; otherwise the key is a digest of the trimmed, case-folded intake so
// the same intake always maps to the same scope and different intakes never
// share reviewer state.
func ScopeKey(intakeText, sessionID string) string {
	if sessionID != "" {
		return scopePrefix + "session:" + sessionID
	}

	normalized := strings.ToLower(strings.TrimSpace(intakeText))
	sum := sha256.Sum256([]byte(normalized))
	return scopePrefix + hex.EncodeToString(sum[:])
}
