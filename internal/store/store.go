package store

// Store is the injectable key-value boundary used for session and reviewer
// persistence. The core pipeline never touches it; only the boundary
// functions in internal/session and internal/review do.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
