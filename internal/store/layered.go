package store

// LayeredStore reads through memory before disk and promotes disk hits.
// Purely a performance layer; observable results match DiskStore alone.
type LayeredStore struct {
	memory Store
	disk   Store
}

// NewLayeredStore creates a new layered store over the given directory
func NewLayeredStore(dir string) *LayeredStore {
	return &LayeredStore{
		memory: NewMemoryStore(),
		disk:   NewDiskStore(dir),
	}
}

// Get checks memory first, then disk
func (s *LayeredStore) Get(key string) (string, bool) {
	if val, found := s.memory.Get(key); found {
		return val, true
	}

	if val, found := s.disk.Get(key); found {
		_ = s.memory.Set(key, val)
		return val, true
	}

	return "", false
}

// Set stores the value in both layers; a disk failure propagates
func (s *LayeredStore) Set(key string, value string) error {
	if err := s.memory.Set(key, value); err != nil {
		return err
	}
	return s.disk.Set(key, value)
}
