package searchsync

import "sync"

// Entry is a single key/value pair written to a Store
type Entry struct {
	Key   string
	Value string
}

// Store is a string-keyed, string-valued persistent store scoped to one visitor
type Store interface {
	// Get returns the value for key; ok is false when the key was never written
	Get(key string) (value string, ok bool, err error)
	// Set writes entries in order, overwriting prior values
	Set(entries ...Entry) error
}

// MemoryStore keeps values in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryStore) Set(entries ...Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range entries {
		m.values[e.Key] = e.Value
	}
	return nil
}

// Len returns the number of keys held
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
