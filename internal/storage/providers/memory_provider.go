package providers

import (
	"fmt"
	"sync"

	"github.com/ja-he/quickedit/internal/model"
	"github.com/ja-he/quickedit/internal/storage"
)

// MemoryFieldStore keeps properties in memory only.
type MemoryFieldStore struct {
	mutex  sync.Mutex
	values map[model.PropertyID]string

	// Refuse (if set) is consulted on every save; a non-empty result refuses
	// the value with the returned messages.
	Refuse func(id model.PropertyID, value string) []string
}

// NewMemoryFieldStore returns a pointer to a new MemoryFieldStore holding the
// given values.
func NewMemoryFieldStore(values map[model.PropertyID]string) *MemoryFieldStore {
	s := &MemoryFieldStore{values: make(map[model.PropertyID]string)}
	for id, v := range values {
		s.values[id] = v
	}
	return s
}

// Load returns the stored value of the property, or storage.ErrNotFound.
func (s *MemoryFieldStore) Load(id model.PropertyID) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	v, ok := s.values[id]
	if !ok {
		return "", fmt.Errorf("no value for '%s': %w", id, storage.ErrNotFound)
	}
	return v, nil
}

// Save stores the value of the property, unless refused.
func (s *MemoryFieldStore) Save(id model.PropertyID, value string) error {
	if s.Refuse != nil {
		if messages := s.Refuse(id, value); len(messages) > 0 {
			return &storage.ValidationError{Property: id, Messages: messages}
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[id] = value
	return nil
}
