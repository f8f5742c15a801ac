// Package storage uploads backups and exports to object storage.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ObjectStore writes whole objects under a key.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}

// DatedKey returns prefix/YYYY/MM/DD/<uuid><ext> for t.
func DatedKey(prefix string, t time.Time, ext string) string {
	t = t.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%02d/%s%s", prefix, t.Year(), int(t.Month()), t.Day(), uuid.New(), ext)
}

// MemoryStore keeps objects in memory. It backs the in-memory storage mode
// and tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (m *MemoryStore) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[key] = append([]byte(nil), body...)
	return nil
}

func (m *MemoryStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.objects[key]
	return b, ok
}

// Keys returns the stored keys in lexical order.
func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
