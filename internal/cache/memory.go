package cache

import (
	"context"
	"sync"

	"github.com/bvsbharat/mzon/internal/models"
)

// MemoryStore keeps the most recent GenerationResult per news item in
// process memory. Last write wins per key; entries never expire until
// Clear.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*models.GenerationResult
}

// NewMemoryStore returns an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*models.GenerationResult),
	}
}

// Get returns the stored result for a news item, or (nil, nil) on a miss.
func (m *MemoryStore) Get(_ context.Context, newsID string) (*models.GenerationResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[newsID], nil
}

// Set records the most recent result for a news item.
func (m *MemoryStore) Set(_ context.Context, newsID string, result *models.GenerationResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[newsID] = result
	return nil
}

// Clear drops all history entries.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]*models.GenerationResult)
	return nil
}
