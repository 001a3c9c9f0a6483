package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/plin1112/mcell/pkg/domain"
)

// Store implements ports.SiteStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.SiteRecord
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.SiteRecord),
	}
}

// Save persists the record in memory.
func (s *Store) Save(ctx context.Context, record domain.SiteRecord) error {
	// Copy the location so the caller can't mutate stored data through it
	if record.Location != nil {
		loc := *record.Location
		record.Location = &loc
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.Name] = record
	return nil
}

// Load retrieves a record from memory.
func (s *Store) Load(ctx context.Context, name string) (*domain.SiteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[name]
	if !ok {
		return nil, domain.ErrSiteNotFound
	}
	if record.Location != nil {
		loc := *record.Location
		record.Location = &loc
	}
	return &record, nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored site names in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Find returns copies of the records matching filter, sorted by name.
func (s *Store) Find(ctx context.Context, filter domain.SiteFilter) ([]domain.SiteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.SiteRecord
	for _, record := range s.data {
		if !filter.Matches(record) {
			continue
		}
		if record.Location != nil {
			loc := *record.Location
			record.Location = &loc
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
