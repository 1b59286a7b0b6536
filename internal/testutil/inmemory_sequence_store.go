package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// InMemorySequenceStore implements sequence.Repository with per-code
// counters. Counters can be preset so tests control the next drawn value.
type InMemorySequenceStore struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewInMemorySequenceStore() *InMemorySequenceStore {
	return &InMemorySequenceStore{
		counters: make(map[string]int64),
	}
}

// SetNext presets the value the next call to Next returns for a code
func (s *InMemorySequenceStore) SetNext(code string, value int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[code] = value - 1
}

func (s *InMemorySequenceStore) Next(ctx context.Context, code string, date *time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := code
	if date != nil {
		key = fmt.Sprintf("%s:%s:%s", types.GetTenantID(ctx), code, date.Format("2006"))
		if _, ok := s.counters[key]; !ok {
			// Dated sequences inherit any preset undated counter
			s.counters[key] = s.counters[code]
		}
	}

	s.counters[key]++
	return s.counters[key], nil
}

// Clear resets all counters
func (s *InMemorySequenceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = make(map[string]int64)
}
