package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aevon-lab/interval/internal/core/schedule"
	"github.com/google/uuid"
)

// MemoryStore is an in-memory ScheduleStore.
// Useful for testing and for running without a database.
type MemoryStore struct {
	mu        sync.RWMutex
	schedules map[string]*schedule.Schedule
	now       func() time.Time
}

// NewMemoryStore creates an empty in-memory schedule store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		schedules: make(map[string]*schedule.Schedule),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryStore) SaveSchedule(_ context.Context, s *schedule.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.schedules[s.Name]; exists {
		return ErrDuplicate
	}
	m.put(s)
	return nil
}

func (m *MemoryStore) UpsertSchedule(_ context.Context, s *schedule.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, exists := m.schedules[s.Name]; exists {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
		stored := *s
		m.schedules[s.Name] = &stored
		return nil
	}
	m.put(s)
	return nil
}

// put assigns identity fields and stores a copy. Callers hold the lock.
func (m *MemoryStore) put(s *schedule.Schedule) {
	s.ID = uuid.New().String()
	s.CreatedAt = m.now()
	stored := *s
	m.schedules[s.Name] = &stored
}

func (m *MemoryStore) GetSchedule(_ context.Context, name string) (*schedule.Schedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.schedules[name]
	if !exists {
		return nil, ErrNotFound
	}
	stored := *s
	return &stored, nil
}

func (m *MemoryStore) ListSchedules(_ context.Context) ([]*schedule.Schedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*schedule.Schedule, 0, len(m.schedules))
	for _, s := range m.schedules {
		stored := *s
		out = append(out, &stored)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryStore) DeleteSchedule(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.schedules[name]; !exists {
		return ErrNotFound
	}
	delete(m.schedules, name)
	return nil
}
