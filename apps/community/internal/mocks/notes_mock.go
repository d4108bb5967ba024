package mocks

import (
	"context"
	"slices"
	"sync"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"readinglog.xdoubleu.com/apps/community/internal/models"
)

// MockNoteStore keeps notes in memory and records every unshare call.
type MockNoteStore struct {
	mu         sync.Mutex
	notes      []models.SharedNote
	listErr    error
	unshareErr error
	unshared   []string
	gate       chan struct{}
}

func NewMockNoteStore(notes ...models.SharedNote) *MockNoteStore {
	return &MockNoteStore{
		mu:         sync.Mutex{},
		notes:      notes,
		listErr:    nil,
		unshareErr: nil,
		unshared:   []string{},
		gate:       nil,
	}
}

func (m *MockNoteStore) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listErr = err
}

func (m *MockNoteStore) SetUnshareError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unshareErr = err
}

// HoldUnshares blocks every following unshare until the returned function
// is called.
func (m *MockNoteStore) HoldUnshares() func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	gate := make(chan struct{})
	m.gate = gate
	return func() { close(gate) }
}

func (m *MockNoteStore) UnshareCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.unshared)
}

func (m *MockNoteStore) ListShared(_ context.Context) ([]models.SharedNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	shared := []models.SharedNote{}
	for _, note := range m.notes {
		if note.IsShared() {
			shared = append(shared, note)
		}
	}

	slices.SortStableFunc(shared, func(a, b models.SharedNote) int {
		return b.SharedAt.Compare(*a.SharedAt)
	})

	return shared, nil
}

func (m *MockNoteStore) Unshare(ctx context.Context, id string) error {
	m.mu.Lock()
	m.unshared = append(m.unshared, id)
	gate := m.gate
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unshareErr != nil {
		return m.unshareErr
	}

	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes[i].SharedAt = nil
			return nil
		}
	}

	return database.ErrResourceNotFound
}
