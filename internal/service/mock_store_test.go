package service

import (
	"encoding/json"

	"github.com/ishaansolanki9/StudyFlow/internal/store"
)

// mockStore is an in-memory store.Store. Load returns a deep copy, like
// the file store re-parsing the document on every call, so tests exercise
// the real load→mutate→save contract.
type mockStore struct {
	snap    *store.Snapshot
	loadErr error
	saveErr error
	saves   int
}

func newMockStore() *mockStore {
	return &mockStore{snap: store.NewSnapshot()}
}

func (m *mockStore) Load() (*store.Snapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	raw, err := json.Marshal(m.snap)
	if err != nil {
		return nil, err
	}
	snap := &store.Snapshot{}
	if err := json.Unmarshal(raw, snap); err != nil {
		return nil, err
	}
	snap.Normalize()
	return snap, nil
}

func (m *mockStore) Save(snap *store.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.snap = snap
	return nil
}
