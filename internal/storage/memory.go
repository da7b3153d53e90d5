package storage

import (
	"errors"
	"sync"
)

// ErrSaveRefused is what a Memory store with FailSaves set returns
// when no explicit SaveErr is configured.
var ErrSaveRefused = errors.New("save refused")

// Memory is an in-process Store with no durability. It backs tests
// and ephemeral sessions where nothing should outlive the process.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailSaves makes every Save return SaveErr, for exercising
	// persistence-failure paths.
	FailSaves bool
	SaveErr   error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: map[string][]byte{}}
}

func (m *Memory) Load(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, true, nil
}

func (m *Memory) Save(key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		if m.SaveErr != nil {
			return m.SaveErr
		}
		return ErrSaveRefused
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	m.blobs[key] = cp
	return nil
}

func (m *Memory) Close() error { return nil }
