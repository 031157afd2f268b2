package kvstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It is the test double for every service
// test and also a usable driver for throwaway demo runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// FailSet, when non-nil, makes Set fail for the named keys.
	// Tests use it to exercise partial checkout failures.
	FailSet map[string]error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailSet[key]; ok {
		return err
	}

	m.data[key] = value
	return nil
}

// Snapshot returns a copy of the current contents (test inspection helper).
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out
}
