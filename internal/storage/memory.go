package storage

import (
    "context"
    "sync"
)

// Memory keeps documents in process memory.  It is used by tests and by
// the "memory" driver for throwaway sessions.
type Memory struct {
    mu   sync.RWMutex
    data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{data: make(map[string][]byte)} }

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
    m.mu.RLock()
    defer m.mu.RUnlock()
    v, ok := m.data[key]
    if !ok {
        return nil, ErrKeyNotFound
    }
    return append([]byte(nil), v...), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.data[key] = append([]byte(nil), value...)
    return nil
}

func (m *Memory) Close() error { return nil }
