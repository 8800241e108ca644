package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps everything in process memory. Values are copied on the
// way in and out so callers never share backing arrays with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, namespace, key string) ([]byte, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[namespace][key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Set(_ context.Context, namespace, key string, value []byte) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.data[namespace]
	if !ok {
		ns = make(map[string][]byte)
		m.data[namespace] = ns
	}
	ns[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, namespace, key string) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if ns, ok := m.data[namespace]; ok {
		delete(ns, key)
		if len(ns) == 0 {
			delete(m.data, namespace)
		}
	}
	return nil
}
