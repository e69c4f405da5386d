package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// memoryLocalStore is a map-backed [LocalStore]. It backs tests and the
// ":memory:" fast path where durability is not wanted.
type memoryLocalStore struct {
	mu     sync.RWMutex
	stores map[string]map[string]map[string]any
}

// NewMemoryLocalStore returns an empty in-memory [LocalStore].
func NewMemoryLocalStore() LocalStore {
	return &memoryLocalStore{stores: make(map[string]map[string]map[string]any)}
}

func (m *memoryLocalStore) Get(_ context.Context, storeName, id string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.stores[storeName][id]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, storeName, id)
	}
	return cloneValue(value), nil
}

func (m *memoryLocalStore) Put(_ context.Context, storeName string, value map[string]any) error {
	id := stringField(value, "id")
	if id == "" {
		return ErrMissingID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stores[storeName] == nil {
		m.stores[storeName] = make(map[string]map[string]any)
	}
	m.stores[storeName][id] = cloneValue(value)
	return nil
}

func (m *memoryLocalStore) Delete(_ context.Context, storeName, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.stores[storeName], id)
	return nil
}

func (m *memoryLocalStore) GetAllByIndex(_ context.Context, storeName, index, key string) ([]map[string]any, error) {
	if _, ok := indexColumns[index]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndex, index)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var values []map[string]any
	for _, value := range m.stores[storeName] {
		if stringField(value, index) == key {
			values = append(values, cloneValue(value))
		}
	}

	// map iteration order is random; keep scans deterministic by id
	sort.Slice(values, func(i, j int) bool {
		return stringField(values[i], "id") < stringField(values[j], "id")
	})
	return values, nil
}

// cloneValue copies the top level so callers cannot mutate stored state
// through a returned or retained map.
func cloneValue(value map[string]any) map[string]any {
	out := make(map[string]any, len(value))
	for k, v := range value {
		out[k] = v
	}
	return out
}
