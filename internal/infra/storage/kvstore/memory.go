package kvstore

import (
	"context"
	"strings"
	"sync"
)

// Memory потокобезопасная in-memory реализация Store.
// Используется в тестах и как замена БД в локальной разработке.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory создает пустое in-memory хранилище
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get возвращает значение по ключу
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Set записывает значение по ключу (last-write-wins)
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}

// Delete удаляет ключ
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.values[key]; !ok {
		return ErrKeyNotFound
	}
	delete(m.values, key)
	return nil
}

// ListByPrefix возвращает все пары с указанным префиксом
func (m *Memory) ListByPrefix(_ context.Context, prefix string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string][]byte)
	for key, value := range m.values {
		if strings.HasPrefix(key, prefix) {
			cp := make([]byte, len(value))
			copy(cp, value)
			result[key] = cp
		}
	}
	return result, nil
}

// DeleteByPrefix удаляет все ключи с указанным префиксом
func (m *Memory) DeleteByPrefix(_ context.Context, prefix string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
			removed++
		}
	}
	return removed, nil
}
