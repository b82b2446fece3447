// Package reportstore persists report snapshots under derived string
// keys. Core logic only ever sees the KV capability, so the backing
// store can be the in-memory session store or the database without the
// rest of the service noticing.
package reportstore

import (
	"errors"
	"sort"
	"sync"
)

// ErrQuota is returned by Put when the store cannot hold the value.
// Snapshots embed photos as data URLs, so a record can genuinely be
// too large; callers surface this as a save failure, never swallow it.
var ErrQuota = errors.New("reportstore: storage quota exceeded")

// KV is the string key/value capability a Store runs on top of.
type KV interface {
	Put(key, value string) error
	Get(key string) (value string, ok bool, err error)
	Keys() ([]string, error)
	Delete(key string) error
}

// DefaultMemoryQuota mirrors the ~5MB browsers give localStorage, the
// store this one stands in for during in-memory operation.
const DefaultMemoryQuota = 5 << 20

// Memory is a mutex-guarded map KV scoped to the process lifetime.
// It is the default store when no database is configured and the test
// double everywhere else.
type Memory struct {
	mu    sync.Mutex
	data  map[string]string
	quota int
}

// NewMemory returns an empty in-memory KV with the default quota.
func NewMemory() *Memory {
	return NewMemoryWithQuota(DefaultMemoryQuota)
}

// NewMemoryWithQuota returns an empty in-memory KV holding at most
// quota bytes of values. quota <= 0 means unlimited.
func NewMemoryWithQuota(quota int) *Memory {
	return &Memory{data: make(map[string]string), quota: quota}
}

func (m *Memory) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quota > 0 {
		total := len(value)
		for k, v := range m.data {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > m.quota {
			return ErrQuota
		}
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
