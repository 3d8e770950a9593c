package settings

import (
	"context"
	"sync"
)

// Memory is an in-memory Store used by tests and by code that needs a
// settings collaborator without a database behind it.
type Memory struct {
	mu      sync.RWMutex
	toggles map[string]bool
	domains []string
}

func NewMemory() *Memory {
	return &Memory{
		toggles: make(map[string]bool),
	}
}

func (m *Memory) Toggle(_ context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	on, ok := m.toggles[name]
	if !ok {
		return true, nil
	}
	return on, nil
}

func (m *Memory) SetToggle(_ context.Context, name string, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toggles[name] = on
	return nil
}

func (m *Memory) CustomDomains(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.domains))
	copy(out, m.domains)
	return out, nil
}

func (m *Memory) SetCustomDomains(_ context.Context, domains []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domains = make([]string, len(domains))
	copy(m.domains, domains)
	return nil
}
