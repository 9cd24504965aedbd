package wizard

import (
	"sync"

	"github.com/google/uuid"

	"hotel-admin/client"
	"hotel-admin/store"
)

// Manager holds the live wizard sessions, one per admin screen, keyed by a
// server-generated UUID.
type Manager struct {
	api   *client.Client
	store *store.Store

	mu       sync.Mutex
	sessions map[string]*Wizard
}

func NewManager(api *client.Client, st *store.Store) *Manager {
	return &Manager{api: api, store: st, sessions: map[string]*Wizard{}}
}

func (m *Manager) Create() *Wizard {
	w := New(uuid.NewString(), m.api, m.store)
	m.mu.Lock()
	m.sessions[w.ID] = w
	m.mu.Unlock()
	return w
}

func (m *Manager) Get(id string) (*Wizard, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.sessions[id]
	return w, ok
}

func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
