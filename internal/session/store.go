// Package session owns the per-browser tab selection.
package session

import (
	"sync"

	"comms-dashboard/internal/ui"

	"github.com/google/uuid"
)

// ChangeFunc is notified after a session's tab actually changes.
type ChangeFunc func(sessionID string, tab ui.Tab)

// Store is the single writer of every session's tab selection.
type Store struct {
	mu       sync.RWMutex
	tabs     map[string]ui.Tab
	onChange ChangeFunc
}

func NewStore(onChange ChangeFunc) *Store {
	return &Store{tabs: make(map[string]ui.Tab), onChange: onChange}
}

func NewID() string {
	return uuid.NewString()
}

// For returns the TabState of one session. Sessions start on ui.DefaultTab.
func (s *Store) For(sessionID string) ui.TabState {
	return &tabState{store: s, id: sessionID}
}

func (s *Store) current(id string) ui.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if tab, ok := s.tabs[id]; ok {
		return tab
	}
	return ui.DefaultTab
}

func (s *Store) set(id string, tab ui.Tab) {
	s.mu.Lock()
	prev, ok := s.tabs[id]
	if !ok {
		prev = ui.DefaultTab
	}
	s.tabs[id] = tab
	s.mu.Unlock()

	if prev != tab && s.onChange != nil {
		s.onChange(id, tab)
	}
}

// Len reports how many sessions have made a selection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tabs)
}

type tabState struct {
	store *Store
	id    string
}

func (t *tabState) Current() ui.Tab   { return t.store.current(t.id) }
func (t *tabState) SetTab(tab ui.Tab) { t.store.set(t.id, tab) }
