// Package session keeps per-chat conversation state for the deal
// assistant. Sessions live in memory and hold the FSM state plus the
// selections gathered along the way (platform, category).
package session

import (
	"sync"

	"github.com/shopsavvy/dealbot/catalog"
)

// State identifies a conversation step.
type State string

const (
	// StateMenu is the resting state: the main menu was shown and no
	// flow is in progress.
	StateMenu State = "menu"
	// StatePlatformSelection waits for a platform button press.
	StatePlatformSelection State = "platform_selection"
	// StateProductSearch waits for a free-text product query.
	StateProductSearch State = "product_search"
	// StateCategorySearch waits for a category button press.
	StateCategorySearch State = "category_search"
	// StateDealTypeSelection waits for a deal-type button press.
	StateDealTypeSelection State = "deal_type_selection"
)

// Session is one chat's conversation snapshot.
type Session struct {
	State    State
	Platform catalog.Platform
	Category string
}

// Manager stores and mutates chat sessions.
type Manager interface {
	Get(chatID int64) Session
	SetState(chatID int64, st State)
	SetPlatform(chatID int64, p catalog.Platform)
	SetCategory(chatID int64, category string)
	State(chatID int64) State
	InProgress(chatID int64) bool
	Reset(chatID int64)
}

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryManager constructs the in-memory Manager used in production
// and tests alike.
func NewMemoryManager() Manager {
	return &memoryManager{sessions: make(map[int64]*Session)}
}

// Get returns a copy of the chat session, or a fresh menu session when
// none exists yet.
func (m *memoryManager) Get(chatID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.sessions[chatID]; ok {
		return *s
	}
	return Session{State: StateMenu}
}

func (m *memoryManager) upsert(chatID int64) *Session {
	s, ok := m.sessions[chatID]
	if !ok {
		s = &Session{State: StateMenu}
		m.sessions[chatID] = s
	}
	return s
}

// SetState moves the chat to a new conversation step.
func (m *memoryManager) SetState(chatID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsert(chatID).State = st
}

// SetPlatform records the platform chosen for the current flow.
func (m *memoryManager) SetPlatform(chatID int64, p catalog.Platform) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsert(chatID).Platform = p
}

// SetCategory records the category chosen for the current flow.
func (m *memoryManager) SetCategory(chatID int64, category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsert(chatID).Category = category
}

// State returns the chat's current conversation step.
func (m *memoryManager) State(chatID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[chatID]; ok {
		return s.State
	}
	return StateMenu
}

// InProgress reports whether the chat is mid-flow.
func (m *memoryManager) InProgress(chatID int64) bool {
	return m.State(chatID) != StateMenu
}

// Reset drops the session entirely, returning the chat to the menu
// with no remembered selections.
func (m *memoryManager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}
