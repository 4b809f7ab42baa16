package session

import (
	"sync"
	"testing"

	"github.com/shopsavvy/dealbot/catalog"
)

func TestGetDefaultsToMenu(t *testing.T) {
	m := NewMemoryManager()

	s := m.Get(42)
	if s.State != StateMenu {
		t.Fatalf("expected menu state, got %q", s.State)
	}
	if s.Platform != "" || s.Category != "" {
		t.Fatalf("expected empty selections, got %+v", s)
	}
	if m.InProgress(42) {
		t.Fatal("fresh chat must not be in progress")
	}
}

func TestSelectionsSurviveStateChanges(t *testing.T) {
	m := NewMemoryManager()

	m.SetState(7, StatePlatformSelection)
	m.SetPlatform(7, catalog.PlatformAmazon)
	m.SetState(7, StateProductSearch)

	s := m.Get(7)
	if s.State != StateProductSearch {
		t.Fatalf("state = %q, want %q", s.State, StateProductSearch)
	}
	if s.Platform != catalog.PlatformAmazon {
		t.Fatalf("platform = %q, want amazon", s.Platform)
	}
	if !m.InProgress(7) {
		t.Fatal("chat mid-flow must be in progress")
	}
}

func TestResetDropsEverything(t *testing.T) {
	m := NewMemoryManager()

	m.SetState(7, StateCategorySearch)
	m.SetCategory(7, "Electronics")
	m.Reset(7)

	s := m.Get(7)
	if s.State != StateMenu || s.Platform != "" || s.Category != "" {
		t.Fatalf("expected pristine session after reset, got %+v", s)
	}
}

func TestSessionsAreIsolatedPerChat(t *testing.T) {
	m := NewMemoryManager()

	m.SetState(1, StateProductSearch)
	m.SetPlatform(1, catalog.PlatformFlipkart)

	if got := m.State(2); got != StateMenu {
		t.Fatalf("chat 2 state = %q, want menu", got)
	}
	if got := m.Get(2).Platform; got != "" {
		t.Fatalf("chat 2 platform = %q, want empty", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := NewMemoryManager()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.SetState(id, StateProductSearch)
			m.SetPlatform(id, catalog.PlatformMyntra)
			_ = m.Get(id)
			m.Reset(id)
		}(int64(i % 4))
	}
	wg.Wait()
}
