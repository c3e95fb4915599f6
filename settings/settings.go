// Package settings tracks which conversion target currencies each chat
// has enabled.
package settings

import "sync"

// FactoryCodes are the targets every chat starts with.
var FactoryCodes = []string{"UAH", "RUB", "USD", "BYN", "EUR", "TON"}

// Store is the per-chat enabled-currency set.
type Store interface {
	// Codes returns the enabled target codes for a chat, falling back
	// to the factory defaults for chats never seen before.
	Codes(chatID string) []string
	// Toggle flips one code on or off for a chat and reports whether it
	// is enabled afterwards.
	Toggle(chatID, code string) bool
}

// MemoryStore keeps settings in process memory. Suits single-instance
// deployments; swap in a persistent Store behind the same interface
// otherwise.
type MemoryStore struct {
	mu    sync.RWMutex
	chats map[string]map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{chats: make(map[string]map[string]bool)}
}

func (s *MemoryStore) Codes(chatID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enabled, ok := s.chats[chatID]
	if !ok {
		return append([]string(nil), FactoryCodes...)
	}
	codes := make([]string, 0, len(enabled))
	for _, code := range FactoryCodes {
		if enabled[code] {
			codes = append(codes, code)
		}
	}
	for code, on := range enabled {
		if on && !isFactory(code) {
			codes = append(codes, code)
		}
	}
	return codes
}

func (s *MemoryStore) Toggle(chatID, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled, ok := s.chats[chatID]
	if !ok {
		enabled = make(map[string]bool, len(FactoryCodes))
		for _, c := range FactoryCodes {
			enabled[c] = true
		}
		s.chats[chatID] = enabled
	}
	enabled[code] = !enabled[code]
	return enabled[code]
}

func isFactory(code string) bool {
	for _, c := range FactoryCodes {
		if c == code {
			return true
		}
	}
	return false
}
