package store

import (
	"strings"
	"sync"
)

// Store keeps per-user conversation memory: everything said, and every menu
// choice taken.
type Store interface {
	RecordMessage(userID, text string)
	RecordChoice(userID, label string)
	History(userID string) string
	Choices(userID string) []string
}

type conversation struct {
	messages []string
	choices  []string
}

// MemoryStore holds conversations in process memory. Entries are created
// lazily on first write and live until the process exits.
type MemoryStore struct {
	mu sync.Mutex
	// maxMessages, when positive, evicts the oldest messages on append.
	maxMessages   int
	conversations map[string]*conversation
}

func NewMemoryStore(maxMessages int) *MemoryStore {
	return &MemoryStore{
		maxMessages:   maxMessages,
		conversations: make(map[string]*conversation),
	}
}

func (s *MemoryStore) RecordMessage(userID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.entry(userID)
	c.messages = append(c.messages, text)
	if s.maxMessages > 0 && len(c.messages) > s.maxMessages {
		c.messages = c.messages[len(c.messages)-s.maxMessages:]
	}
}

func (s *MemoryStore) RecordChoice(userID, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.entry(userID)
	c.choices = append(c.choices, label)
}

// History returns the user's messages space-joined in insertion order, or ""
// for an unknown user.
func (s *MemoryStore) History(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[userID]
	if !ok {
		return ""
	}
	return strings.Join(c.messages, " ")
}

func (s *MemoryStore) Choices(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[userID]
	if !ok {
		return nil
	}
	out := make([]string, len(c.choices))
	copy(out, c.choices)
	return out
}

// entry must be called with the mutex held.
func (s *MemoryStore) entry(userID string) *conversation {
	c, ok := s.conversations[userID]
	if !ok {
		c = &conversation{}
		s.conversations[userID] = c
	}
	return c
}
