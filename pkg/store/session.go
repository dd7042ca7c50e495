package store

import (
	"portfolio-chat-be/pkg/llm"
)

// MaxHistory bounds how many turns a session retains. Oldest turns are
// evicted first whenever an append would exceed the bound.
const MaxHistory = 10

// Session represents one live conversation, identified by the caller-supplied
// connection id. History lives only in memory and dies with the connection.
type Session struct {
	ID      string
	History []llm.Message
}

func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		History: []llm.Message{},
	}
}

// Append adds a turn, enforcing the FIFO bound.
func (s *Session) Append(role, content string) {
	s.History = append(s.History, llm.Message{Role: role, Content: content})
	if len(s.History) > MaxHistory {
		s.History = s.History[len(s.History)-MaxHistory:]
	}
}

// Clear empties the history without touching the session identity.
func (s *Session) Clear() {
	s.History = []llm.Message{}
}
