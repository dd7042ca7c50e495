package dto

import (
	"time"

	"github.com/google/uuid"
)

// InboundFrame is one message received over the websocket. Type defaults to
// "message" when omitted.
type InboundFrame struct {
	Type    string `json:"type" validate:"omitempty,oneof=message clear"`
	Message string `json:"message"`
}

// Frame is one message sent to the client.
type Frame struct {
	Id        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewFrame(frameType, message string) *Frame {
	return &Frame{
		Id:        uuid.New(),
		Type:      frameType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

type HealthResponse struct {
	Status            string    `json:"status"`
	Message           string    `json:"message"`
	ActiveConnections int       `json:"active_connections"`
	Timestamp         time.Time `json:"timestamp"`
}

type StatsResponse struct {
	ActiveConnections  int       `json:"active_connections"`
	TotalConversations int       `json:"total_conversations"`
	IndexedChunks      int64     `json:"indexed_chunks"`
	Timestamp          time.Time `json:"timestamp"`
}
