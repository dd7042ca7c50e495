package service

import (
	"context"
	"strings"
	"time"

	"portfolio-chat-be/internal/constant"
	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/repository/memory"
	"portfolio-chat-be/pkg/llm"
	"portfolio-chat-be/pkg/rag/prompt"
	"portfolio-chat-be/pkg/store"
)

// Retriever produces the context block for a query (or the sentinel).
// Satisfied by retrieval.Gate; faked in tests.
type Retriever interface {
	Retrieve(ctx context.Context, query string) (string, error)
}

// Sender delivers outbound frames to one session's connection. Satisfied by
// the websocket client.
type Sender interface {
	Deliver(frame *dto.Frame)
}

// IChatService is the session manager: it owns the live sessions, routes
// inbound frames through the RAG pipeline and is the sole boundary that
// converts pipeline failures into the generic user-visible error frame.
type IChatService interface {
	Connect(sessionID string)
	Disconnect(sessionID string)
	HandleFrame(ctx context.Context, sessionID string, frame dto.InboundFrame, sender Sender)
	TrackedConversations() int
}

// GenerationConfig carries the fixed, non-user-controllable generation
// parameters.
type GenerationConfig struct {
	Temperature    float64
	MaxTokens      int
	RequestTimeout time.Duration
}

type chatService struct {
	sessions  *memory.SessionRepository
	retriever Retriever
	composer  *prompt.Composer
	generator llm.Provider
	genConfig GenerationConfig
	logger    logger.ILogger
}

func NewChatService(
	sessions *memory.SessionRepository,
	retriever Retriever,
	composer *prompt.Composer,
	generator llm.Provider,
	genConfig GenerationConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions:  sessions,
		retriever: retriever,
		composer:  composer,
		generator: generator,
		genConfig: genConfig,
		logger:    log,
	}
}

// Connect initializes an empty session. Re-connecting with the same id
// replaces any existing session, never merges.
func (cs *chatService) Connect(sessionID string) {
	cs.sessions.Save(store.NewSession(sessionID))
	cs.logger.Info("ChatService", "Session connected", map[string]interface{}{
		"session_id": sessionID,
	})
}

// Disconnect discards the session and its history immediately.
func (cs *chatService) Disconnect(sessionID string) {
	cs.sessions.Delete(sessionID)
	cs.logger.Info("ChatService", "Session disconnected", map[string]interface{}{
		"session_id": sessionID,
	})
}

func (cs *chatService) TrackedConversations() int {
	return cs.sessions.Count()
}

// HandleFrame processes one inbound frame. Frames for a given session arrive
// from a single read loop, so processing is inherently serial per session.
func (cs *chatService) HandleFrame(ctx context.Context, sessionID string, frame dto.InboundFrame, sender Sender) {
	if frame.Type == constant.FrameTypeClear {
		cs.clearHistory(sessionID, sender)
		return
	}

	text := strings.TrimSpace(frame.Message)
	if text == "" {
		// Ignored: no side effects, no response.
		return
	}

	session, found := cs.sessions.Get(sessionID)
	if !found {
		// The idle guard may have evicted a long-quiet session; start fresh.
		session = store.NewSession(sessionID)
	}

	session.Append(constant.ChatMessageRoleUser, frame.Message)
	cs.sessions.Save(session)

	cs.logger.Info("ChatService", "Message received", map[string]interface{}{
		"session_id": sessionID,
		"preview":    truncate(text, 50),
	})

	sender.Deliver(dto.NewFrame(constant.FrameTypeTyping, ""))

	// History snapshot includes the just-appended user turn; the composed
	// user message only carries context + query, so the turn is not
	// duplicated in the final prompt body.
	history := make([]llm.Message, len(session.History))
	copy(history, session.History)

	reply, err := cs.runPipeline(ctx, text, history)
	if err != nil {
		cs.logger.Error("ChatService", "Pipeline failed", map[string]interface{}{
			"session_id": sessionID,
			"input":      truncate(text, 50),
			"error":      err.Error(),
		})
		sender.Deliver(dto.NewFrame(constant.FrameTypeError, constant.GenericErrorMessage))
		return
	}

	// History is only committed after a successful response.
	session.Append(constant.ChatMessageRoleAssistant, reply)
	cs.sessions.Save(session)

	sender.Deliver(dto.NewFrame(constant.FrameTypeMessage, reply))
}

func (cs *chatService) clearHistory(sessionID string, sender Sender) {
	session, found := cs.sessions.Get(sessionID)
	if !found {
		session = store.NewSession(sessionID)
	}
	session.Clear()
	cs.sessions.Save(session)

	sender.Deliver(dto.NewFrame(constant.FrameTypeSystem, constant.HistoryClearedMessage))
}

// runPipeline executes retrieve -> compose -> generate under the request
// timeout. History passed to the composer is the pre-snapshot slice; the
// composer takes its own trailing window.
func (cs *chatService) runPipeline(ctx context.Context, query string, history []llm.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cs.genConfig.RequestTimeout)
	defer cancel()

	contextBlock, err := cs.retriever.Retrieve(ctx, query)
	if err != nil {
		return "", err
	}

	messages := cs.composer.Compose(query, contextBlock, history)

	return cs.generator.Chat(ctx, messages,
		llm.WithTemperature(cs.genConfig.Temperature),
		llm.WithMaxTokens(cs.genConfig.MaxTokens),
	)
}

// truncate shortens a log preview to n characters without splitting a
// multibyte rune; queries may be Korean or Russian.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
