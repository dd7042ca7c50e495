package bootstrap

import (
	"log"

	"portfolio-chat-be/internal/config"
	"portfolio-chat-be/internal/constant"
	"portfolio-chat-be/internal/controller"
	"portfolio-chat-be/internal/handler"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/repository"
	"portfolio-chat-be/internal/repository/memory"
	"portfolio-chat-be/internal/service"
	"portfolio-chat-be/internal/websocket"
	"portfolio-chat-be/pkg/embedding"
	llmopenai "portfolio-chat-be/pkg/llm/openai"
	"portfolio-chat-be/pkg/rag/prompt"
	"portfolio-chat-be/pkg/rag/retrieval"

	"gorm.io/gorm"
)

// Container wires every dependency once at process start; clients are
// injected explicitly, never shared through globals.
type Container struct {
	HealthController controller.IHealthController
	ChatHandler      *handler.ChatHandler
	Hub              *websocket.Hub
	Logger           logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Providers
	embeddingProvider := embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel)
	llmProvider := llmopenai.NewProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.ChatModel)
	sysLogger.Info("Bootstrap", "OpenAI providers configured", map[string]interface{}{
		"embedding_model": cfg.Ai.EmbeddingModel,
		"chat_model":      cfg.Ai.ChatModel,
	})

	// Knowledge base index
	chunkRepo := repository.NewProfileChunkRepository(db)

	// RAG pipeline
	gate := retrieval.NewGate(embeddingProvider, chunkRepo, retrieval.Config{
		TopK:      cfg.Ai.TopK,
		Threshold: cfg.Ai.RelevanceThreshold,
	})

	composer, err := prompt.NewComposer(constant.SystemPromptV1, constant.UserPromptTemplateV1)
	if err != nil {
		log.Fatalf("[FATAL] Failed to build prompt composer: %v", err)
	}

	// Sessions
	sessionRepo := memory.NewSessionRepository()

	chatService := service.NewChatService(
		sessionRepo,
		gate,
		composer,
		llmProvider,
		service.GenerationConfig{
			Temperature:    cfg.Ai.Temperature,
			MaxTokens:      cfg.Ai.MaxTokens,
			RequestTimeout: cfg.Ai.RequestTimeout,
		},
		sysLogger,
	)

	// WebSocket Hub
	hub := websocket.NewHub(sysLogger)

	return &Container{
		HealthController: controller.NewHealthController(hub, chatService, chunkRepo),
		ChatHandler:      handler.NewChatHandler(chatService, hub, sysLogger),
		Hub:              hub,
		Logger:           sysLogger,
	}
}
