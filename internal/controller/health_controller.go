package controller

import (
	"time"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/repository"
	"portfolio-chat-be/internal/service"
	internalWS "portfolio-chat-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	GetHealth(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type healthController struct {
	hub     *internalWS.Hub
	service service.IChatService
	chunks  repository.ProfileChunkRepository
}

func NewHealthController(hub *internalWS.Hub, svc service.IChatService, chunks repository.ProfileChunkRepository) IHealthController {
	return &healthController{
		hub:     hub,
		service: svc,
		chunks:  chunks,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.GetHealth)
	r.Get("/stats", c.GetStats)
}

func (c *healthController) GetHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:            "online",
		Message:           "Michael's Portfolio RAG API with WebSocket is running",
		ActiveConnections: c.hub.Count(),
		Timestamp:         time.Now(),
	})
}

func (c *healthController) GetStats(ctx *fiber.Ctx) error {
	indexed, err := c.chunks.Count(ctx.Context())
	if err != nil {
		// Stats stay available even if the index is unreachable.
		indexed = -1
	}
	return ctx.JSON(dto.StatsResponse{
		ActiveConnections:  c.hub.Count(),
		TotalConversations: c.service.TrackedConversations(),
		IndexedChunks:      indexed,
		Timestamp:          time.Now(),
	})
}
