package handler

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"portfolio-chat-be/internal/constant"
	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/service"
	internalWS "portfolio-chat-be/internal/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const pongWait = 60 * time.Second

// ChatHandler owns the websocket chat endpoint: upgrade, session lifecycle
// and the per-connection read loop.
type ChatHandler struct {
	service  service.IChatService
	hub      *internalWS.Hub
	validate *validator.Validate
	logger   logger.ILogger
}

func NewChatHandler(svc service.IChatService, hub *internalWS.Hub, log logger.ILogger) *ChatHandler {
	return &ChatHandler{
		service:  svc,
		hub:      hub,
		validate: validator.New(),
		logger:   log,
	}
}

func (h *ChatHandler) RegisterRoutes(app fiber.Router) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/:client_id", websocket.New(h.serve))
}

// serve runs for the lifetime of one connection. The read loop processes
// frames strictly in arrival order, so each session is serial by
// construction.
func (h *ChatHandler) serve(conn *websocket.Conn) {
	clientID := strings.TrimSpace(conn.Params("client_id"))
	if clientID == "" {
		conn.Close()
		return
	}

	client := internalWS.NewClient(h.hub, conn, clientID)

	h.hub.Register(client)
	h.service.Connect(clientID)

	defer func() {
		// A stale connection that was replaced by a re-connect must not
		// tear down the replacement's session.
		if h.hub.Unregister(client) {
			h.service.Disconnect(clientID)
		}
	}()

	go client.WritePump()

	client.Deliver(dto.NewFrame(constant.FrameTypeSystem, constant.WelcomeMessage))

	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("ChatHandler", "Read error", map[string]interface{}{
					"client_id": clientID,
					"error":     err.Error(),
				})
			}
			break
		}

		var frame dto.InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.logger.Warn("ChatHandler", "Malformed frame", map[string]interface{}{
				"client_id": clientID,
				"error":     err.Error(),
			})
			continue
		}
		if err := h.validate.Struct(&frame); err != nil {
			h.logger.Warn("ChatHandler", "Invalid frame", map[string]interface{}{
				"client_id": clientID,
				"error":     err.Error(),
			})
			continue
		}

		h.service.HandleFrame(context.Background(), clientID, frame, client)
	}
}
