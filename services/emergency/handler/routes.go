package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pathclear/internal/pkg/middleware"
	"github.com/piresc/pathclear/internal/pkg/models"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	"github.com/piresc/pathclear/services/emergency/handler/http"
	"github.com/piresc/pathclear/services/emergency/handler/nats"
	"github.com/piresc/pathclear/services/emergency/handler/websocket"
	locationhttp "github.com/piresc/pathclear/services/location/handler/http"
)

// fixes accepted per user per second over HTTP
const httpFixesPerSecond = 5

// Handler coordinates all protocol handlers for the emergency service
type Handler struct {
	emergencyHandler *http.EmergencyHandler
	locationHandler  *locationhttp.LocationHandler
	wsManager        *websocket.WebSocketManager
	natsHandler      *nats.NatsHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	emergencyHandler *http.EmergencyHandler,
	locationHandler *locationhttp.LocationHandler,
	wsManager *websocket.WebSocketManager,
	natsHandler *nats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		emergencyHandler: emergencyHandler,
		locationHandler:  locationHandler,
		wsManager:        wsManager,
		natsHandler:      natsHandler,
		cfg:              cfg,
	}
}

// InitConsumers starts the NATS consumers
func (h *Handler) InitConsumers() error {
	return h.natsHandler.InitNATSConsumers()
}

// StopConsumers removes the NATS subscriptions
func (h *Handler) StopConsumers() {
	h.natsHandler.Unsubscribe()
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo, redisClient *redis.Client) {
	// WebSocket authenticates its own handshake
	e.GET("/ws", nrpkg.TraceHandler("WebSocket.Connect", h.wsManager.HandleWebSocket))

	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	h.emergencyHandler.RegisterRoutes(v1, middleware.UserRateLimiter(httpFixesPerSecond, time.Second, redisClient))
	h.locationHandler.RegisterRoutes(v1)
}
