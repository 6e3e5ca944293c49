package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/metrics"
	"github.com/piresc/pathclear/internal/pkg/models"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	pkgws "github.com/piresc/pathclear/internal/pkg/websocket"
	"github.com/piresc/pathclear/services/emergency"
	"github.com/piresc/pathclear/services/location"
	"golang.org/x/time/rate"
)

// WebSocketManager serves the live connections of drivers and riders
type WebSocketManager struct {
	emergencyUC emergency.EmergencyUC
	locationUC  location.LocationUC
	manager     *pkgws.Manager
	cfg         models.LocationConfig
	nrApp       *newrelic.Application
}

// NewWebSocketManager creates a new WebSocket manager for the emergency service
func NewWebSocketManager(
	emergencyUC emergency.EmergencyUC,
	locationUC location.LocationUC,
	manager *pkgws.Manager,
	cfg models.LocationConfig,
	nrApp *newrelic.Application,
) *WebSocketManager {
	return &WebSocketManager{
		emergencyUC: emergencyUC,
		locationUC:  locationUC,
		manager:     manager,
		cfg:         cfg,
		nrApp:       nrApp,
	}
}

// HandleWebSocket handles new WebSocket connections
func (m *WebSocketManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.handleClientConnection)
}

// handleClientConnection manages the client's WebSocket connection
func (m *WebSocketManager) handleClientConnection(client *models.WebSocketClient) error {
	m.manager.AddClient(client)
	metrics.ActiveWebSockets.Inc()
	defer func() {
		m.manager.RemoveClient(client)
		metrics.ActiveWebSockets.Dec()
	}()

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", string(client.Role)))

	return m.messageLoop(client)
}

// newLimiter bounds how many fixes one connection may push
func (m *WebSocketManager) newLimiter() *rate.Limiter {
	perSecond := m.cfg.FixesPerSecond
	if perSecond <= 0 {
		perSecond = 5
	}
	burst := m.cfg.FixBurst
	if burst <= 0 {
		burst = 10
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// messageLoop handles incoming WebSocket messages
func (m *WebSocketManager) messageLoop(client *models.WebSocketClient) error {
	limiter := m.newLimiter()
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			logger.Info("WebSocket client disconnected", logger.String("user_id", client.UserID))
			return nil
		}

		if err := m.handleMessage(client, limiter, msg); err != nil {
			logger.Error("Error handling message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (m *WebSocketManager) handleMessage(client *models.WebSocketClient, limiter *rate.Limiter, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
	}

	ctx, end := nrpkg.StartBackgroundTransaction(context.Background(), m.nrApp, "ws/"+wsMsg.Event)
	defer end()

	switch wsMsg.Event {
	case constants.EventLocationUpdate:
		if !limiter.Allow() {
			return m.manager.SendErrorMessage(client, constants.ErrorRateLimitExceeded, "Too many location updates")
		}
		return m.handleLocationUpdate(ctx, client, wsMsg.Data)
	case constants.EventPresenceUpdate:
		return m.handlePresenceUpdate(ctx, client, wsMsg.Data)
	case constants.EventPing:
		return m.manager.SendMessage(client, constants.EventPong, struct{}{})
	default:
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
