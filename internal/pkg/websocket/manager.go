package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/jwt"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/models"
)

// ErrClientNotConnected is returned when notifying a user without a live socket
var ErrClientNotConnected = errors.New("client not connected")

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	return handleClient(client)
}

// authenticateClient reads the bearer token from the Authorization header,
// or from the token query parameter for browser clients
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	tokenString := c.QueryParam("token")
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		tokenString = parts[1]
	}
	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	claims, err := jwt.ValidateToken(tokenString, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token claims")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// AddClient registers a client, replacing an older connection of the same user
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient unregisters client if it is still the registered connection of its user
func (m *Manager) RemoveClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	if current, ok := m.clients[client.UserID]; ok && current == client {
		delete(m.clients, client.UserID)
	}
}

// GetClient returns a client by user ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// Count returns the number of connected clients
func (m *Manager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// SendMessage sends an event to a WebSocket client
func (m *Manager) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	return m.send(context.Background(), client, event, data)
}

func (m *Manager) send(ctx context.Context, client *models.WebSocketClient, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return ErrClientNotConnected
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return client.WriteJSONContext(ctx, models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error event to a WebSocket client
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends an event to a connected user before ctx expires
func (m *Manager) NotifyClient(ctx context.Context, userID string, event string, data interface{}) error {
	client, exists := m.GetClient(userID)
	if !exists {
		return ErrClientNotConnected
	}

	if err := m.send(ctx, client, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
		return err
	}
	return nil
}
