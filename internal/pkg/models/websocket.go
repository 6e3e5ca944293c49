package models

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSLocationUpdate is the payload of a location_update event
type WSLocationUpdate struct {
	RideID string `json:"ride_id,omitempty"`
	RawFix
}

// WSLocationAck acknowledges an accepted fix
type WSLocationAck struct {
	Bearing  float64 `json:"bearing"`
	SpeedKmh float64 `json:"speed_kmh"`
}

// WebSocketClaims are the JWT claims of a socket session
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// WriteWait bounds a single write to a socket
const WriteWait = 5 * time.Second

// WebSocketClient is one authenticated socket connection.
// gorilla connections allow a single concurrent writer, hence writeMu.
type WebSocketClient struct {
	UserID  string
	Role    Role
	Conn    *websocket.Conn
	writeMu sync.Mutex
}

// WriteJSON serialises writes to the underlying connection
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	return c.WriteJSONContext(context.Background(), v)
}

// WriteJSONContext writes v before ctx expires. A write that completes after
// the ctx deadline reports ctx.Err().
func (c *WebSocketClient) WriteJSONContext(ctx context.Context, v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Conn.SetWriteDeadline(WriteDeadline(ctx, time.Now())); err != nil {
		return err
	}
	err := c.Conn.WriteJSON(v)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// WriteDeadline is the earlier of now+WriteWait and the ctx deadline
func WriteDeadline(ctx context.Context, now time.Time) time.Time {
	deadline := now.Add(WriteWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		return d
	}
	return deadline
}
