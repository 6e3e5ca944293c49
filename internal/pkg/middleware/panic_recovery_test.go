package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.ZapLogger{Logger: zap.New(core)}, logs
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		userID     string
		wantType   string
		wantUser   string
	}{
		{name: "string panic", panicValue: "boom", wantType: "string", wantUser: "anonymous"},
		{name: "error panic", panicValue: errors.New("bad state"), wantType: "*errors.errorString", wantUser: "anonymous"},
		{name: "panic with user context", panicValue: "boom", userID: "driver-1", wantType: "string", wantUser: "driver-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := observedLogger()
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/actors/a1", nil)
			req.Header.Set("X-Request-ID", "req-123")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.userID != "" {
				c.Set("user_id", tt.userID)
			}

			handler := PanicRecoveryMiddleware(zl)(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			require.NotPanics(t, func() { _ = handler(c) })
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Internal Server Error", body["error"])

			entries := logs.FilterMessage("Panic recovered during request processing").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.wantType, fields["panic_type"])
			assert.Equal(t, tt.wantUser, fields["user_id"])
			assert.Equal(t, "/v1/actors/a1", fields["path"])
			assert.Contains(t, fields["stack_trace"], "goroutine")
		})
	}
}

func TestPanicRecoveryMiddleware_PassesThrough(t *testing.T) {
	zl, logs := observedLogger()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := PanicRecoveryMiddleware(zl)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, logs.Len())
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryMiddleware(nil) })
}
