package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_StartAndShutdownOnCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	port := freePort(t)
	gs := NewGracefulServer(e, logger.NewNopLogger(), port, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGracefulServer_StartFailsOnBusyPort(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, logger.NewNopLogger(), l.Addr().(*net.TCPAddr).Port, time.Second)

	err = gs.Start(context.Background())
	assert.Error(t, err)
}

func TestShutdownManager_RunsAllAndJoinsErrors(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var order []string
	errNATS := errors.New("drain timeout")

	sm.Register("coordinator", func(context.Context) error { order = append(order, "coordinator"); return nil })
	sm.Register("nats", func(context.Context) error { order = append(order, "nats"); return errNATS })
	sm.Register("redis", func(context.Context) error { order = append(order, "redis"); return nil })

	err := sm.Shutdown(context.Background())
	assert.ErrorIs(t, err, errNATS)
	assert.Contains(t, err.Error(), "nats")
	assert.Equal(t, []string{"coordinator", "nats", "redis"}, order)
}

func TestShutdownManager_Empty(t *testing.T) {
	assert.NoError(t, NewShutdownManager(logger.NewNopLogger()).Shutdown(context.Background()))
}
