package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	assert.Nil(t, InitNewRelic(&models.Config{}))
	assert.Nil(t, InitNewRelic(&models.Config{NewRelic: models.NewRelicConfig{Enabled: true}}))
}

func TestHelpers_WithoutTransaction(t *testing.T) {
	ctx := context.Background()
	errPublish := errors.New("publish failed")

	assert.ErrorIs(t, WithSegment(ctx, "seg", func() error { return errPublish }), errPublish)
	assert.ErrorIs(t, WithMessageSegment(ctx, "NSQ", "topic", func() error { return errPublish }), errPublish)

	v, err := WithSegmentAndReturn(ctx, "seg", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	bgCtx, end := StartBackgroundTransaction(ctx, nil, "job")
	end()
	assert.Equal(t, ctx, bgCtx)
}

func TestTraceHandler_WithoutTransaction(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := TraceHandler("GET /", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
