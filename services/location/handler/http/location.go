package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/middleware"
	"github.com/piresc/pathclear/internal/pkg/models"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	"github.com/piresc/pathclear/internal/utils"
	"github.com/piresc/pathclear/services/location"
)

// defaultHistoryWindow is used when a history request has no start
const defaultHistoryWindow = time.Hour

// LocationHandler handles HTTP requests for tracked actors
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// GetActor returns the tracked state of an actor
func (h *LocationHandler) GetActor(c echo.Context) error {
	actorID := c.Param("id")
	if actorID == "" {
		return utils.BadRequestResponse(c, "actor id is required")
	}

	actor, err := h.locationUC.GetActor(c.Request().Context(), actorID)
	if err != nil {
		logger.Warn("Failed to get actor",
			logger.String("actor_id", actorID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Actor retrieved", actor)
}

// GetHistory lists the stored fixes of an actor between ?start and ?end (RFC3339).
// Without parameters the last hour is returned.
func (h *LocationHandler) GetHistory(c echo.Context) error {
	actorID := c.Param("id")
	if actorID == "" {
		return utils.BadRequestResponse(c, "actor id is required")
	}

	end := models.Now()
	if raw := c.QueryParam("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid end time")
		}
		end = parsed
	}
	start := end.Add(-defaultHistoryWindow)
	if raw := c.QueryParam("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid start time")
		}
		start = parsed
	}
	if end.Before(start) {
		return utils.BadRequestResponse(c, "end must not be before start")
	}

	entries, err := h.locationUC.GetLocationHistory(c.Request().Context(), actorID, start, end)
	if err != nil {
		logger.Error("Failed to get location history",
			logger.String("actor_id", actorID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location history retrieved", entries)
}

// SetPresence lets an authenticated actor go online or offline for alerts
func (h *LocationHandler) SetPresence(c echo.Context) error {
	actorID := c.Param("id")
	if actorID == "" {
		return utils.BadRequestResponse(c, "actor id is required")
	}
	if actorID != middleware.UserID(c) {
		return utils.ForbiddenResponse(c, "cannot change presence of another actor")
	}

	var req models.PresenceUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.locationUC.SetPresence(c.Request().Context(), actorID, middleware.UserRole(c), req); err != nil {
		logger.Error("Failed to set presence",
			logger.String("actor_id", actorID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Presence updated", req)
}

// FindNearby lists online actors around ?lat,?lng within ?radius meters
func (h *LocationHandler) FindNearby(c echo.Context) error {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	radiusStr := c.QueryParam("radius")

	if latStr == "" || lngStr == "" || radiusStr == "" {
		return utils.BadRequestResponse(c, "lat, lng, and radius are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil || radius <= 0 {
		return utils.BadRequestResponse(c, "invalid radius")
	}

	role := models.Role(c.QueryParam("role"))
	if role != "" && !role.Valid() {
		return utils.BadRequestResponse(c, "invalid role")
	}

	nrpkg.FromEchoContext(c).AddAttribute("radius_meters", radius)

	filter := models.ProximityFilter{
		Role:       role,
		OnlineOnly: true,
		ExcludeID:  middleware.UserID(c),
	}
	actors, err := h.locationUC.FindNearby(c.Request().Context(), models.Position{Latitude: lat, Longitude: lng}, radius, filter)
	if err != nil {
		logger.Error("Failed to find nearby actors", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby actors found", actors)
}

// RegisterRoutes mounts the actor endpoints on g
func (h *LocationHandler) RegisterRoutes(g *echo.Group) {
	actors := g.Group("/actors")
	actors.GET("/nearby", h.FindNearby)
	actors.GET("/:id", h.GetActor)
	actors.GET("/:id/history", h.GetHistory)
	actors.PUT("/:id/presence", h.SetPresence)
}
