package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/middleware"
	"github.com/piresc/pathclear/internal/pkg/models"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	"github.com/piresc/pathclear/internal/utils"
	"github.com/piresc/pathclear/services/emergency"
	"github.com/piresc/pathclear/services/location"
)

// EmergencyHandler handles HTTP requests for fixes and emergency rides
type EmergencyHandler struct {
	emergencyUC emergency.EmergencyUC
	locationUC  location.LocationUC
}

// NewEmergencyHandler creates a new emergency HTTP handler
func NewEmergencyHandler(emergencyUC emergency.EmergencyUC, locationUC location.LocationUC) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyUC: emergencyUC,
		locationUC:  locationUC,
	}
}

// SubmitLocation records a fix of the authenticated actor. A driver fix
// carrying a ride_id also runs the alert cycle of that ride.
func (h *EmergencyHandler) SubmitLocation(c echo.Context) error {
	actorID := middleware.UserID(c)
	role := middleware.UserRole(c)
	if actorID == "" || !role.Valid() {
		return utils.UnauthorizedResponse(c, "missing user credentials")
	}

	var req models.WSLocationUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ctx := c.Request().Context()
	actor, err := h.locationUC.ApplyFix(ctx, actorID, role, req.RawFix)
	if err != nil {
		if !models.IsValidationError(err) {
			logger.ErrorCtx(ctx, "Failed to apply fix",
				logger.String("actor_id", actorID),
				logger.Err(err))
			middleware.NoticeError(c, err)
		}
		return utils.DomainErrorResponse(c, err)
	}

	resp := models.LocationResponse{Actor: actor}
	if role == models.RoleDriver && req.RideID != "" {
		middleware.SetRideID(c, req.RideID)
		result := h.emergencyUC.OnDriverLocation(ctx, models.NewDriverLocation(req.RideID, req.RawFix, actor))
		middleware.AddAttribute(c, "riders_notified", result.Notified)
		resp.Alert = &result
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location recorded", resp)
}

// GetEpisode returns the emergency episode of a ride
func (h *EmergencyHandler) GetEpisode(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "ride id is required")
	}

	episode, err := h.emergencyUC.GetEpisode(c.Request().Context(), rideID)
	if err != nil {
		logger.Warn("Failed to get emergency episode",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Emergency episode retrieved", episode)
}

// RegisterRoutes mounts the emergency endpoints on g. Fix submission is
// guarded by fixLimiter.
func (h *EmergencyHandler) RegisterRoutes(g *echo.Group, fixLimiter echo.MiddlewareFunc) {
	g.POST("/locations", nrpkg.TraceHandler("Emergency.SubmitLocation", h.SubmitLocation), fixLimiter)
	g.GET("/emergency/rides/:id", nrpkg.TraceHandler("Emergency.GetEpisode", h.GetEpisode))
}
