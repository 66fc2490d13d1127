package handlers

import (
	"net/http"
	"time"

	apperrors "github.com/flyaway-travel/flyaway-backend/errors"
	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/flyaway-travel/flyaway-backend/middleware"
	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/gin-gonic/gin"
)

// TripHandler handles HTTP requests for trip aggregates.
type TripHandler struct {
	trips TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(trips TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

// CreateTripRequest represents the request body for creating a trip.
type CreateTripRequest struct {
	Name        string    `json:"name" binding:"required"`
	Destination string    `json:"destination" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	ImageURLs   []string  `json:"imageUrls,omitempty"`
}

// CreateTripHandler creates a trip and its initial day sequence.
func (h *TripHandler) CreateTripHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req CreateTripRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	userID := getUserIDFromContext(c)
	if userID == "" {
		log.Errorw("No user ID found in context for CreateTripHandler")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated user"})
		return
	}

	trip := &types.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ImageURLs:   req.ImageURLs,
	}
	created, err := h.trips.CreateTrip(c.Request.Context(), userID, trip)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetTripHandler returns the hydrated trip aggregate.
func (h *TripHandler) GetTripHandler(c *gin.Context) {
	tripID := c.Param("id")
	userID := getUserIDFromContext(c)

	trip, err := h.trips.GetTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// ListTripsHandler lists the authenticated user's trip headers.
func (h *TripHandler) ListTripsHandler(c *gin.Context) {
	userID := getUserIDFromContext(c)

	trips, err := h.trips.ListUserTrips(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// UpdateTripHandler applies a partial trip header update. Date-range changes
// reshape the day sequence.
func (h *TripHandler) UpdateTripHandler(c *gin.Context) {
	tripID := c.Param("id")
	userID := getUserIDFromContext(c)

	var update types.TripUpdate
	if !bindJSONOrError(c, &update) {
		return
	}

	trip, err := h.trips.UpdateTrip(c.Request.Context(), tripID, userID, update)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// DeleteTripHandler deletes a trip and everything under it.
func (h *TripHandler) DeleteTripHandler(c *gin.Context) {
	tripID := c.Param("id")
	userID := getUserIDFromContext(c)

	if err := h.trips.DeleteTrip(c.Request.Context(), tripID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// getUserIDFromContext extracts the authenticated user ID from the gin
// context. Returns empty string if not found.
func getUserIDFromContext(c *gin.Context) string {
	return c.GetString(string(middleware.UserIDKey))
}

// bindJSONOrError binds the JSON request body and registers a validation
// error when binding fails. Returns true if binding succeeded.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		c.Abort()
		return false
	}
	return true
}

// handleServiceError registers a service error for the error handler
// middleware to render.
func handleServiceError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
