package handlers

import (
	"net/http"
	"time"

	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/gin-gonic/gin"
)

// ItineraryHandler handles HTTP requests for days and activities within a
// trip's itinerary.
type ItineraryHandler struct {
	itinerary ItineraryService
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(itinerary ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{itinerary: itinerary}
}

// SaveDayRequest represents the request body for creating or replacing a
// day. Supplying an ID replaces that day; omitting it creates a new one.
type SaveDayRequest struct {
	ID   string    `json:"id,omitempty"`
	Date time.Time `json:"date" binding:"required"`
}

// SaveActivityRequest represents the request body for creating or replacing
// an activity. Times are wall-clock "HH:MM" strings; a missing endTime marks
// the activity open-ended.
type SaveActivityRequest struct {
	ID          string           `json:"id,omitempty"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description,omitempty"`
	Location    string           `json:"location,omitempty"`
	StartTime   types.ClockTime  `json:"startTime"`
	EndTime     *types.ClockTime `json:"endTime,omitempty"`
}

// SaveDayHandler upserts a day into the trip and returns the renumbered,
// hydrated trip aggregate.
func (h *ItineraryHandler) SaveDayHandler(c *gin.Context) {
	tripID := c.Param("id")
	userID := getUserIDFromContext(c)

	var req SaveDayRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	day := types.Day{
		ID:     req.ID,
		TripID: tripID,
		Date:   req.Date,
	}
	trip, err := h.itinerary.SaveDay(c.Request.Context(), userID, day)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// DeleteDayHandler deletes a day (its activities cascade) and returns the
// renumbered trip aggregate.
func (h *ItineraryHandler) DeleteDayHandler(c *gin.Context) {
	tripID := c.Param("id")
	dayID := c.Param("dayId")
	userID := getUserIDFromContext(c)

	trip, err := h.itinerary.DeleteDay(c.Request.Context(), userID, tripID, dayID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// SaveActivityHandler upserts an activity into a day after overlap
// screening and returns the hydrated day. Overlaps yield 409.
func (h *ItineraryHandler) SaveActivityHandler(c *gin.Context) {
	dayID := c.Param("dayId")
	userID := getUserIDFromContext(c)

	var req SaveActivityRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	activity := types.Activity{
		ID:          req.ID,
		DayID:       dayID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	day, err := h.itinerary.SaveActivity(c.Request.Context(), userID, activity)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, day)
}

// DeleteActivityHandler deletes one activity and returns the day with the
// remaining ones.
func (h *ItineraryHandler) DeleteActivityHandler(c *gin.Context) {
	dayID := c.Param("dayId")
	activityID := c.Param("activityId")
	userID := getUserIDFromContext(c)

	day, err := h.itinerary.DeleteActivity(c.Request.Context(), userID, dayID, activityID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, day)
}
