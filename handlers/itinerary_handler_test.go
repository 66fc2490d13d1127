package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	apperrors "github.com/flyaway-travel/flyaway-backend/errors"
	"github.com/flyaway-travel/flyaway-backend/handlers"
	"github.com/flyaway-travel/flyaway-backend/middleware"
	"github.com/flyaway-travel/flyaway-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupItineraryRouter(svc handlers.ItineraryService) *gin.Engine {
	h := handlers.NewItineraryHandler(svc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1 := r.Group("/v1", stubAuth(testUserID))
	v1.POST("/trips/:id/days", h.SaveDayHandler)
	v1.DELETE("/trips/:id/days/:dayId", h.DeleteDayHandler)
	v1.POST("/days/:dayId/activities", h.SaveActivityHandler)
	v1.DELETE("/days/:dayId/activities/:activityId", h.DeleteActivityHandler)
	return r
}

func TestSaveDayHandler_ReturnsRenumberedTrip(t *testing.T) {
	svc := new(MockItineraryService)
	trip := &types.Trip{
		ID: "trip-1", OwnerID: testUserID,
		Days: []types.Day{
			{ID: "day-new", TripID: "trip-1", DayNumber: 1},
			{ID: "day-old", TripID: "trip-1", DayNumber: 2},
		},
	}
	svc.On("SaveDay", mock.Anything, testUserID,
		mock.MatchedBy(func(d types.Day) bool {
			return d.TripID == "trip-1" && d.ID == ""
		})).
		Return(trip, nil)

	w := jsonRequest(t, setupItineraryRouter(svc), http.MethodPost, "/v1/trips/trip-1/days", gin.H{
		"date": "2024-06-01T00:00:00Z",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var got types.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Days, 2)
}

func TestSaveDayHandler_MissingDate(t *testing.T) {
	svc := new(MockItineraryService)

	w := jsonRequest(t, setupItineraryRouter(svc), http.MethodPost, "/v1/trips/trip-1/days", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SaveDay", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteDayHandler(t *testing.T) {
	svc := new(MockItineraryService)
	trip := &types.Trip{ID: "trip-1", OwnerID: testUserID, Days: []types.Day{}}
	svc.On("DeleteDay", mock.Anything, testUserID, "trip-1", "day-1").Return(trip, nil)

	w := jsonRequest(t, setupItineraryRouter(svc), http.MethodDelete, "/v1/trips/trip-1/days/day-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestSaveActivityHandler_Created(t *testing.T) {
	svc := new(MockItineraryService)
	end := types.NewClockTime(11, 0)
	day := &types.Day{
		ID: "day-1", TripID: "trip-1", DayNumber: 1,
		Activities: []types.Activity{
			{ID: "act-1", DayID: "day-1", Name: "Museum", StartTime: types.NewClockTime(10, 0), EndTime: &end},
		},
	}
	svc.On("SaveActivity", mock.Anything, testUserID,
		mock.MatchedBy(func(a types.Activity) bool {
			return a.DayID == "day-1" && a.Name == "Museum" &&
				a.StartTime == types.NewClockTime(10, 0) &&
				a.EndTime != nil && *a.EndTime == end
		})).
		Return(day, nil)

	w := jsonRequest(t, setupItineraryRouter(svc), http.MethodPost, "/v1/days/day-1/activities", gin.H{
		"name":      "Museum",
		"startTime": "10:00",
		"endTime":   "11:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var got types.Day
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Activities, 1)
	assert.Equal(t, "10:00", got.Activities[0].StartTime.String())
}

func TestSaveActivityHandler_OpenEnded(t *testing.T) {
	svc := new(MockItineraryService)
	day := &types.Day{ID: "day-1", TripID: "trip-1", DayNumber: 1}
	svc.On("SaveActivity", mock.Anything, testUserID,
		mock.MatchedBy(func(a types.Activity) bool {
			return a.EndTime == nil
		})).
		Return(day, nil)

	w := jsonRequest(t, setupItineraryRouter(svc), http.MethodPost, "/v1/days/day-1/activities", gin.H{
		"name":      "Evening stroll",
		"startTime": "19:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestSaveActivityHandler_Conflict(t *testing.T) {
	svc := new(MockItineraryService)
	svc.On("SaveActivity", mock.Anything, testUserID, mock.AnythingOfType("types.Activity")).
		Return(nil, apperrors.TimeConflict("day-1", "range 09:30-10:30 overlaps an existing activity"))

	w := jsonRequest(t, setupItineraryRouter(svc), http.MethodPost, "/v1/days/day-1/activities", gin.H{
		"name":      "Walking tour",
		"startTime": "09:30",
		"endTime":   "10:30",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ACTIVITY_TIME_CONFLICT")
}

func TestSaveActivityHandler_BadClockTime(t *testing.T) {
	svc := new(MockItineraryService)

	w := jsonRequest(t, setupItineraryRouter(svc), http.MethodPost, "/v1/days/day-1/activities", gin.H{
		"name":      "Museum",
		"startTime": "25:99",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SaveActivity", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteActivityHandler(t *testing.T) {
	svc := new(MockItineraryService)
	day := &types.Day{ID: "day-1", TripID: "trip-1", DayNumber: 1, Activities: []types.Activity{}}
	svc.On("DeleteActivity", mock.Anything, testUserID, "day-1", "act-1").Return(day, nil)

	w := jsonRequest(t, setupItineraryRouter(svc), http.MethodDelete, "/v1/days/day-1/activities/act-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
