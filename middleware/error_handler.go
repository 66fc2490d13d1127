package middleware

import (
	"net/http"

	apperrors "github.com/flyaway-travel/flyaway-backend/errors"
	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into structured
// JSON responses. Handlers register errors with c.Error and abort; the last
// error wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			log.Warnw("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", statusCode,
				"error_type", appError.Type,
				"error_message", appError.Message,
				"error_detail", appError.Detail,
				"request_id", c.GetString(string(RequestIDKey)))

			response := gin.H{
				"type":    string(appError.Type),
				"message": appError.Message,
			}
			if appError.Detail != "" && (gin.IsDebugging() ||
				appError.Type == apperrors.ValidationError ||
				appError.Type == apperrors.TimeConflictError ||
				appError.Type == apperrors.NotFoundError) {
				response["details"] = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Warnw("Request binding error",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", err)

			response := gin.H{
				"type":    string(apperrors.ValidationError),
				"message": "Failed to bind request",
			}
			if gin.IsDebugging() {
				response["details"] = err.Error()
			}
			c.JSON(http.StatusBadRequest, response)
			return
		}

		log.Errorw("Unexpected server error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
			"request_id", c.GetString(string(RequestIDKey)))

		c.JSON(http.StatusInternalServerError, gin.H{
			"type":    string(apperrors.ServerError),
			"message": "Internal server error",
		})
	}
}
