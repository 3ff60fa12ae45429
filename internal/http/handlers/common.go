package handlers

import (
	"net/http"

	"sleeperbus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard failure envelope with request_id included.
func RespondError(c *gin.Context, status int, message string) {
	payload := gin.H{
		"success": false,
		"message": message,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "Request body required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return false
	}
	return true
}
