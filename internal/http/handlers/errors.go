package handlers

import (
	"errors"
	"net/http"

	"sleeperbus/internal/domain"
	"sleeperbus/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusFor maps a domain error to its HTTP status. A station id that is not
// on the route is bad input, not a missing resource.
func StatusFor(err error) int {
	switch {
	case domain.IsSeatUnavailable(err), domain.IsValidation(err), errors.Is(err, domain.ErrUnknownStation):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError maps domain errors to HTTP responses. Internal errors
// are logged and never echoed to the client.
func RespondDomainError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error("request failed",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
		RespondError(c, status, "Internal server error")
		return
	}
	RespondError(c, status, err.Error())
}
