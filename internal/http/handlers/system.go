package handlers

import (
	"context"
	"net/http"
	"time"

	"sleeperbus/internal/http/middleware"
	"sleeperbus/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handlers) Health(c *gin.Context) {
	journal := "disabled"
	if h.Journal != nil {
		journal = "enabled"
	}
	respondData(c, http.StatusOK, gin.H{"status": "ok", "journal": journal})
}

// DBCheck reports journal row counts per status.
func (h *Handlers) DBCheck(c *gin.Context) {
	if h.Journal == nil {
		RespondError(c, http.StatusServiceUnavailable, "Booking journal not configured")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	counts, err := h.Journal.Count(ctx)
	if err != nil {
		utils.GetLogger().Error("journal count failed",
			zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Journal query failed")
		return
	}
	respondData(c, http.StatusOK, gin.H{"journal": counts})
}

func (h *Handlers) Routes(c *gin.Context) {
	if h.engine == nil {
		RespondError(c, http.StatusServiceUnavailable, "Router not ready")
		return
	}
	routes := h.engine.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	respondData(c, http.StatusOK, out)
}
