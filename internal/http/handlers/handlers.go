package handlers

import (
	"context"
	"time"

	"sleeperbus/internal/domain/models"
	"sleeperbus/internal/http/middleware"
	"sleeperbus/internal/services"

	"github.com/gin-gonic/gin"
)

// JournalCounter reports how many journal rows exist per booking status.
type JournalCounter interface {
	Count(ctx context.Context) (map[string]int, error)
}

// Handlers carries the services every endpoint needs. One value is built at
// startup and shared by all requests.
type Handlers struct {
	Bookings    *services.BookingService
	Stats       services.StatisticsService
	Tickets     services.TicketService
	Docs        services.DocsService
	Bus         models.Bus
	Journal     JournalCounter
	LockTimeout time.Duration

	engine *gin.Engine
}

// SetRouter stores the active gin engine for /api/routes.
func (h *Handlers) SetRouter(r *gin.Engine) {
	h.engine = r
}

func (h *Handlers) bookings(c *gin.Context) *services.BookingService {
	return h.Bookings.WithRequestID(middleware.GetRequestID(c))
}

// lockContext bounds seat lock acquisition for write requests.
func (h *Handlers) lockContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.LockTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.LockTimeout)
	}
	return context.WithCancel(c.Request.Context())
}
