package api

import (
	stdhttp "net/http"

	intconfig "sleeperbus/internal/config"
	h "sleeperbus/internal/http/handlers"
	"sleeperbus/internal/http/middleware"
	"sleeperbus/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env, hs *h.Handlers) *gin.Engine {
	log := utils.GetLogger()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		gin.Recovery(),
		middleware.CORS(env.AllowedOrigins()),
		middleware.RateLimit(env.RateLimitPerMin, log),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		h.RespondError(c, stdhttp.StatusNotFound, "Route not found")
	})

	api := r.Group("/api")
	{
		api.GET("/health", hs.Health)
		api.GET("/db-check", hs.DBCheck)
		api.GET("/routes", hs.Routes)

		api.GET("/stations", hs.GetStations)
		api.GET("/seats", hs.GetSeats)
		api.GET("/meals", hs.GetMeals)
		api.GET("/bus", hs.GetBus)
		api.GET("/availability", hs.GetAvailability)
		api.GET("/statistics", hs.GetStatistics)

		bookings := api.Group("/bookings")
		bookings.GET("", hs.GetBookings)
		bookings.POST("", hs.CreateBooking)
		bookings.GET("/:id", hs.GetBookingByID)
		bookings.PUT("/:id/cancel", hs.CancelBooking)
		bookings.GET("/:id/ticket", hs.GetBookingETicketPDF)

		api.POST("/tickets/verify", hs.VerifyTicket)
	}

	hs.SetRouter(r)
	return r
}
