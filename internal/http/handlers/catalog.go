package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetStations(c *gin.Context) {
	respondData(c, http.StatusOK, h.Bookings.Stations())
}

func (h *Handlers) GetMeals(c *gin.Context) {
	respondData(c, http.StatusOK, h.Bookings.MealCatalog())
}

func (h *Handlers) GetBus(c *gin.Context) {
	respondData(c, http.StatusOK, h.Bus)
}

// GetSeats lists every seat priced and checked for ?from=&to=.
func (h *Handlers) GetSeats(c *gin.Context) {
	seats, err := h.Bookings.ListSeats(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondData(c, http.StatusOK, seats)
}

// GetAvailability answers ?seatId=&from=&to= for one seat.
func (h *Handlers) GetAvailability(c *gin.Context) {
	ok, err := h.Bookings.SeatAvailability(c.Query("seatId"), c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "available": ok})
}

func (h *Handlers) GetStatistics(c *gin.Context) {
	respondData(c, http.StatusOK, h.Stats.Compute())
}
