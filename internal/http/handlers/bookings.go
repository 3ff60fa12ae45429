package handlers

import (
	"errors"
	"net/http"

	"sleeperbus/internal/domain"
	"sleeperbus/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) CreateBooking(c *gin.Context) {
	var in models.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	ctx, cancel := h.lockContext(c)
	defer cancel()

	b, err := h.bookings(c).Create(ctx, in)
	if err != nil {
		// a seat id the bus does not have is a bad request here, not a missing resource
		if errors.Is(err, domain.ErrUnknownSeat) {
			RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		RespondDomainError(c, err)
		return
	}
	respondData(c, http.StatusCreated, b)
}

func (h *Handlers) CancelBooking(c *gin.Context) {
	ctx, cancel := h.lockContext(c)
	defer cancel()

	b, err := h.bookings(c).Cancel(ctx, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
		"data":    b,
	})
}

func (h *Handlers) GetBookings(c *gin.Context) {
	respondData(c, http.StatusOK, h.Bookings.List())
}

func (h *Handlers) GetBookingByID(c *gin.Context) {
	b, err := h.Bookings.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondData(c, http.StatusOK, b)
}
