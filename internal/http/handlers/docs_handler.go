package handlers

import (
	"net/http"

	"sleeperbus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GetBookingETicketPDF returns the e-ticket of a confirmed booking (inline).
func (h *Handlers) GetBookingETicketPDF(c *gin.Context) {
	svc := h.Docs
	svc.Booking = h.bookings(c)
	svc.RequestID = middleware.GetRequestID(c)

	pdfBytes, filename, err := svc.GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

type verifyTicketRequest struct {
	Code string `json:"code"`
}

// VerifyTicket checks a scanned ticket code against the live booking.
func (h *Handlers) VerifyTicket(c *gin.Context) {
	var req verifyTicketRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.Tickets.Verify(req.Code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondData(c, http.StatusOK, res)
}
