package services

import (
	"bytes"
	"fmt"
	"strings"

	"sleeperbus/internal/domain"
	"sleeperbus/internal/domain/models"
	"sleeperbus/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the e-ticket PDF for a confirmed booking.
type DocsService struct {
	Booking   *BookingService
	Tickets   TicketService
	Bus       models.Bus
	RequestID string
	Loader    func(string) (ticketDocData, error)
}

type ticketDocData struct {
	BookingID   string
	Passenger   models.Passenger
	SeatIDs     []string
	SeatTypes   []string
	Journey     string
	BusName     string
	BusID       string
	FarePerSeat int64
	Fare        int64
	Meals       []string
	MealTotal   int64
	BookedAt    string
	TicketCode  string
}

func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	data, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+data.BookingID)
	return buildETicketPDF(data)
}

func (s DocsService) load(bookingID string) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	var out ticketDocData
	b, err := s.Booking.Get(bookingID)
	if err != nil {
		return out, err
	}
	if b.IsCancelled() {
		return out, domain.ConflictError{Resource: "booking", Msg: "booking " + b.ID + " is cancelled", Err: domain.ErrAlreadyCancelled}
	}
	code, err := s.Tickets.IssueCode(b)
	if err != nil {
		return out, err
	}

	out.BookingID = b.ID
	out.Passenger = b.Passenger
	out.SeatIDs = b.SeatIDs
	for _, id := range b.SeatIDs {
		if seat, err := s.Booking.Ledger.Seat(id); err == nil {
			out.SeatTypes = append(out.SeatTypes, seat.Type)
		} else {
			out.SeatTypes = append(out.SeatTypes, "-")
		}
	}
	out.Journey = s.Booking.Describe(b.Segment)
	out.BusName = s.Bus.Name
	out.BusID = s.Bus.ID
	out.FarePerSeat = b.FarePerSeat
	out.Fare = b.Fare
	for _, id := range b.Meals {
		out.Meals = append(out.Meals, s.mealName(id))
	}
	out.MealTotal = b.MealTotal
	out.BookedAt = utils.FormatDateTime(b.CreatedAt)
	out.TicketCode = code
	return out, nil
}

func (s DocsService) mealName(id string) string {
	for _, m := range s.Booking.Meals {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}

func buildETicketPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+d.BookingID, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	seats := make([]string, 0, len(d.SeatIDs))
	for i, id := range d.SeatIDs {
		berth := "-"
		if i < len(d.SeatTypes) {
			berth = d.SeatTypes[i]
		}
		seats = append(seats, fmt.Sprintf("%s (%s)", id, berth))
	}
	meals := "-"
	if len(d.Meals) > 0 {
		meals = strings.Join(d.Meals, ", ") + " / " + utils.FormatRupee(d.MealTotal)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking        : %s", d.BookingID),
		fmt.Sprintf("Passenger      : %s", safe(d.Passenger.Name, "-")),
		fmt.Sprintf("Phone          : %s", safe(d.Passenger.Phone, "-")),
		fmt.Sprintf("Bus            : %s %s", safe(d.BusID, ""), safe(d.BusName, "-")),
		fmt.Sprintf("Journey        : %s", safe(d.Journey, "-")),
		fmt.Sprintf("Berths         : %s", safe(strings.Join(seats, ", "), "-")),
		fmt.Sprintf("Fare per berth : %s", utils.FormatRupee(d.FarePerSeat)),
		fmt.Sprintf("Fare total     : %s", utils.FormatRupee(d.Fare)),
		fmt.Sprintf("Meals          : %s", meals),
		fmt.Sprintf("Booked at      : %s", safe(d.BookedAt, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Courier", "", 8)
	pdf.MultiCell(0, 4, "Ticket code: "+d.TicketCode, "", "", false)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Valid only for the berths and stops above. Show this ticket when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", d.BookingID, utils.SafeFilenamePart(d.Passenger.Name))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
