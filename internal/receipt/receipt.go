// Package receipt renders the booking confirmation PDF offered for
// download after a completed booking and payment.
package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"frontend/internal/domain"
	"frontend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Data is everything printed on a confirmation receipt.
type Data struct {
	BookingID     string
	Reference     string
	CustomerName  string
	CustomerEmail string
	ServiceName   string
	ServiceType   domain.ServiceType
	StartDate     string
	EndDate       string
	People        int
	Amount        float64
	Currency      string
	Method        domain.PaymentMethod
	IssuedAt      time.Time
}

// Build renders the PDF and returns its bytes plus a download filename.
func Build(d Data) ([]byte, string, error) {
	if d.IssuedAt.IsZero() {
		d.IssuedAt = utils.NowUTC()
	}
	if d.Currency == "" {
		d.Currency = domain.DefaultCurrency
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking        : #%s", safe(d.BookingID, "-")),
		fmt.Sprintf("Reference      : %s", safe(d.Reference, "-")),
		fmt.Sprintf("Customer       : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Email          : %s", safe(d.CustomerEmail, "-")),
		fmt.Sprintf("Service        : %s (%s)", safe(d.ServiceName, "-"), string(d.ServiceType)),
		fmt.Sprintf("Dates          : %s - %s", safe(d.StartDate, "-"), safe(d.EndDate, d.StartDate)),
		fmt.Sprintf("Travelers      : %d", d.People),
		fmt.Sprintf("Amount paid    : %s", utils.FormatAmount(d.Amount, d.Currency)),
		fmt.Sprintf("Payment method : %s", string(d.Method)),
		fmt.Sprintf("Issued         : %s", d.IssuedAt.Format("2006-01-02 15:04 MST")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please bring this confirmation and a valid ID. Bookings are subject to the operator's terms.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CONFIRMATION_%s.pdf", safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "booking"
	}
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	return out.String()
}
