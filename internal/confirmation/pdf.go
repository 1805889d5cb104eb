// Package confirmation renders the printable booking-confirmation card
// guests download after a successful submission.
package confirmation

import (
	"bytes"
	"fmt"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"github.com/phpdave11/gofpdf"
)

func Build(b *models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Booking Confirmation - %s", b.Reference), false)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(92, 51, 23)
	pdf.Rect(0, 0, 210, 42, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(0, 8)
	pdf.CellFormat(210, 5, "BOOKING CONFIRMATION", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(210, 10, "Pind Pahadi", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(210, 5, "Authentic Pahadi & Punjabi Cuisine", "", 1, "C", false, 0, "")
	pdf.SetFont("Courier", "B", 11)
	pdf.CellFormat(210, 7, fmt.Sprintf("Ref: %s", b.Reference), "", 1, "C", false, 0, "")

	pdf.SetTextColor(61, 31, 10)
	pdf.SetY(50)

	writeSection(pdf, "Booking Details")
	writeRow(pdf, "Name", b.Name)
	writeRow(pdf, "Phone", b.Phone)
	writeRow(pdf, "Guests", guestLabel(b.Guests))
	writeRow(pdf, "Date", b.Date)
	writeRow(pdf, "Time", b.Time)
	if b.SpecialRequest != "" {
		writeRow(pdf, "Special Request", b.SpecialRequest)
	}

	if b.AdvanceAmount > 0 || b.PaymentMethod != "" {
		pdf.Ln(4)
		writeSection(pdf, "Advance Payment")
		if b.PaymentMethod != "" {
			writeRow(pdf, "Method", b.PaymentMethod)
		}
		writeRow(pdf, "Advance Amount", fmt.Sprintf("Rs. %d", b.AdvanceAmount))
		if b.UPIDetails != "" {
			writeRow(pdf, "UPI Transaction", b.UPIDetails)
		}
		if b.BankDetails != "" {
			writeRow(pdf, "Bank Reference", b.BankDetails)
		}
		if b.ScreenshotFileName != "" {
			writeRow(pdf, "Payment Proof", b.ScreenshotFileName)
		}
	}

	pdf.Ln(4)
	writeSection(pdf, "Status")
	writeRow(pdf, "Booking Status", string(b.Status))

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(101, 56, 22)
	pdf.MultiCell(0, 5,
		"Please show this card on arrival. For changes call the restaurant and quote your reference.",
		"", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render confirmation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(141, 103, 72)
	pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
	pdf.SetTextColor(61, 31, 10)
}

func writeRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func guestLabel(n int) string {
	if n == 1 {
		return "1 Guest"
	}
	return fmt.Sprintf("%d Guests", n)
}
