package dto

import (
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
)

type SubmitBookingResponse struct {
	Accepted bool            `json:"accepted"`
	Booking  booking.Booking `json:"booking"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func ToBooking(b *models.Booking) booking.Booking {
	out := booking.Booking{
		Request: booking.Request{
			Name:               b.Name,
			Phone:              b.Phone,
			Guests:             b.Guests,
			Date:               b.Date,
			Time:               b.Time,
			SpecialRequest:     b.SpecialRequest,
			ScreenshotFileName: b.ScreenshotFileName,
		},
		Reference: b.Reference,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
	if b.PaymentMethod != "" || b.AdvanceAmount > 0 || b.UPIDetails != "" || b.BankDetails != "" {
		out.Payment = &booking.PaymentDetails{
			AdvanceAmount: b.AdvanceAmount,
			PaymentMethod: b.PaymentMethod,
			UPIDetails:    b.UPIDetails,
			BankDetails:   b.BankDetails,
		}
	}
	return out
}

func ToBookings(bs []models.Booking) []booking.Booking {
	out := make([]booking.Booking, len(bs))
	for i := range bs {
		out[i] = ToBooking(&bs[i])
	}
	return out
}
