package booking

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// Accepted payment methods for the advance deposit.
const (
	MethodUPI          = "UPI"
	MethodBankTransfer = "Bank Transfer"
	MethodCash         = "Cash"
	MethodOther        = "Other"
)

// PaymentDetails captures the optional advance-deposit record attached to a
// table-booking request. Only the screenshot file name travels with the
// booking; the file itself never does.
type PaymentDetails struct {
	AdvanceAmount int    `json:"advance_amount" validate:"gte=0"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=UPI 'Bank Transfer' Cash Other"`
	UPIDetails    string `json:"upi_details"`
	BankDetails   string `json:"bank_details"`
}

// Request is a table-booking submission as entered by a guest.
type Request struct {
	Name               string          `json:"name" validate:"notblank"`
	Phone              string          `json:"phone" validate:"phone"`
	Guests             int             `json:"guests" validate:"gte=1,lte=10"`
	Date               string          `json:"date" validate:"required,bookingdate"`
	Time               string          `json:"time" validate:"required,timeslot"`
	SpecialRequest     string          `json:"special_request,omitempty"`
	ScreenshotFileName string          `json:"screenshot_file_name,omitempty"`
	Payment            *PaymentDetails `json:"payment,omitempty"`
}

// Booking is a persisted table booking as reported by the backend. Its
// position in the list returned by GetAllBookings is the index used for
// confirm/reject/delete; Reference is the stable key printed on the
// guest's confirmation card.
type Booking struct {
	Request
	Reference string    `json:"reference"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
