package booking

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Phone numbers are accepted in the lenient form: 8-15 characters of
// digits, "+", spaces and hyphens after trimming.
var phoneRe = regexp.MustCompile(`^[+0-9\s-]{8,15}$`)

var validate = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return IsTimeSlot(fl.Field().String())
	})
	_ = v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return false
		}
		// Zero-padded ISO dates compare correctly as strings.
		return s >= time.Now().Format("2006-01-02")
	})
	return v
}()

// ValidationError reports every field of a Request that failed a local
// rule, keyed by its form-field name. A request that produces one must
// never reach the backend.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid booking request: %s", strings.Join(keys, ", "))
}

var fieldKeys = map[string]string{
	"Name":          "name",
	"Phone":         "phone",
	"Guests":        "guests",
	"Date":          "date",
	"Time":          "time",
	"AdvanceAmount": "advanceAmount",
	"PaymentMethod": "paymentMethod",
}

func fieldMessage(key, tag string) string {
	switch key {
	case "name":
		return "Name is required"
	case "phone":
		return "Valid phone number required"
	case "guests":
		return "Guests must be between 1 and 10"
	case "date":
		if tag == "required" {
			return "Date is required"
		}
		return "Date cannot be in the past"
	case "time":
		if tag == "required" {
			return "Time is required"
		}
		return "Select a valid time slot"
	case "advanceAmount":
		return "Enter a valid advance amount"
	case "paymentMethod":
		return "Select a valid payment method"
	}
	return "Invalid value"
}

// Validate runs every local rule against req and returns nil when it may
// be submitted. It is synchronous and touches nothing remote.
func Validate(req Request) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: map[string]string{"request": err.Error()}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key, ok := fieldKeys[fe.Field()]
		if !ok {
			key = fe.Field()
		}
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = fieldMessage(key, fe.Tag())
	}
	return &ValidationError{Fields: fields}
}

// Normalized returns a copy of r with the free-text fields trimmed the
// way the booking form trims them before submission.
func (r Request) Normalized() Request {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.SpecialRequest = strings.TrimSpace(r.SpecialRequest)
	if r.Payment != nil {
		p := *r.Payment
		p.UPIDetails = strings.TrimSpace(p.UPIDetails)
		p.BankDetails = strings.TrimSpace(p.BankDetails)
		r.Payment = &p
	}
	return r
}
