package models

import (
	"time"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
)

type Booking struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Reference          string         `gorm:"type:varchar(12);uniqueIndex;not null" json:"reference"`
	IdempotencyKey     string         `gorm:"type:varchar(64);index" json:"-"`
	Name               string         `gorm:"not null" json:"name"`
	Phone              string         `gorm:"type:varchar(20);not null" json:"phone"`
	Guests             int            `gorm:"not null" json:"guests"`
	Date               string         `gorm:"type:varchar(10);not null" json:"date"`
	Time               string         `gorm:"type:varchar(5);not null" json:"time"`
	SpecialRequest     string         `json:"special_request"`
	ScreenshotFileName string         `json:"screenshot_file_name"`
	AdvanceAmount      int            `json:"advance_amount"`
	PaymentMethod      string         `gorm:"type:varchar(20)" json:"payment_method"`
	UPIDetails         string         `json:"upi_details"`
	BankDetails        string         `json:"bank_details"`
	Status             booking.Status `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
