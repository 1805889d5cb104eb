package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

// UserRole maps an authenticated principal to its assigned role. Principals
// without a row default to "user"; unauthenticated callers are "guest".
type UserRole struct {
	Principal string    `gorm:"primaryKey" json:"principal"`
	Role      string    `gorm:"type:varchar(10);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
