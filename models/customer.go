package models

import "time"

// Customer phone is stored normalized (country code + digits only) and is
// the natural lookup key for the order workflow.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address   *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
