package models

import "time"

// Service is a purchasable photography offering from the studio catalog.
type Service struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Type        string          `gorm:"type:varchar(50);not null" json:"type"`
	BasePrice   float64         `gorm:"type:decimal(10,2);not null" json:"base_price"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
	Options     []ServiceOption `gorm:"foreignKey:ServiceID" json:"options,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}
