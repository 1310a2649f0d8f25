package models

import "time"

const (
	OptionKindDropdown = "dropdown"
	OptionKindCheckbox = "checkbox"
)

// ServiceOption is a configurable price modifier attached to a service.
// Choices holds a JSON object mapping choice label to price delta; for
// checkbox options the single relevant key is "true".
type ServiceOption struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ServiceID uint      `gorm:"not null;index" json:"service_id"`
	Service   Service   `gorm:"foreignKey:ServiceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Kind      string    `gorm:"type:varchar(20);not null" json:"kind"`
	Choices   string    `gorm:"type:text;not null" json:"choices"`
	Required  bool      `gorm:"not null;default:false" json:"required"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
