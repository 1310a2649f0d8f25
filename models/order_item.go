package models

import "time"

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order           Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ServiceID       uint    `gorm:"not null" json:"service_id"`
	Service         Service `gorm:"foreignKey:ServiceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"service"`
	Quantity        int     `gorm:"not null" json:"quantity"`
	UnitPrice       float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal        float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	// JSON snapshot of the option selections at submission time
	SelectedOptions string    `gorm:"type:text" json:"selected_options"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
