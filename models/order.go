package models

import "time"

const (
	DeliveryImpresa = "impresa"
	DeliveryDigital = "digital"
	DeliveryAmbos   = "ambos"
)

const (
	OrderStatusPendiente  = "pendiente"
	OrderStatusEnProceso  = "en_proceso"
	OrderStatusCompletado = "completado"
	OrderStatusCancelado  = "cancelado"
)

type Order struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	Folio            string      `gorm:"type:varchar(30);uniqueIndex;not null" json:"folio"`
	CustomerID       uint        `gorm:"not null;index" json:"customer_id"`
	Customer         Customer    `gorm:"foreignKey:CustomerID" json:"customer"`
	DeliveryFormat   string      `gorm:"type:varchar(10);not null" json:"delivery_format"`
	TotalPrice       float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_price"`
	AdvancePayment   float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"advance_payment"`
	RemainingPayment float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"remaining_payment"`
	Comments         string      `gorm:"type:text" json:"comments"`
	Status           string      `gorm:"type:varchar(20);not null;default:'pendiente'" json:"status"`
	OrderItems       []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt        time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"not null" json:"updated_at"`
}

// ValidDeliveryFormat reports whether f is one of the accepted formats.
func ValidDeliveryFormat(f string) bool {
	return f == DeliveryImpresa || f == DeliveryDigital || f == DeliveryAmbos
}
