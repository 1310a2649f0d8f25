package models

import "time"

// Package is a named bundle of services sold at its own price.
type Package struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Price       float64          `gorm:"type:decimal(10,2);not null" json:"price"`
	Active      bool             `gorm:"not null;default:true" json:"active"`
	Services    []PackageService `gorm:"foreignKey:PackageID" json:"services"`
	CreatedAt   time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`
}

type PackageService struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PackageID uint    `gorm:"not null;index" json:"package_id"`
	Package   Package `gorm:"foreignKey:PackageID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"foreignKey:ServiceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"service"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}
