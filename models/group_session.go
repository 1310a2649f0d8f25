package models

import "time"

const (
	GroupStatusProgramada = "programada"
	GroupStatusRealizada  = "realizada"
	GroupStatusCancelada  = "cancelada"
)

// GroupSession is a scheduled group photo-session (schools, events).
type GroupSession struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	SessionDate time.Time `gorm:"not null" json:"session_date"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	Status      string    `gorm:"type:varchar(20);not null;default:'programada'" json:"status"`
	Comments    string    `gorm:"type:text" json:"comments"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
