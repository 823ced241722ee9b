package models

import (
	"time"
)

// ContactMessage represents a contact form submission
type ContactMessage struct {
	Seq       uint      `gorm:"primaryKey;autoIncrement" json:"-"` // insertion order for SQL backings
	ID        string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

// Reservation represents a table booking request
type Reservation struct {
	Seq             uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID              string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Email           string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string    `gorm:"type:varchar(50);not null" json:"phone"`
	Date            string    `gorm:"type:varchar(50);not null" json:"date"`
	Time            string    `gorm:"type:varchar(50);not null" json:"time"`
	Guests          int       `gorm:"not null" json:"guests"`
	SpecialRequests *string   `gorm:"type:text" json:"special_requests"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}
