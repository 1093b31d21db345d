package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Date        string `gorm:"size:10;not null;uniqueIndex:idx_appointments_slot" json:"date"`
	Time        string `gorm:"size:5;not null;uniqueIndex:idx_appointments_slot" json:"time"`
	Description string `gorm:"size:255" json:"description"`

	ClientID *uint `json:"client_id"`
	Client   *User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	BarberID *uint `gorm:"uniqueIndex:idx_appointments_slot" json:"barber_id"`
	Barber   *User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
