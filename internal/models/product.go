package models

import "time"

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Stock int     `gorm:"not null;default:0;check:stock >= 0" json:"stock"`

	// Nome do arquivo no storage (disco ou S3), não a URL.
	Image string `gorm:"size:255" json:"image"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
