package models

import "time"

type Purchase struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProductID uint     `gorm:"index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product,omitempty"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`

	// Preço unitário congelado no momento da compra.
	UnitPrice float64 `gorm:"not null" json:"unit_price"`

	PaymentMethod string    `gorm:"size:30;not null" json:"payment_method"`
	PurchaseDate  time.Time `json:"purchase_date"`
}

func (p *Purchase) Total() float64 {
	return p.UnitPrice * float64(p.Quantity)
}
