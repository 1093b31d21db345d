package models

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleBarber Role = "barber"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient:
		return RoleClient, true
	case RoleBarber:
		return RoleBarber, true
	}
	return "", false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Fullname     string `gorm:"size:100;not null" json:"fullname"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Email        string `gorm:"size:100" json:"email"`
	Role         Role   `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
