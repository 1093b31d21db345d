package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/timezone"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot identifica um horário reservável: (data, hora, barbeiro).
type Slot struct {
	Date     string
	Time     string
	BarberID *uint
}

// ParseSlot normaliza e valida o par data/hora vindo do formulário.
func ParseSlot(date, timeStr string, barberID *uint) (Slot, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Slot{}, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse(TimeLayout, timeStr); err != nil {
		return Slot{}, httperr.ErrBusiness("invalid_time")
	}
	return Slot{Date: date, Time: timeStr, BarberID: barberID}, nil
}

// StartsAt devolve o instante do slot no fuso do salão.
func (s Slot) StartsAt() (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		s.Date+" "+s.Time,
		timezone.Location(timezone.DefaultTimezone),
	)
}
