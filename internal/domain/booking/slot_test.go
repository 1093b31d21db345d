package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-shop/internal/httperr"
)

func TestParseSlot(t *testing.T) {
	barberID := uint(3)

	slot, err := ParseSlot("2026-09-01", "10:30", &barberID)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", slot.Date)
	assert.Equal(t, "10:30", slot.Time)

	_, err = ParseSlot("01-09-2026", "10:30", &barberID)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = ParseSlot("2026-09-01", "10h30", &barberID)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	_, err = ParseSlot("2026-02-30", "10:30", &barberID)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestSlotStartsAt(t *testing.T) {
	slot := Slot{Date: "2026-09-01", Time: "10:30"}

	at, err := slot.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, 10, at.Hour())
	assert.Equal(t, 30, at.Minute())
}
