package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

func seedBarber(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	barber := models.User{
		Fullname:     "Barbeiro " + username,
		Username:     username,
		PasswordHash: "x",
		Role:         models.RoleBarber,
	}
	require.NoError(t, db.Create(&barber).Error)
	return &barber
}

func slotAppointment(barberID uint, date, hour string) *models.Appointment {
	clientID := uint(50)
	return &models.Appointment{
		Name:     "Cliente Teste",
		Date:     date,
		Time:     hour,
		ClientID: &clientID,
		BarberID: &barberID,
	}
}

func TestCreateIfSlotFree(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	barber := seedBarber(t, db, "carlos")

	first := slotAppointment(barber.ID, "2026-09-01", "10:00")
	require.NoError(t, repo.CreateIfSlotFree(ctx, first))

	// Mesmo slot, mesmo barbeiro: recusado.
	err := repo.CreateIfSlotFree(ctx, slotAppointment(barber.ID, "2026-09-01", "10:00"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	// O agendamento original continua lá.
	kept, err := repo.GetAppointment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", kept.Time)

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateIfSlotFreeDifferentBarber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	carlos := seedBarber(t, db, "carlos")
	pedro := seedBarber(t, db, "pedro")

	require.NoError(t, repo.CreateIfSlotFree(ctx, slotAppointment(carlos.ID, "2026-09-01", "10:00")))

	// Mesmo horário com outro barbeiro não conflita.
	require.NoError(t, repo.CreateIfSlotFree(ctx, slotAppointment(pedro.ID, "2026-09-01", "10:00")))

	// Outro horário com o mesmo barbeiro também não.
	require.NoError(t, repo.CreateIfSlotFree(ctx, slotAppointment(carlos.ID, "2026-09-01", "11:00")))
}

func TestUpdateIfSlotFree(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	barber := seedBarber(t, db, "carlos")

	ap := slotAppointment(barber.ID, "2026-09-01", "10:00")
	require.NoError(t, repo.CreateIfSlotFree(ctx, ap))

	taken := slotAppointment(barber.ID, "2026-09-01", "11:00")
	require.NoError(t, repo.CreateIfSlotFree(ctx, taken))

	// Reagendar por cima de slot ocupado falha.
	ap.Time = "11:00"
	err := repo.UpdateIfSlotFree(ctx, ap)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	// Reagendar para slot livre passa; salvar no próprio slot também.
	ap.Time = "12:00"
	require.NoError(t, repo.UpdateIfSlotFree(ctx, ap))
	require.NoError(t, repo.UpdateIfSlotFree(ctx, ap))
}

func TestDeleteAppointment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	barber := seedBarber(t, db, "carlos")

	ap := slotAppointment(barber.ID, "2026-09-01", "10:00")
	require.NoError(t, repo.CreateIfSlotFree(ctx, ap))

	require.NoError(t, repo.DeleteAppointment(ctx, ap.ID))

	err := repo.DeleteAppointment(ctx, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))

	// Slot liberado aceita reserva nova.
	require.NoError(t, repo.CreateIfSlotFree(ctx, slotAppointment(barber.ID, "2026-09-01", "10:00")))
}

func TestListAppointmentsOrdered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	barber := seedBarber(t, db, "carlos")

	require.NoError(t, repo.CreateIfSlotFree(ctx, slotAppointment(barber.ID, "2026-09-02", "09:00")))
	require.NoError(t, repo.CreateIfSlotFree(ctx, slotAppointment(barber.ID, "2026-09-01", "15:00")))
	require.NoError(t, repo.CreateIfSlotFree(ctx, slotAppointment(barber.ID, "2026-09-01", "10:00")))

	aps, err := repo.ListAppointmentsForBarber(ctx, barber.ID)
	require.NoError(t, err)
	require.Len(t, aps, 3)

	assert.Equal(t, "2026-09-01", aps[0].Date)
	assert.Equal(t, "10:00", aps[0].Time)
	assert.Equal(t, "2026-09-02", aps[2].Date)
}
