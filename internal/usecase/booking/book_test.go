package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-shop/internal/audit"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barber-shop/internal/infra/repository"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type testEnv struct {
	db   *gorm.DB
	repo *infraRepo.BookingGormRepository

	book       *Book
	reschedule *Reschedule
	cancel     *Cancel
	list       *List

	client *models.User
	barber *models.User
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.AuditLog{},
	))

	client := &models.User{Fullname: "Joana Cliente", Username: "joana", PasswordHash: "x", Role: models.RoleClient}
	barber := &models.User{Fullname: "Carlos Barbeiro", Username: "carlos", PasswordHash: "x", Role: models.RoleBarber}
	require.NoError(t, db.Create(client).Error)
	require.NoError(t, db.Create(barber).Error)

	repo := infraRepo.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return &testEnv{
		db:         db,
		repo:       repo,
		book:       NewBook(repo, dispatcher),
		reschedule: NewReschedule(repo, dispatcher),
		cancel:     NewCancel(repo, dispatcher),
		list:       NewList(repo),
		client:     client,
		barber:     barber,
	}
}

func (e *testEnv) bookForClient(t *testing.T, date, hour string) *models.Appointment {
	t.Helper()

	ap, err := e.book.Execute(context.Background(), BookInput{
		ActorID:   e.client.ID,
		ActorRole: models.RoleClient,
		ActorName: e.client.Fullname,
		BarberID:  &e.barber.ID,
		Date:      date,
		Time:      hour,
	})
	require.NoError(t, err)
	return ap
}

func TestBookClientWithBarber(t *testing.T) {
	env := setupEnv(t)

	ap := env.bookForClient(t, "2026-09-01", "10:00")

	assert.Equal(t, "Joana Cliente", ap.Name)
	require.NotNil(t, ap.ClientID)
	assert.Equal(t, env.client.ID, *ap.ClientID)
	require.NotNil(t, ap.BarberID)
	assert.Equal(t, env.barber.ID, *ap.BarberID)
}

func TestBookSlotTaken(t *testing.T) {
	env := setupEnv(t)

	env.bookForClient(t, "2026-09-01", "10:00")

	_, err := env.book.Execute(context.Background(), BookInput{
		ActorID:   env.client.ID,
		ActorRole: models.RoleClient,
		ActorName: env.client.Fullname,
		BarberID:  &env.barber.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
}

func TestBookBarberSelf(t *testing.T) {
	env := setupEnv(t)

	ap, err := env.book.Execute(context.Background(), BookInput{
		ActorID:   env.barber.ID,
		ActorRole: models.RoleBarber,
		ActorName: env.barber.Fullname,
		Date:      "2026-09-01",
		Time:      "14:00",
	})
	require.NoError(t, err)

	require.NotNil(t, ap.BarberID)
	assert.Equal(t, env.barber.ID, *ap.BarberID)
	assert.Nil(t, ap.ClientID)
}

func TestBookBarberNotFound(t *testing.T) {
	env := setupEnv(t)

	ghost := uint(999)
	_, err := env.book.Execute(context.Background(), BookInput{
		ActorID:   env.client.ID,
		ActorRole: models.RoleClient,
		ActorName: env.client.Fullname,
		BarberID:  &ghost,
		Date:      "2026-09-01",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberNotFound))

	// Cliente também não vale como barbeiro.
	_, err = env.book.Execute(context.Background(), BookInput{
		ActorID:   env.client.ID,
		ActorRole: models.RoleClient,
		ActorName: env.client.Fullname,
		BarberID:  &env.client.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberNotFound))
}

func TestBookInvalidSlot(t *testing.T) {
	env := setupEnv(t)

	_, err := env.book.Execute(context.Background(), BookInput{
		ActorID:   env.client.ID,
		ActorRole: models.RoleClient,
		ActorName: env.client.Fullname,
		BarberID:  &env.barber.ID,
		Date:      "01/09/2026",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = env.book.Execute(context.Background(), BookInput{
		ActorID:   env.client.ID,
		ActorRole: models.RoleClient,
		ActorName: env.client.Fullname,
		BarberID:  &env.barber.ID,
		Date:      "2026-09-01",
		Time:      "10h00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestRescheduleConflict(t *testing.T) {
	env := setupEnv(t)

	ap := env.bookForClient(t, "2026-09-01", "10:00")
	env.bookForClient(t, "2026-09-01", "11:00")

	_, err := env.reschedule.Execute(context.Background(), RescheduleInput{
		ActorID:       env.client.ID,
		ActorRole:     models.RoleClient,
		AppointmentID: ap.ID,
		Date:          "2026-09-01",
		Time:          "11:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	moved, err := env.reschedule.Execute(context.Background(), RescheduleInput{
		ActorID:       env.client.ID,
		ActorRole:     models.RoleClient,
		AppointmentID: ap.ID,
		Date:          "2026-09-01",
		Time:          "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "12:00", moved.Time)
}

func TestCancelOwnership(t *testing.T) {
	env := setupEnv(t)

	ap := env.bookForClient(t, "2026-09-01", "10:00")

	other := &models.User{Fullname: "Outro Cliente", Username: "outro", PasswordHash: "x", Role: models.RoleClient}
	require.NoError(t, env.db.Create(other).Error)

	// Agendamento alheio é invisível: mesmo erro de não encontrado.
	err := env.cancel.Execute(context.Background(), other.ID, models.RoleClient, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))

	// O barbeiro da agenda pode cancelar.
	err = env.cancel.Execute(context.Background(), env.barber.ID, models.RoleBarber, ap.ID)
	require.NoError(t, err)

	_, err = env.repo.GetAppointment(context.Background(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestListByRole(t *testing.T) {
	env := setupEnv(t)

	env.bookForClient(t, "2026-09-01", "10:00")
	env.bookForClient(t, "2026-09-02", "10:00")

	forClient, err := env.list.Execute(context.Background(), env.client.ID, models.RoleClient)
	require.NoError(t, err)
	assert.Len(t, forClient, 2)

	forBarber, err := env.list.Execute(context.Background(), env.barber.ID, models.RoleBarber)
	require.NoError(t, err)
	assert.Len(t, forBarber, 2)

	other, err := env.list.Execute(context.Background(), 999, models.RoleClient)
	require.NoError(t, err)
	assert.Len(t, other, 0)
}
