package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Appointment (create / conflict) --------

	// CreateIfSlotFree cria o agendamento somente se o slot
	// (date, time, barber) ainda estiver livre. Retorna
	// httperr slot_taken em caso de conflito.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateIfSlotFree salva o agendamento remarcado, ignorando
	// o próprio registro na checagem de conflito.
	UpdateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read / delete) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointmentsForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
