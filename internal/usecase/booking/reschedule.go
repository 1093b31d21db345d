package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-shop/internal/audit"
	domain "github.com/BruksfildServices01/barber-shop/internal/domain/booking"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type RescheduleInput struct {
	ActorID   uint
	ActorRole models.Role

	AppointmentID uint

	Date        string
	Time        string
	Description string
}

type Reschedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReschedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !canTouch(ap, in.ActorID, in.ActorRole) {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	slot, err := domain.ParseSlot(in.Date, in.Time, ap.BarberID)
	if err != nil {
		return nil, err
	}

	ap.Date = slot.Date
	ap.Time = slot.Time
	if in.Description != "" {
		ap.Description = in.Description
	}

	if err := uc.repo.UpdateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// canTouch: o agendamento só é visível para o cliente que o criou
// ou para o barbeiro da agenda.
func canTouch(ap *models.Appointment, actorID uint, role models.Role) bool {
	switch role {
	case models.RoleBarber:
		return ap.BarberID != nil && *ap.BarberID == actorID
	case models.RoleClient:
		return ap.ClientID != nil && *ap.ClientID == actorID
	}
	return false
}
