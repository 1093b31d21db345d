package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-shop/internal/audit"
	domain "github.com/BruksfildServices01/barber-shop/internal/domain/booking"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	actorID uint,
	actorRole models.Role,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	if !canTouch(ap, actorID, actorRole) {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
