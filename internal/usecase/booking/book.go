package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-shop/internal/audit"
	domain "github.com/BruksfildServices01/barber-shop/internal/domain/booking"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ActorID   uint
	ActorRole models.Role
	ActorName string

	BarberID *uint

	Date        string
	Time        string
	Description string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		Name:        in.ActorName,
		Description: in.Description,
	}

	if in.ActorRole == models.RoleBarber {
		// Barbeiro reservando a própria agenda.
		ap.BarberID = &in.ActorID
	} else {
		ap.ClientID = &in.ActorID

		if in.BarberID != nil {
			barber, err := uc.repo.GetUser(ctx, *in.BarberID)
			if err != nil || barber.Role != models.RoleBarber {
				return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
			}
			ap.BarberID = in.BarberID
		}
	}

	slot, err := domain.ParseSlot(in.Date, in.Time, ap.BarberID)
	if err != nil {
		return nil, err
	}
	ap.Date = slot.Date
	ap.Time = slot.Time

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
