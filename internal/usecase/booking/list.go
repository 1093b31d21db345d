package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-shop/internal/domain/booking"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute lista a agenda do ator: barbeiro vê o que marcaram com ele,
// cliente vê o que ele marcou.
func (uc *List) Execute(
	ctx context.Context,
	actorID uint,
	actorRole models.Role,
) ([]models.Appointment, error) {

	switch actorRole {
	case models.RoleBarber:
		return uc.repo.ListAppointmentsForBarber(ctx, actorID)
	default:
		return uc.repo.ListAppointmentsForClient(ctx, actorID)
	}
}
