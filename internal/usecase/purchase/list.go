package purchase

import (
	"context"

	domain "github.com/BruksfildServices01/barber-shop/internal/domain/purchase"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute: barbeiro vê as vendas dele, cliente vê as compras dele.
func (uc *List) Execute(
	ctx context.Context,
	actorID uint,
	actorRole models.Role,
) ([]models.Purchase, error) {

	switch actorRole {
	case models.RoleBarber:
		return uc.repo.ListPurchasesForBarber(ctx, actorID)
	default:
		return uc.repo.ListPurchasesForClient(ctx, actorID)
	}
}
