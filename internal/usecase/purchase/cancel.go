package purchase

import (
	"context"

	"github.com/BruksfildServices01/barber-shop/internal/audit"
	domain "github.com/BruksfildServices01/barber-shop/internal/domain/purchase"
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

// Execute devolve o estoque registrado na compra e apaga o registro.
// Cliente só cancela compra própria; barbeiro só venda própria.
func (uc *Cancel) Execute(
	ctx context.Context,
	actorID uint,
	actorRole models.Role,
	purchaseID uint,
) (*models.Purchase, error) {

	p, err := uc.repo.GetPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	owned := (actorRole == models.RoleClient && p.ClientID == actorID) ||
		(actorRole == models.RoleBarber && p.BarberID == actorID)
	if !owned {
		return nil, httperr.ErrBusiness(httperr.CodePurchaseNotFound)
	}

	cancelled, err := uc.repo.CancelWithStockRestore(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "purchase_cancelled",
		Entity:   "purchase",
		EntityID: &cancelled.ID,
		Metadata: map[string]any{
			"product_id": cancelled.ProductID,
			"quantity":   cancelled.Quantity,
		},
	})

	return cancelled, nil
}
