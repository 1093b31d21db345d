package purchase

import (
	"context"

	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type Repository interface {
	// -------- Product --------
	GetProduct(
		ctx context.Context,
		productID uint,
	) (*models.Product, error)

	// -------- Purchase (stock transaction) --------

	// CreateWithStockDecrement baixa o estoque e grava a compra em uma única
	// transação. Retorna httperr insufficient_stock quando não há estoque,
	// sem alterar nada.
	CreateWithStockDecrement(
		ctx context.Context,
		p *models.Purchase,
	) error

	// CancelWithStockRestore devolve o estoque registrado e remove a compra.
	// Se o produto tiver sido apagado, a compra ainda é removida.
	CancelWithStockRestore(
		ctx context.Context,
		purchaseID uint,
	) (*models.Purchase, error)

	// -------- Purchase (read) --------
	GetPurchase(
		ctx context.Context,
		purchaseID uint,
	) (*models.Purchase, error)

	ListPurchasesForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Purchase, error)

	ListPurchasesForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Purchase, error)
}
