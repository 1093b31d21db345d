package purchase

import (
	"context"
	"fmt"
	"log"

	"github.com/BruksfildServices01/barber-shop/internal/audit"
	domain "github.com/BruksfildServices01/barber-shop/internal/domain/purchase"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/invoice"
	"github.com/BruksfildServices01/barber-shop/internal/models"
	"github.com/BruksfildServices01/barber-shop/internal/payment"
	"github.com/BruksfildServices01/barber-shop/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CheckoutInput struct {
	ClientID    uint
	ClientEmail string

	ProductID     uint
	Quantity      int
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	payments payment.Processor
	invoices *invoice.Renderer
}

func NewCheckout(
	repo domain.Repository,
	audit *audit.Dispatcher,
	payments payment.Processor,
	invoices *invoice.Renderer,
) *Checkout {
	return &Checkout{
		repo:     repo,
		audit:    audit,
		payments: payments,
		invoices: invoices,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*models.Purchase, error) {

	if in.Quantity <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidQuantity)
	}
	if !payment.IsValidMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusiness(httperr.CodePaymentRejected)
	}

	product, err := uc.repo.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	p := &models.Purchase{
		ProductID:     product.ID,
		ClientID:      in.ClientID,
		BarberID:      product.BarberID,
		Quantity:      in.Quantity,
		UnitPrice:     product.Price,
		PaymentMethod: in.PaymentMethod,
		PurchaseDate:  timezone.Now(),
	}

	// Baixa de estoque + insert numa transação só; o compare-and-set
	// impede estoque negativo mesmo com compras concorrentes.
	if err := uc.repo.CreateWithStockDecrement(ctx, p); err != nil {
		return nil, err
	}

	if _, err := uc.payments.Charge(ctx, payment.Charge{
		Amount:      p.Total(),
		Method:      in.PaymentMethod,
		Description: fmt.Sprintf("%s x%d", product.Name, in.Quantity),
		PayerEmail:  in.ClientEmail,
	}); err != nil {
		// Pagamento recusado: desfaz estoque e compra.
		if _, rbErr := uc.repo.CancelWithStockRestore(ctx, p.ID); rbErr != nil {
			log.Println("checkout rollback error:", rbErr)
		}
		return nil, err
	}

	uc.renderInvoice(p, product.Name)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "purchase_completed",
		Entity:   "purchase",
		EntityID: &p.ID,
		Metadata: map[string]any{
			"product_id": p.ProductID,
			"quantity":   p.Quantity,
			"total":      p.Total(),
		},
	})

	return p, nil
}

// renderInvoice é best-effort: a compra vale mesmo se o PDF falhar.
func (uc *Checkout) renderInvoice(p *models.Purchase, productName string) {
	if uc.invoices == nil {
		return
	}
	if _, err := uc.invoices.Render(p, productName); err != nil {
		log.Println("invoice error:", err)
	}
}
