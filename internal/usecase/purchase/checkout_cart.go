package purchase

import (
	"context"
	"log"

	"github.com/BruksfildServices01/barber-shop/internal/audit"
	cartdomain "github.com/BruksfildServices01/barber-shop/internal/domain/cart"
	domain "github.com/BruksfildServices01/barber-shop/internal/domain/purchase"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/invoice"
	"github.com/BruksfildServices01/barber-shop/internal/models"
	"github.com/BruksfildServices01/barber-shop/internal/payment"
	"github.com/BruksfildServices01/barber-shop/internal/timezone"
)

type CheckoutCartInput struct {
	ClientID    uint
	ClientEmail string

	Cart          cartdomain.Cart
	PaymentMethod string
}

type CheckoutCart struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	payments payment.Processor
	invoices *invoice.Renderer
}

func NewCheckoutCart(
	repo domain.Repository,
	audit *audit.Dispatcher,
	payments payment.Processor,
	invoices *invoice.Renderer,
) *CheckoutCart {
	return &CheckoutCart{
		repo:     repo,
		audit:    audit,
		payments: payments,
		invoices: invoices,
	}
}

// Execute compra cada entrada do carrinho sob as mesmas regras de
// estoque. Qualquer falha desfaz as compras já feitas: ou o carrinho
// inteiro sai, ou nada sai.
func (uc *CheckoutCart) Execute(
	ctx context.Context,
	in CheckoutCartInput,
) ([]models.Purchase, error) {

	if in.Cart.IsEmpty() {
		return nil, httperr.ErrBusiness(httperr.CodeCartEmpty)
	}
	if !payment.IsValidMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusiness(httperr.CodePaymentRejected)
	}

	var done []models.Purchase

	rollback := func() {
		for i := range done {
			if _, err := uc.repo.CancelWithStockRestore(ctx, done[i].ID); err != nil {
				log.Println("cart checkout rollback error:", err)
			}
		}
	}

	for _, entry := range in.Cart.Entries {
		product, err := uc.repo.GetProduct(ctx, entry.ProductID)
		if err != nil {
			rollback()
			return nil, err
		}

		p := models.Purchase{
			ProductID:     product.ID,
			ClientID:      in.ClientID,
			BarberID:      product.BarberID,
			Quantity:      entry.Quantity,
			UnitPrice:     entry.Price,
			PaymentMethod: in.PaymentMethod,
			PurchaseDate:  timezone.Now(),
		}

		if err := uc.repo.CreateWithStockDecrement(ctx, &p); err != nil {
			rollback()
			return nil, err
		}
		done = append(done, p)
	}

	if _, err := uc.payments.Charge(ctx, payment.Charge{
		Amount:      in.Cart.Total(),
		Method:      in.PaymentMethod,
		Description: "cart checkout",
		PayerEmail:  in.ClientEmail,
	}); err != nil {
		rollback()
		return nil, err
	}

	for i := range done {
		uc.renderInvoice(&done[i])

		uc.audit.Dispatch(audit.Event{
			UserID:   &in.ClientID,
			Action:   "purchase_completed",
			Entity:   "purchase",
			EntityID: &done[i].ID,
		})
	}

	return done, nil
}

func (uc *CheckoutCart) renderInvoice(p *models.Purchase) {
	if uc.invoices == nil {
		return
	}

	name := ""
	if product, err := uc.repo.GetProduct(context.Background(), p.ProductID); err == nil {
		name = product.Name
	}

	if _, err := uc.invoices.Render(p, name); err != nil {
		log.Println("invoice error:", err)
	}
}
