package payment

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/BruksfildServices01/barber-shop/internal/httperr"
)

// MercadoPago processa métodos online; presenciais caem no Offline.
type MercadoPago struct {
	client  mppayment.Client
	offline Offline
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client: mppayment.NewClient(cfg),
	}, nil
}

func (p *MercadoPago) Charge(ctx context.Context, in Charge) (Receipt, error) {
	if !IsOnline(in.Method) {
		return p.offline.Charge(ctx, in)
	}

	req := mppayment.Request{
		TransactionAmount: in.Amount,
		Description:       in.Description,
		PaymentMethodID:   in.Method,
		Payer: &mppayment.PayerRequest{
			Email: in.PayerEmail,
		},
	}

	res, err := p.client.Create(ctx, req)
	if err != nil {
		return Receipt{}, fmt.Errorf("mercadopago charge: %w", err)
	}

	if res.Status == "rejected" || res.Status == "cancelled" {
		return Receipt{}, httperr.ErrBusiness(httperr.CodePaymentRejected)
	}

	return Receipt{
		Reference: strconv.Itoa(res.ID),
		Status:    res.Status,
	}, nil
}
