package payment

import "context"

// Métodos aceitos no checkout. cash e card são acertados no balcão;
// pix e credit_card passam pelo processador online.
const (
	MethodCash       = "cash"
	MethodCard       = "card"
	MethodPix        = "pix"
	MethodCreditCard = "credit_card"
)

func IsValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodPix, MethodCreditCard:
		return true
	}
	return false
}

func IsOnline(m string) bool {
	return m == MethodPix || m == MethodCreditCard
}

type Charge struct {
	Amount      float64
	Method      string
	Description string
	PayerEmail  string
}

type Receipt struct {
	Reference string
	Status    string
}

type Processor interface {
	Charge(ctx context.Context, in Charge) (Receipt, error)
}

// Offline aprova métodos presenciais sem tocar em gateway nenhum.
type Offline struct{}

func NewOffline() *Offline {
	return &Offline{}
}

func (Offline) Charge(_ context.Context, in Charge) (Receipt, error) {
	return Receipt{Reference: "offline", Status: "approved"}, nil
}
