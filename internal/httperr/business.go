package httperr

import "errors"

// Códigos de negócio usados pelos use cases.
const (
	CodeProductNotFound     = "product_not_found"
	CodePurchaseNotFound    = "purchase_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeBarberNotFound      = "barber_not_found"
	CodeSlotTaken           = "slot_taken"
	CodeInsufficientStock   = "insufficient_stock"
	CodeInvalidQuantity     = "invalid_quantity"
	CodeCartEmpty           = "cart_empty"
	CodePaymentRejected     = "payment_rejected"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
