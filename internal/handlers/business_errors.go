package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-shop/internal/httperr"
)

// respondBusiness traduz erro de negócio em resposta HTTP.
// Retorna false quando o erro não é de negócio (aí é 500 do chamador).
func respondBusiness(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	switch code {
	case httperr.CodeProductNotFound:
		httperr.NotFound(c, code, "Produto não encontrado.")
	case httperr.CodePurchaseNotFound:
		httperr.NotFound(c, code, "Compra não encontrada.")
	case httperr.CodeAppointmentNotFound:
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case httperr.CodeBarberNotFound:
		httperr.NotFound(c, code, "Barbeiro não encontrado.")
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, code, "Já existe um agendamento para esta data e hora.")
	case httperr.CodeInsufficientStock:
		httperr.Conflict(c, code, "Estoque insuficiente para a quantidade pedida.")
	case httperr.CodePaymentRejected:
		httperr.BadRequest(c, code, "Pagamento recusado.")
	case httperr.CodeCartEmpty:
		httperr.BadRequest(c, code, "O carrinho está vazio.")
	case httperr.CodeInvalidQuantity:
		httperr.BadRequest(c, code, "Quantidade inválida.")
	default:
		httperr.BadRequest(c, code, "Pedido inválido.")
	}
	return true
}
