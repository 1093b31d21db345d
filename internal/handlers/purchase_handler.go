package handlers

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartstore "github.com/BruksfildServices01/barber-shop/internal/cart"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/httpresp"
	"github.com/BruksfildServices01/barber-shop/internal/invoice"
	"github.com/BruksfildServices01/barber-shop/internal/middleware"
	"github.com/BruksfildServices01/barber-shop/internal/models"
	ucPurchase "github.com/BruksfildServices01/barber-shop/internal/usecase/purchase"
)

// ======================================================
// HANDLER
// ======================================================

type PurchaseHandler struct {
	db *gorm.DB

	checkoutUC     *ucPurchase.Checkout
	checkoutCartUC *ucPurchase.CheckoutCart
	cancelUC       *ucPurchase.Cancel
	listUC         *ucPurchase.List

	cart     *cartstore.Store
	invoices *invoice.Renderer
}

func NewPurchaseHandler(
	db *gorm.DB,
	checkoutUC *ucPurchase.Checkout,
	checkoutCartUC *ucPurchase.CheckoutCart,
	cancelUC *ucPurchase.Cancel,
	listUC *ucPurchase.List,
	cart *cartstore.Store,
	invoices *invoice.Renderer,
) *PurchaseHandler {
	return &PurchaseHandler{
		db:             db,
		checkoutUC:     checkoutUC,
		checkoutCartUC: checkoutCartUC,
		cancelUC:       cancelUC,
		listUC:         listUC,
		cart:           cart,
		invoices:       invoices,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckoutRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type CheckoutCartRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// ======================================================
// CHECKOUT (produto único)
// ======================================================

func (h *PurchaseHandler) Checkout(c *gin.Context) {
	clientID := middleware.CurrentUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Dados inválidos.")
		return
	}

	p, err := h.checkoutUC.Execute(c.Request.Context(), ucPurchase.CheckoutInput{
		ClientID:      clientID,
		ClientEmail:   h.clientEmail(clientID),
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_purchase", "Erro ao processar a compra.")
		}
		return
	}

	httpresp.Created(c, gin.H{
		"purchase":    p,
		"total":       p.Total(),
		"invoice_url": invoiceURL(p.ID),
	})
}

// ======================================================
// CHECKOUT (carrinho inteiro)
// ======================================================

func (h *PurchaseHandler) CheckoutCart(c *gin.Context) {
	clientID := middleware.CurrentUserID(c)

	var req CheckoutCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	cart, err := h.cart.Get(ctx, clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_cart", "Erro ao carregar o carrinho.")
		return
	}

	purchases, err := h.checkoutCartUC.Execute(ctx, ucPurchase.CheckoutCartInput{
		ClientID:      clientID,
		ClientEmail:   h.clientEmail(clientID),
		Cart:          cart,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_purchase", "Erro ao processar a compra.")
		}
		return
	}

	// Carrinho comprado é carrinho vazio.
	if err := h.cart.Clear(ctx, clientID); err != nil {
		httperr.Internal(c, "failed_to_clear_cart", "Compra feita, mas o carrinho não pôde ser limpo.")
		return
	}

	httpresp.Created(c, gin.H{
		"purchases": purchases,
		"total":     cart.Total(),
	})
}

// ======================================================
// LIST / CANCEL
// ======================================================

func (h *PurchaseHandler) List(c *gin.Context) {
	purchases, err := h.listUC.Execute(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		middleware.CurrentRole(c),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_purchases", "Erro ao listar compras.")
		return
	}

	httpresp.List(c, purchases)
}

func (h *PurchaseHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	_, err := h.cancelUC.Execute(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		middleware.CurrentRole(c),
		id,
	)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_cancel_purchase", "Erro ao cancelar a compra.")
		}
		return
	}

	c.Status(204)
}

// ======================================================
// INVOICE (PDF endereçado pelo id da compra)
// ======================================================

func (h *PurchaseHandler) Invoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	actorID := middleware.CurrentUserID(c)
	role := middleware.CurrentRole(c)

	var p models.Purchase
	if err := h.db.First(&p, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodePurchaseNotFound, "Compra não encontrada.")
		return
	}

	owned := (role == models.RoleClient && p.ClientID == actorID) ||
		(role == models.RoleBarber && p.BarberID == actorID)
	if !owned {
		httperr.NotFound(c, httperr.CodePurchaseNotFound, "Compra não encontrada.")
		return
	}

	path := h.invoices.Path(p.ID)
	if _, err := os.Stat(path); err != nil {
		httperr.NotFound(c, "invoice_not_found", "Fatura não encontrada.")
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.File(path)
}

// ======================================================
// HELPERS
// ======================================================

func (h *PurchaseHandler) clientEmail(clientID uint) string {
	var user models.User
	if err := h.db.Select("email").First(&user, clientID).Error; err != nil {
		return ""
	}
	return user.Email
}

func invoiceURL(purchaseID uint) string {
	return "/api/purchases/" + strconv.FormatUint(uint64(purchaseID), 10) + "/invoice"
}
