package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartstore "github.com/BruksfildServices01/barber-shop/internal/cart"
	cartdomain "github.com/BruksfildServices01/barber-shop/internal/domain/cart"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/middleware"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type CartHandler struct {
	db    *gorm.DB
	store *cartstore.Store
}

func NewCartHandler(db *gorm.DB, store *cartstore.Store) *CartHandler {
	return &CartHandler{db: db, store: store}
}

// --------- Requests ---------

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// --------- Handlers ---------

func (h *CartHandler) Add(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Dados inválidos.")
		return
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var product models.Product
	if err := h.db.First(&product, req.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeProductNotFound, "Produto não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "Erro ao carregar produto.")
		return
	}

	ctx := c.Request.Context()

	current, err := h.store.Get(ctx, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_cart", "Erro ao carregar o carrinho.")
		return
	}

	// Nome e preço congelados no momento do Add.
	updated := cartdomain.Add(current, cartdomain.Entry{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	})

	if err := h.store.Save(ctx, userID, updated); err != nil {
		httperr.Internal(c, "failed_to_save_cart", "Erro ao salvar o carrinho.")
		return
	}

	c.JSON(http.StatusOK, cartPayload(updated))
}

func (h *CartHandler) Get(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	cart, err := h.store.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_cart", "Erro ao carregar o carrinho.")
		return
	}

	c.JSON(http.StatusOK, cartPayload(cart))
}

func (h *CartHandler) RemoveEntry(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	productID, err := strconv.ParseUint(c.Param("productID"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ctx := c.Request.Context()

	current, err := h.store.Get(ctx, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_cart", "Erro ao carregar o carrinho.")
		return
	}

	updated := cartdomain.Remove(current, uint(productID))

	if err := h.store.Save(ctx, userID, updated); err != nil {
		httperr.Internal(c, "failed_to_save_cart", "Erro ao salvar o carrinho.")
		return
	}

	c.JSON(http.StatusOK, cartPayload(updated))
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	if err := h.store.Clear(c.Request.Context(), userID); err != nil {
		httperr.Internal(c, "failed_to_clear_cart", "Erro ao limpar o carrinho.")
		return
	}

	c.Status(204)
}

func cartPayload(cart cartdomain.Cart) gin.H {
	entries := cart.Entries
	if entries == nil {
		entries = []cartdomain.Entry{}
	}
	return gin.H{
		"entries": entries,
		"total":   cart.Total(),
	}
}
