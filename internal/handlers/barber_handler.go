package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/httpresp"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

// Diretório público de barbeiros, usado na tela de reserva.
type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type BarberResponse struct {
	ID       uint   `json:"id"`
	Fullname string `json:"fullname"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("fullname ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Não foi possível listar os barbeiros.")
		return
	}

	out := make([]BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, BarberResponse{ID: b.ID, Fullname: b.Fullname})
	}

	httpresp.List(c, out)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, models.RoleBarber).
		First(&barber).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeBarberNotFound, "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Não foi possível carregar o barbeiro.")
		return
	}

	c.JSON(http.StatusOK, BarberResponse{ID: barber.ID, Fullname: barber.Fullname})
}
