package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/httpresp"
	"github.com/BruksfildServices01/barber-shop/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-shop/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC       *ucBooking.Book
	rescheduleUC *ucBooking.Reschedule
	cancelUC     *ucBooking.Cancel
	listUC       *ucBooking.List
}

func NewAppointmentHandler(
	bookUC *ucBooking.Book,
	rescheduleUC *ucBooking.Reschedule,
	cancelUC *ucBooking.Cancel,
	listUC *ucBooking.List,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:       bookUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description"`
	BarberID    *uint  `json:"barber_id"`
}

type RescheduleAppointmentRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookInput{
		ActorID:     middleware.CurrentUserID(c),
		ActorRole:   middleware.CurrentRole(c),
		ActorName:   c.GetString(middleware.ContextFullname),
		BarberID:    req.BarberID,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
	})
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_book", "Erro ao reservar o agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		middleware.CurrentRole(c),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "validation_error", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucBooking.RescheduleInput{
		ActorID:       middleware.CurrentUserID(c),
		ActorRole:     middleware.CurrentRole(c),
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		Description:   req.Description,
	})
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_reschedule", "Erro ao editar o agendamento.")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.cancelUC.Execute(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		middleware.CurrentRole(c),
		id,
	)
	if err != nil {
		if !respondBusiness(c, err) {
			httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar o agendamento.")
		}
		return
	}

	c.Status(204)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
