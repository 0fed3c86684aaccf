package tab

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/jneves25/barber-service/internal/api/handlers"
	"github.com/jneves25/barber-service/internal/api/middleware"
	"github.com/jneves25/barber-service/internal/service/orders"
	"github.com/jneves25/barber-service/internal/service/orders/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidItemID        = "некорректный ID позиции"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgAppointmentNotFound  = "запись не найдена"
	msgItemNotFound         = "позиция не найдена"
	msgServiceNotFound      = "услуга не найдена"
	msgProductNotFound      = "товар не найден"
	msgForbidden            = "недостаточно прав для изменения завершенной записи"
	msgNotEditable          = "заказ можно изменять только после открытия записи"
	msgInvalidTransition    = "недопустимая смена статуса записи"
)

// Handler HTTP обработчики заказа (tab) записи
type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Open POST /api/v1/appointments/{appointmentId}/open
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r, "POST /appointments/{id}/open")
	if !ok {
		return
	}

	resp, err := h.service.OpenTab(r.Context(), appointmentID)
	if err != nil {
		h.respondError(w, "POST /appointments/{id}/open", appointmentID, err)
		return
	}

	h.logger.Info("POST /appointments/{id}/open - Tab opened: appointment_id=%d, items=%d", appointmentID, len(resp.Items))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Get GET /api/v1/appointments/{appointmentId}/tab
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r, "GET /appointments/{id}/tab")
	if !ok {
		return
	}

	resp, err := h.service.GetTab(r.Context(), appointmentID)
	if err != nil {
		h.respondError(w, "GET /appointments/{id}/tab", appointmentID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// AddItem POST /api/v1/appointments/{appointmentId}/tab/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	const route = "POST /appointments/{id}/tab/items"

	appointmentID, ok := h.appointmentID(w, r, route)
	if !ok {
		return
	}

	var req models.AddItemRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	resp, err := h.service.AddItem(r.Context(), appointmentID, &req, middleware.GetPermissions(r.Context()))
	if err != nil {
		h.respondError(w, route, appointmentID, err)
		return
	}

	h.logger.Info("%s - Item added: appointment_id=%d, total=%s", route, appointmentID, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// AdjustQuantity PATCH /api/v1/appointments/{appointmentId}/tab/items/{itemId}
func (h *Handler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /appointments/{id}/tab/items/{itemId}"

	appointmentID, ok := h.appointmentID(w, r, route)
	if !ok {
		return
	}
	itemID, ok := h.itemID(w, r, route)
	if !ok {
		return
	}

	var req models.AdjustQuantityRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	resp, err := h.service.AdjustQuantity(r.Context(), appointmentID, itemID, req.Delta, middleware.GetPermissions(r.Context()))
	if err != nil {
		h.respondError(w, route, appointmentID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// RemoveItem DELETE /api/v1/appointments/{appointmentId}/tab/items/{itemId}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /appointments/{id}/tab/items/{itemId}"

	appointmentID, ok := h.appointmentID(w, r, route)
	if !ok {
		return
	}
	itemID, ok := h.itemID(w, r, route)
	if !ok {
		return
	}

	resp, err := h.service.RemoveItem(r.Context(), appointmentID, itemID, middleware.GetPermissions(r.Context()))
	if err != nil {
		h.respondError(w, route, appointmentID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Complete POST /api/v1/appointments/{appointmentId}/complete
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r, "POST /appointments/{id}/complete")
	if !ok {
		return
	}

	resp, err := h.service.CompleteTab(r.Context(), appointmentID)
	if err != nil {
		h.respondError(w, "POST /appointments/{id}/complete", appointmentID, err)
		return
	}

	h.logger.Info("POST /appointments/{id}/complete - Appointment completed: appointment_id=%d, total=%s",
		appointmentID, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) appointmentID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("%s - Invalid appointment ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return 0, false
	}
	return id, true
}

func (h *Handler) itemID(w http.ResponseWriter, r *http.Request, route string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["itemId"])
	if err != nil {
		h.logger.Warn("%s - Invalid item ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, v interface{}) bool {
	if err := handlers.DecodeJSON(r, v); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	if err := handlers.ValidateStruct(v); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return false
	}
	return true
}

// respondError переводит ошибки сервиса заказов в HTTP ответ
func (h *Handler) respondError(w http.ResponseWriter, route string, appointmentID int64, err error) {
	switch {
	case errors.Is(err, orders.ErrAppointmentNotFound):
		h.logger.Warn("%s - Appointment not found: appointment_id=%d", route, appointmentID)
		handlers.RespondNotFound(w, msgAppointmentNotFound)

	case errors.Is(err, orders.ErrItemNotFound):
		h.logger.Warn("%s - Item not found: appointment_id=%d", route, appointmentID)
		handlers.RespondNotFound(w, msgItemNotFound)

	case errors.Is(err, orders.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, orders.ErrProductNotFound):
		handlers.RespondNotFound(w, msgProductNotFound)

	case errors.Is(err, orders.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: appointment_id=%d", route, appointmentID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, orders.ErrNotEditable):
		h.logger.Warn("%s - Tab not editable: appointment_id=%d", route, appointmentID)
		handlers.RespondConflict(w, msgNotEditable)

	case errors.Is(err, orders.ErrInvalidTransition):
		h.logger.Warn("%s - Invalid transition: appointment_id=%d", route, appointmentID)
		handlers.RespondConflict(w, msgInvalidTransition)

	case errors.Is(err, orders.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: appointment_id=%d, error=%v", route, appointmentID, err)
		handlers.RespondInternalError(w)
	}
}
