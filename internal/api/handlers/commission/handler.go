package commission

import (
	"errors"
	"net/http"

	"github.com/jneves25/barber-service/internal/api/handlers"
	"github.com/jneves25/barber-service/internal/api/middleware"
	"github.com/jneves25/barber-service/internal/service/commissions"
	"github.com/jneves25/barber-service/internal/service/commissions/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgProfessionalNotFound  = "мастер не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgRuleNotFound          = "правило комиссии не найдено"
	msgForbidden             = "недостаточно прав для управления комиссиями"
)

// Handler HTTP обработчики комиссий мастера
type Handler struct {
	service CommissionService
	logger  Logger
}

func NewHandler(service CommissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Resolve GET /api/v1/professionals/{professionalId}/commissions/services/{serviceId}
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	const route = "GET /professionals/{id}/commissions/services/{serviceId}"

	professionalID, serviceID, ok := h.pair(w, r, route)
	if !ok {
		return
	}

	resp, err := h.service.Resolve(r.Context(), professionalID, serviceID)
	if err != nil {
		h.respondError(w, route, professionalID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Breakdown GET /api/v1/professionals/{professionalId}/commissions/services/{serviceId}/breakdown
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	const route = "GET /professionals/{id}/commissions/services/{serviceId}/breakdown"

	professionalID, serviceID, ok := h.pair(w, r, route)
	if !ok {
		return
	}

	resp, err := h.service.Breakdown(r.Context(), professionalID, serviceID)
	if err != nil {
		h.respondError(w, route, professionalID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Settings GET /api/v1/professionals/{professionalId}/commissions
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	const route = "GET /professionals/{id}/commissions"

	professionalID, ok := h.professionalID(w, r, route)
	if !ok {
		return
	}

	resp, err := h.service.GetSettings(r.Context(), professionalID)
	if err != nil {
		h.respondError(w, route, professionalID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// SetRule PUT /api/v1/professionals/{professionalId}/commissions/services/{serviceId}
func (h *Handler) SetRule(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /professionals/{id}/commissions/services/{serviceId}"

	professionalID, serviceID, ok := h.pair(w, r, route)
	if !ok {
		return
	}

	var req models.SetRuleRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	resp, err := h.service.SetRule(r.Context(), professionalID, serviceID, &req, middleware.GetPermissions(r.Context()))
	if err != nil {
		h.respondError(w, route, professionalID, err)
		return
	}

	h.logger.Info("%s - Rule processed: professional_id=%d, service_id=%d, written=%t",
		route, professionalID, serviceID, resp.Written)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// SetGeneral PUT /api/v1/professionals/{professionalId}/commissions/general
func (h *Handler) SetGeneral(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /professionals/{id}/commissions/general"

	professionalID, ok := h.professionalID(w, r, route)
	if !ok {
		return
	}

	var req models.SetGeneralPercentageRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	resp, err := h.service.SetGeneralPercentage(r.Context(), professionalID, &req, middleware.GetPermissions(r.Context()))
	if err != nil {
		h.respondError(w, route, professionalID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// DeleteRule DELETE /api/v1/professionals/{professionalId}/commissions/services/{serviceId}
func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /professionals/{id}/commissions/services/{serviceId}"

	professionalID, serviceID, ok := h.pair(w, r, route)
	if !ok {
		return
	}

	if err := h.service.DeleteRule(r.Context(), professionalID, serviceID, middleware.GetPermissions(r.Context())); err != nil {
		h.respondError(w, route, professionalID, err)
		return
	}

	h.logger.Info("%s - Rule deleted: professional_id=%d, service_id=%d", route, professionalID, serviceID)
	handlers.RespondNoContent(w)
}

func (h *Handler) professionalID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("%s - Invalid professional ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return 0, false
	}
	return id, true
}

func (h *Handler) pair(w http.ResponseWriter, r *http.Request, route string) (int64, int64, bool) {
	professionalID, ok := h.professionalID(w, r, route)
	if !ok {
		return 0, 0, false
	}
	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("%s - Invalid service ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return 0, 0, false
	}
	return professionalID, serviceID, true
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

// respondError переводит ошибки сервиса комиссий в HTTP ответ
func (h *Handler) respondError(w http.ResponseWriter, route string, professionalID int64, err error) {
	switch {
	case errors.Is(err, commissions.ErrProfessionalNotFound):
		h.logger.Warn("%s - Professional not found: professional_id=%d", route, professionalID)
		handlers.RespondNotFound(w, msgProfessionalNotFound)

	case errors.Is(err, commissions.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: professional_id=%d", route, professionalID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, commissions.ErrRuleNotFound):
		handlers.RespondNotFound(w, msgRuleNotFound)

	case errors.Is(err, commissions.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: professional_id=%d", route, professionalID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, commissions.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: professional_id=%d, error=%v", route, professionalID, err)
		handlers.RespondInternalError(w)
	}
}
