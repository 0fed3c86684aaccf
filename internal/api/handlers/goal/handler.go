package goal

import (
	"errors"
	"net/http"

	"github.com/jneves25/barber-service/internal/api/handlers"
	"github.com/jneves25/barber-service/internal/api/middleware"
	"github.com/jneves25/barber-service/internal/service/goals"
	"github.com/jneves25/barber-service/internal/service/goals/models"
)

const (
	msgInvalidGoalID         = "некорректный ID цели"
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgGoalNotFound          = "цель не найдена"
	msgProfessionalNotFound  = "мастер не найден"
	msgGoalExists            = "цель на этот месяц уже существует"
	msgForbidden             = "недостаточно прав для управления целями"
)

// Handler HTTP обработчики месячных целей
type Handler struct {
	service GoalService
	logger  Logger
}

func NewHandler(service GoalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/goals
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGoalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /goals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /goals - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	resp, err := h.service.Create(r.Context(), &req, middleware.GetPermissions(r.Context()))
	if err != nil {
		h.respondError(w, "POST /goals", err)
		return
	}

	h.logger.Info("POST /goals - Goal created: goal_id=%d, professional_id=%d", resp.ID, resp.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// Progress GET /api/v1/goals/{goalId}
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	goalID, err := handlers.PathInt64(r, "goalId")
	if err != nil {
		h.logger.Warn("GET /goals/{id} - Invalid goal ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGoalID)
		return
	}

	resp, err := h.service.GetProgress(r.Context(), goalID)
	if err != nil {
		h.respondError(w, "GET /goals/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// List GET /api/v1/professionals/{professionalId}/goals
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/goals - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	resp, err := h.service.ListByProfessional(r.Context(), professionalID)
	if err != nil {
		h.respondError(w, "GET /professionals/{id}/goals", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, goals.ErrGoalNotFound):
		handlers.RespondNotFound(w, msgGoalNotFound)

	case errors.Is(err, goals.ErrProfessionalNotFound):
		handlers.RespondNotFound(w, msgProfessionalNotFound)

	case errors.Is(err, goals.ErrGoalAlreadyExists):
		h.logger.Warn("%s - Goal already exists", route)
		handlers.RespondConflict(w, msgGoalExists)

	case errors.Is(err, goals.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, goals.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
