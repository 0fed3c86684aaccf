package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/jneves25/barber-service/internal/api/handlers"
	"github.com/jneves25/barber-service/internal/service/appointments"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidParams         = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments
// Query params: date или from+to (YYYY-MM-DD), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := handlers.PathInt64(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(professionalID, q.Get("date"), q.Get("from"), q.Get("to"), q.Get("status"), time.Now())
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByProfessional(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /professionals/{id}/appointments - Failed to list appointments: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
