package list_appointments

import (
	"context"

	"github.com/jneves25/barber-service/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByProfessional(ctx context.Context, req *models.ListByProfessionalRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
