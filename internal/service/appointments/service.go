package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jneves25/barber-service/internal/domain"
	appointmentRepo "github.com/jneves25/barber-service/internal/infra/storage/appointment"
	"github.com/jneves25/barber-service/internal/service/appointments/models"
)

// Service сервис чтения записей к мастерам
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByProfessional возвращает записи мастера за период, по возрастанию даты и времени.
// Опционально фильтрует по статусу
func (s *Service) ListByProfessional(ctx context.Context, req *models.ListByProfessionalRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByProfessional: professional=%d, period=%s to %s, status=%v",
		req.ProfessionalID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.Status)

	if err := req.Validate(); err != nil {
		s.logger.Warn("ListByProfessional: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var status *domain.AppointmentStatus
	if req.Status != nil {
		st := domain.AppointmentStatus(*req.Status)
		status = &st
	}

	list, err := s.appointmentRepo.ListByProfessional(ctx, req.ProfessionalID, req.From, req.To, status)
	if err != nil {
		s.logger.Error("ListByProfessional: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: ListByProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProfessional: fetched %d appointments for professional=%d", len(list), req.ProfessionalID)
	return models.FromDomainAppointmentList(list), nil
}
