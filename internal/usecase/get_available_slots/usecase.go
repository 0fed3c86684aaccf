package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/jneves25/barber-service/internal/domain"
	catalogClient "github.com/jneves25/barber-service/internal/integrations/catalogservice"
)

// UseCase use case для получения слотов мастера на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         CatalogClient
	schedule        Schedule
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog CatalogClient,
	schedule Schedule,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		schedule:        schedule,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем ограничение на запись вперед
	if err := validateAdvance(req.Date, now, uc.schedule.MaxAdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем мастера
	if _, err := uc.catalog.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 5. Получаем длительность услуги, если она выбрана
	serviceDuration := 0
	if req.ServiceID > 0 {
		service, err := uc.catalog.GetService(ctx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		serviceDuration = service.DurationMinutes
	}

	// 6. Получаем существующие записи мастера на дату
	bookings, err := uc.appointmentRepo.ListBookings(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	slots, err := GenerateSlots(req.Date, now, SlotParams{
		WorkingHours:           uc.schedule.WorkingHours,
		StepMinutes:            uc.schedule.StepMinutes,
		ServiceDurationMinutes: serviceDuration,
		Bookings:               bookings,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	available := countAvailable(slots)
	uc.metrics.ObserveSlots(available, len(slots)-available)

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for professional=%d, date=%s",
		len(slots), available, req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Slots:          slots,
	}, nil
}

func countAvailable(slots []domain.TimeSlot) int {
	n := 0
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}
