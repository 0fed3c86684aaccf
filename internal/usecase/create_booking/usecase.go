package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jneves25/barber-service/internal/domain"
	catalogClient "github.com/jneves25/barber-service/internal/integrations/catalogservice"
	slotsUC "github.com/jneves25/barber-service/internal/usecase/get_available_slots"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         CatalogClient
	txManager       TransactionManager
	schedule        slotsUC.Schedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog CatalogClient,
	txManager TransactionManager,
	schedule slotsUC.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		txManager:       txManager,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Проверка слота и вставка идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: professional=%d, service=%d, date=%s, time=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.schedule.MaxAdvanceDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем мастера
	if _, err := uc.catalog.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем записи мастера на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.appointmentRepo.ListBookings(txCtx, req.ProfessionalID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 5.2. Строим слоты тем же генератором, что и выдача расписания
		slots, err := slotsUC.GenerateSlots(req.Date, now, slotsUC.SlotParams{
			WorkingHours:           uc.schedule.WorkingHours,
			StepMinutes:            uc.schedule.StepMinutes,
			ServiceDurationMinutes: service.DurationMinutes,
			Bookings:               bookings,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		// 5.3. Проверяем слот
		slot, ok := findSlot(slots, req.StartTime.String())
		if !ok {
			uc.logger.Warn("CreateBooking: time %s is not a slot for professional=%d", req.StartTime, req.ProfessionalID)
			return ErrInvalidTimeSlot
		}
		if !slot.Available {
			uc.logger.Warn("CreateBooking: slot %s is taken for professional=%d", req.StartTime, req.ProfessionalID)
			return ErrSlotNotAvailable
		}

		// 5.4. Создаем запись в статусе Pending
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientName:      strings.TrimSpace(req.ClientName),
			ServiceID:       req.ServiceID,
			ProfessionalID:  req.ProfessionalID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientName:      result.ClientName,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     service.Name,
		ServicePrice:    service.Price.StringFixed(2),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
