package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jneves25/barber-service/internal/domain"
	appointmentRepo "github.com/jneves25/barber-service/internal/infra/storage/appointment"
	catalogClient "github.com/jneves25/barber-service/internal/integrations/catalogservice"
	"github.com/jneves25/barber-service/internal/service/orders/models"
)

// Service сервис заказов (табов) записей
type Service struct {
	appointmentRepo AppointmentRepository
	itemRepo        OrderItemRepository
	catalog         CatalogClient
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(
	appointmentRepo AppointmentRepository,
	itemRepo OrderItemRepository,
	catalog CatalogClient,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		itemRepo:        itemRepo,
		catalog:         catalog,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// OpenTab переводит запись Pending -> Open и один раз заполняет заказ основной услугой записи
func (s *Service) OpenTab(ctx context.Context, appointmentID int64) (*models.TabResponse, error) {
	s.logger.Info("OpenTab: opening tab for appointment id=%d", appointmentID)

	var resp *models.TabResponse
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Получаем запись (в транзакции строка блокируется)
		appt, err := s.getAppointment(ctx, "OpenTab", appointmentID)
		if err != nil {
			return err
		}

		// 2. Переход статуса
		if err := appt.Open(); err != nil {
			s.logger.Warn("OpenTab: appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		if err := s.appointmentRepo.UpdateStatus(ctx, appt.ID, appt.Status); err != nil {
			s.logger.Error("OpenTab: failed to update status of appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: OpenTab - update status: %v", ErrInternal, err)
		}

		// 3. Загружаем текущие позиции
		items, err := s.itemRepo.List(ctx, appt.ID)
		if err != nil {
			s.logger.Error("OpenTab: failed to list items of appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: OpenTab - list items: %v", ErrInternal, err)
		}
		ledger := domain.NewOrderLedger(appt, items, nil)

		// 4. Заполняем заказ основной услугой
		if appt.HasPrimaryService() && len(items) == 0 {
			service, err := s.catalog.GetService(ctx, appt.ServiceID)
			switch {
			case errors.Is(err, catalogClient.ErrServiceNotFound):
				s.logger.Warn("OpenTab: primary service id=%d of appointment id=%d not found, tab left empty",
					appt.ServiceID, appointmentID)
			case err != nil:
				s.logger.Error("OpenTab: failed to get service id=%d: %v", appt.ServiceID, err)
				return fmt.Errorf("%w: OpenTab - get service: %v", ErrInternal, err)
			case ledger.Seed(service):
				if err := s.itemRepo.Replace(ctx, appt.ID, ledger.Items()); err != nil {
					s.logger.Error("OpenTab: failed to save items of appointment id=%d: %v", appointmentID, err)
					return fmt.Errorf("%w: OpenTab - save items: %v", ErrInternal, err)
				}
			}
		}

		resp = models.FromDomainTab(appt, ledger.Items())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("OpenTab: appointment id=%d opened with %d items", appointmentID, len(resp.Items))
	return resp, nil
}

// GetTab получает заказ записи
func (s *Service) GetTab(ctx context.Context, appointmentID int64) (*models.TabResponse, error) {
	appt, err := s.getAppointment(ctx, "GetTab", appointmentID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.List(ctx, appt.ID)
	if err != nil {
		s.logger.Error("GetTab: failed to list items of appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetTab - list items: %v", ErrInternal, err)
	}

	return models.FromDomainTab(appt, items), nil
}

// AddItem добавляет в заказ услугу или товар из справочника либо произвольную позицию.
// Позиция с теми же (kind, name) увеличивает количество существующей
func (s *Service) AddItem(ctx context.Context, appointmentID int64, req *models.AddItemRequest, perms domain.PermissionChecker) (*models.TabResponse, error) {
	s.logger.Info("AddItem: appointment id=%d", appointmentID)

	// 1. Определяем позицию (запросы к справочникам выполняются вне транзакции)
	candidate, err := s.resolveCandidate(ctx, req)
	if err != nil {
		s.metrics.RecordLedgerMutation("AddItem", err)
		return nil, err
	}

	// 2. Применяем к заказу
	return s.mutate(ctx, "AddItem", appointmentID, perms, func(ledger *domain.OrderLedger) ([]domain.OrderItem, error) {
		return ledger.AddItem(candidate)
	})
}

// AdjustQuantity изменяет количество позиции на delta, не опуская его ниже 1
func (s *Service) AdjustQuantity(ctx context.Context, appointmentID int64, itemID uuid.UUID, delta int, perms domain.PermissionChecker) (*models.TabResponse, error) {
	s.logger.Info("AdjustQuantity: appointment id=%d, item=%s, delta=%d", appointmentID, itemID, delta)

	return s.mutate(ctx, "AdjustQuantity", appointmentID, perms, func(ledger *domain.OrderLedger) ([]domain.OrderItem, error) {
		return ledger.AdjustQuantity(itemID, delta)
	})
}

// RemoveItem удаляет позицию из заказа
func (s *Service) RemoveItem(ctx context.Context, appointmentID int64, itemID uuid.UUID, perms domain.PermissionChecker) (*models.TabResponse, error) {
	s.logger.Info("RemoveItem: appointment id=%d, item=%s", appointmentID, itemID)

	return s.mutate(ctx, "RemoveItem", appointmentID, perms, func(ledger *domain.OrderLedger) ([]domain.OrderItem, error) {
		return ledger.RemoveItem(itemID)
	})
}

// CompleteTab переводит запись Open -> Completed
func (s *Service) CompleteTab(ctx context.Context, appointmentID int64) (*models.TabResponse, error) {
	s.logger.Info("CompleteTab: completing appointment id=%d", appointmentID)

	var resp *models.TabResponse
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		appt, err := s.getAppointment(ctx, "CompleteTab", appointmentID)
		if err != nil {
			return err
		}

		if err := appt.Complete(); err != nil {
			s.logger.Warn("CompleteTab: appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		if err := s.appointmentRepo.UpdateStatus(ctx, appt.ID, appt.Status); err != nil {
			s.logger.Error("CompleteTab: failed to update status of appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: CompleteTab - update status: %v", ErrInternal, err)
		}

		items, err := s.itemRepo.List(ctx, appt.ID)
		if err != nil {
			s.logger.Error("CompleteTab: failed to list items of appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: CompleteTab - list items: %v", ErrInternal, err)
		}

		resp = models.FromDomainTab(appt, items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CompleteTab: appointment id=%d completed, total=%s", appointmentID, resp.Total)
	return resp, nil
}

// Вспомогательные методы

// mutate загружает запись и позиции, применяет op и сохраняет результат в одной транзакции
func (s *Service) mutate(ctx context.Context, op string, appointmentID int64, perms domain.PermissionChecker, apply ledgerOp) (*models.TabResponse, error) {
	var resp *models.TabResponse
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		appt, err := s.getAppointment(ctx, op, appointmentID)
		if err != nil {
			return err
		}

		items, err := s.itemRepo.List(ctx, appt.ID)
		if err != nil {
			s.logger.Error("%s: failed to list items of appointment id=%d: %v", op, appointmentID, err)
			return fmt.Errorf("%w: %s - list items: %v", ErrInternal, op, err)
		}

		ledger := domain.NewOrderLedger(appt, items, perms)
		updated, err := apply(ledger)
		if err != nil {
			s.logger.Warn("%s: rejected for appointment id=%d: %v", op, appointmentID, err)
			return mapLedgerError(err)
		}

		if err := s.itemRepo.Replace(ctx, appt.ID, updated); err != nil {
			s.logger.Error("%s: failed to save items of appointment id=%d: %v", op, appointmentID, err)
			return fmt.Errorf("%w: %s - save items: %v", ErrInternal, op, err)
		}

		resp = models.FromDomainTab(appt, updated)
		return nil
	})

	s.metrics.RecordLedgerMutation(op, err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: appointment id=%d now has %d items, total=%s", op, appointmentID, len(resp.Items), resp.Total)
	return resp, nil
}

func (s *Service) getAppointment(ctx context.Context, op string, appointmentID int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, appointmentID, err)
		return nil, fmt.Errorf("%w: %s - get appointment: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// resolveCandidate превращает запрос в позицию заказа
func (s *Service) resolveCandidate(ctx context.Context, req *models.AddItemRequest) (domain.ItemCandidate, error) {
	if req == nil {
		return domain.ItemCandidate{}, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	set := 0
	for _, present := range []bool{req.ServiceID != nil, req.ProductID != nil, req.Item != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return domain.ItemCandidate{}, fmt.Errorf("%w: exactly one of serviceId, productId or item must be set", ErrInvalidInput)
	}

	switch {
	case req.ServiceID != nil:
		service, err := s.catalog.GetService(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				return domain.ItemCandidate{}, ErrServiceNotFound
			}
			s.logger.Error("AddItem: failed to get service id=%d: %v", *req.ServiceID, err)
			return domain.ItemCandidate{}, fmt.Errorf("%w: AddItem - get service: %v", ErrInternal, err)
		}
		return service.AsCandidate(), nil

	case req.ProductID != nil:
		product, err := s.catalog.GetProduct(ctx, *req.ProductID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrProductNotFound) {
				return domain.ItemCandidate{}, ErrProductNotFound
			}
			s.logger.Error("AddItem: failed to get product id=%d: %v", *req.ProductID, err)
			return domain.ItemCandidate{}, fmt.Errorf("%w: AddItem - get product: %v", ErrInternal, err)
		}
		return product.AsCandidate(), nil

	default:
		candidate := domain.ItemCandidate{
			Kind:      domain.ItemKind(strings.ToLower(req.Item.Kind)),
			Name:      req.Item.Name,
			UnitPrice: req.Item.UnitPrice,
		}
		if err := candidate.Validate(); err != nil {
			return domain.ItemCandidate{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return candidate, nil
	}
}

// mapLedgerError переводит ошибки домена в ошибки сервиса
func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, domain.ErrLedgerNotEditable):
		return ErrNotEditable
	case errors.Is(err, domain.ErrPermissionDenied):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	case errors.Is(err, domain.ErrItemNotFound):
		return ErrItemNotFound
	case errors.Is(err, domain.ErrInvalidItem):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
