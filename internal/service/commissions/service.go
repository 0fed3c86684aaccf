package commissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/jneves25/barber-service/internal/domain"
	commissionRepo "github.com/jneves25/barber-service/internal/infra/storage/commission"
	catalogClient "github.com/jneves25/barber-service/internal/integrations/catalogservice"
	"github.com/jneves25/barber-service/internal/service/commissions/models"
)

// Service сервис комиссий мастеров
type Service struct {
	repo    CommissionRepository
	catalog CatalogClient
	metrics MetricsRecorder
	logger  Logger
}

// NewService создает новый экземпляр сервиса комиссий
func NewService(
	repo CommissionRepository,
	catalog CatalogClient,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve возвращает действующую комиссию мастера для услуги.
// Правило для услуги имеет приоритет над общим процентом мастера
func (s *Service) Resolve(ctx context.Context, professionalID, serviceID int64) (*models.ResolvedResponse, error) {
	s.logger.Info("Resolve: professional=%d, service=%d", professionalID, serviceID)

	if _, err := s.getProfessional(ctx, "Resolve", professionalID); err != nil {
		return nil, err
	}
	if _, err := s.getService(ctx, "Resolve", serviceID); err != nil {
		return nil, err
	}

	resolved, err := s.resolve(ctx, "Resolve", professionalID, serviceID)
	if err != nil {
		return nil, err
	}

	resp := models.FromResolved(professionalID, serviceID, resolved)
	return &resp, nil
}

// Breakdown возвращает действующую комиссию и её сумму для текущей цены услуги
func (s *Service) Breakdown(ctx context.Context, professionalID, serviceID int64) (*models.BreakdownResponse, error) {
	s.logger.Info("Breakdown: professional=%d, service=%d", professionalID, serviceID)

	if _, err := s.getProfessional(ctx, "Breakdown", professionalID); err != nil {
		return nil, err
	}
	service, err := s.getService(ctx, "Breakdown", serviceID)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolve(ctx, "Breakdown", professionalID, serviceID)
	if err != nil {
		return nil, err
	}

	return &models.BreakdownResponse{
		ResolvedResponse: models.FromResolved(professionalID, serviceID, resolved),
		ServiceName:      service.Name,
		ServicePrice:     service.Price.StringFixed(2),
		Amount:           resolved.Amount(service.Price).StringFixed(2),
	}, nil
}

// GetSettings возвращает общий процент и все правила мастера
func (s *Service) GetSettings(ctx context.Context, professionalID int64) (*models.SettingsResponse, error) {
	if _, err := s.getProfessional(ctx, "GetSettings", professionalID); err != nil {
		return nil, err
	}

	config, err := s.getConfig(ctx, "GetSettings", professionalID)
	if err != nil {
		return nil, err
	}

	rules, err := s.repo.ListRules(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetSettings: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetSettings - list rules: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(professionalID, config, rules), nil
}

// SetRule устанавливает правило комиссии мастера для услуги.
// Значение проверяется до записи и никогда не обрезается.
// Если тип и значение совпадают с действующими, запись не выполняется
func (s *Service) SetRule(ctx context.Context, professionalID, serviceID int64, req *models.SetRuleRequest, perms domain.PermissionChecker) (*models.RuleWriteResponse, error) {
	s.logger.Info("SetRule: professional=%d, service=%d, type=%s, value=%s",
		professionalID, serviceID, req.RuleType, req.Value)

	// 1. Проверяем права доступа
	if !hasPermission(perms, domain.PermissionManageCommissions) {
		s.logger.Warn("SetRule: access denied for professional=%d", professionalID)
		return nil, ErrAccessDenied
	}

	// 2. Проверяем мастера и получаем цену услуги
	if _, err := s.getProfessional(ctx, "SetRule", professionalID); err != nil {
		return nil, err
	}
	service, err := s.getService(ctx, "SetRule", serviceID)
	if err != nil {
		return nil, err
	}

	// 3. Валидация значения относительно цены услуги
	ruleType := domain.RuleType(req.RuleType)
	if err := domain.ValidateRuleValue(ruleType, req.Value, service.Price); err != nil {
		s.logger.Warn("SetRule: validation failed: %v", err)
		s.metrics.RecordCommissionWrite(outcomeInvalid)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Сравниваем с действующим состоянием
	current, err := s.resolve(ctx, "SetRule", professionalID, serviceID)
	if err != nil {
		return nil, err
	}
	if current.Matches(ruleType, req.Value) {
		s.logger.Info("SetRule: professional=%d, service=%d unchanged, skipping write", professionalID, serviceID)
		s.metrics.RecordCommissionWrite(outcomeNoop)
		return &models.RuleWriteResponse{
			Commission: models.FromResolved(professionalID, serviceID, current),
			Written:    false,
		}, nil
	}

	// 5. Сохраняем
	rule, err := s.repo.UpsertRule(ctx, &domain.CommissionRule{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		RuleType:       ruleType,
		Value:          req.Value,
	})
	if err != nil {
		s.logger.Error("SetRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetRule - upsert rule: %v", ErrInternal, err)
	}
	s.metrics.RecordCommissionWrite(outcomeWritten)

	s.logger.Info("SetRule: saved rule id=%d", rule.ID)
	return &models.RuleWriteResponse{
		Commission: models.FromResolved(professionalID, serviceID, domain.ResolveCommission(nil, rule)),
		Written:    true,
	}, nil
}

// SetGeneralPercentage устанавливает общий процент мастера.
// Совпадающее значение не перезаписывается
func (s *Service) SetGeneralPercentage(ctx context.Context, professionalID int64, req *models.SetGeneralPercentageRequest, perms domain.PermissionChecker) (*models.SettingsResponse, error) {
	s.logger.Info("SetGeneralPercentage: professional=%d, value=%s", professionalID, req.GeneralPercentage)

	// 1. Проверяем права доступа
	if !hasPermission(perms, domain.PermissionManageCommissions) {
		s.logger.Warn("SetGeneralPercentage: access denied for professional=%d", professionalID)
		return nil, ErrAccessDenied
	}

	// 2. Валидация
	if err := domain.ValidatePercentage(req.GeneralPercentage); err != nil {
		s.logger.Warn("SetGeneralPercentage: validation failed: %v", err)
		s.metrics.RecordCommissionWrite(outcomeInvalid)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Проверяем мастера
	if _, err := s.getProfessional(ctx, "SetGeneralPercentage", professionalID); err != nil {
		return nil, err
	}

	// 4. Сравниваем с текущим значением и сохраняем
	config, err := s.getConfig(ctx, "SetGeneralPercentage", professionalID)
	if err != nil {
		return nil, err
	}
	if config != nil && config.GeneralPercentage.Equal(req.GeneralPercentage) {
		s.metrics.RecordCommissionWrite(outcomeNoop)
	} else {
		config, err = s.repo.UpsertConfig(ctx, &domain.CommissionConfig{
			ProfessionalID:    professionalID,
			GeneralPercentage: req.GeneralPercentage,
		})
		if err != nil {
			s.logger.Error("SetGeneralPercentage: repository error: %v", err)
			return nil, fmt.Errorf("%w: SetGeneralPercentage - upsert config: %v", ErrInternal, err)
		}
		s.metrics.RecordCommissionWrite(outcomeWritten)
	}

	rules, err := s.repo.ListRules(ctx, professionalID)
	if err != nil {
		s.logger.Error("SetGeneralPercentage: failed to list rules: %v", err)
		return nil, fmt.Errorf("%w: SetGeneralPercentage - list rules: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(professionalID, config, rules), nil
}

// DeleteRule удаляет правило для услуги, после чего действует общий процент
func (s *Service) DeleteRule(ctx context.Context, professionalID, serviceID int64, perms domain.PermissionChecker) error {
	s.logger.Info("DeleteRule: professional=%d, service=%d", professionalID, serviceID)

	if !hasPermission(perms, domain.PermissionManageCommissions) {
		s.logger.Warn("DeleteRule: access denied for professional=%d", professionalID)
		return ErrAccessDenied
	}

	if err := s.repo.DeleteRule(ctx, professionalID, serviceID); err != nil {
		if errors.Is(err, commissionRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: no rule for professional=%d, service=%d", professionalID, serviceID)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error: %v", err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Вспомогательные методы

// resolve загружает правило и общую конфигурацию. Отсутствие любой из них не является ошибкой
func (s *Service) resolve(ctx context.Context, op string, professionalID, serviceID int64) (domain.ResolvedCommission, error) {
	rule, err := s.repo.GetRule(ctx, professionalID, serviceID)
	if err != nil && !errors.Is(err, commissionRepo.ErrRuleNotFound) {
		s.logger.Error("%s: failed to get rule: %v", op, err)
		return domain.ResolvedCommission{}, fmt.Errorf("%w: %s - get rule: %v", ErrInternal, op, err)
	}
	if rule != nil {
		return domain.ResolveCommission(nil, rule), nil
	}

	config, err := s.getConfig(ctx, op, professionalID)
	if err != nil {
		return domain.ResolvedCommission{}, err
	}
	if config == nil {
		s.logger.Info("%s: professional=%d has no commission config, using 0%%", op, professionalID)
	}

	return domain.ResolveCommission(config, nil), nil
}

// getConfig возвращает nil без ошибки, если конфигурации нет
func (s *Service) getConfig(ctx context.Context, op string, professionalID int64) (*domain.CommissionConfig, error) {
	config, err := s.repo.GetConfig(ctx, professionalID)
	if err != nil {
		if errors.Is(err, commissionRepo.ErrConfigNotFound) {
			return nil, nil
		}
		s.logger.Error("%s: failed to get config for professional=%d: %v", op, professionalID, err)
		return nil, fmt.Errorf("%w: %s - get config: %v", ErrInternal, op, err)
	}
	return config, nil
}

func (s *Service) getProfessional(ctx context.Context, op string, professionalID int64) (*domain.Professional, error) {
	professional, err := s.catalog.GetProfessional(ctx, professionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			s.logger.Warn("%s: professional id=%d not found", op, professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("%s: failed to get professional id=%d: %v", op, professionalID, err)
		return nil, fmt.Errorf("%w: %s - get professional: %v", ErrInternal, op, err)
	}
	return professional, nil
}

func (s *Service) getService(ctx context.Context, op string, serviceID int64) (*domain.Service, error) {
	service, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%d not found", op, serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: failed to get service id=%d: %v", op, serviceID, err)
		return nil, fmt.Errorf("%w: %s - get service: %v", ErrInternal, op, err)
	}
	return service, nil
}

func hasPermission(perms domain.PermissionChecker, name string) bool {
	return perms != nil && perms.HasPermission(name)
}
