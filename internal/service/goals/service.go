package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/jneves25/barber-service/internal/domain"
	goalRepo "github.com/jneves25/barber-service/internal/infra/storage/goal"
	catalogClient "github.com/jneves25/barber-service/internal/integrations/catalogservice"
	"github.com/jneves25/barber-service/internal/service/goals/models"
	"github.com/shopspring/decimal"
)

// Service сервис месячных целей мастеров
type Service struct {
	goalRepo     GoalRepository
	revenueRepo  RevenueRepository
	catalog      CatalogClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса целей
func NewService(
	goalRepo GoalRepository,
	revenueRepo RevenueRepository,
	catalog CatalogClient,
	logger Logger,
) *Service {
	return &Service{
		goalRepo:     goalRepo,
		revenueRepo:  revenueRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create создает цель мастера на месяц. На один месяц допускается одна цель
func (s *Service) Create(ctx context.Context, req *models.CreateGoalRequest, perms domain.PermissionChecker) (*models.GoalResponse, error) {
	s.logger.Info("Create: goal for professional=%d, period=%02d/%d, target=%s",
		req.ProfessionalID, req.Month, req.Year, req.Target)

	// 1. Проверяем права доступа
	if perms == nil || !perms.HasPermission(domain.PermissionManageGoals) {
		s.logger.Warn("Create: access denied for professional=%d", req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	// 2. Валидация
	goal := req.ToDomainGoal()
	if err := goal.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Проверяем мастера
	if _, err := s.catalog.GetProfessional(ctx, goal.ProfessionalID); err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			s.logger.Warn("Create: professional id=%d not found", goal.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Create: failed to get professional id=%d: %v", goal.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Create - get professional: %v", ErrInternal, err)
	}

	// 4. Проверяем уникальность (мастер, месяц, год)
	existing, err := s.goalRepo.GetByPeriod(ctx, goal.ProfessionalID, goal.Month, goal.Year)
	if err != nil && !errors.Is(err, goalRepo.ErrGoalNotFound) {
		s.logger.Error("Create: failed to check existing goal: %v", err)
		return nil, fmt.Errorf("%w: Create - check existing goal: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("Create: goal id=%d already exists for professional=%d, period=%02d/%d",
			existing.ID, goal.ProfessionalID, goal.Month, goal.Year)
		return nil, ErrGoalAlreadyExists
	}

	// 5. Создаем
	created, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created goal id=%d", created.ID)
	return s.withProgress(ctx, "Create", created)
}

// GetProgress возвращает цель с прогрессом по выручке завершенных записей месяца
func (s *Service) GetProgress(ctx context.Context, goalID int64) (*models.GoalResponse, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, goalRepo.ErrGoalNotFound) {
			s.logger.Warn("GetProgress: goal id=%d not found", goalID)
			return nil, ErrGoalNotFound
		}
		s.logger.Error("GetProgress: repository error for goal id=%d: %v", goalID, err)
		return nil, fmt.Errorf("%w: GetProgress - repository error: %v", ErrInternal, err)
	}

	return s.withProgress(ctx, "GetProgress", goal)
}

// ListByProfessional возвращает все цели мастера с прогрессом
func (s *Service) ListByProfessional(ctx context.Context, professionalID int64) (*models.GoalListResponse, error) {
	goals, err := s.goalRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("ListByProfessional: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListByProfessional - repository error: %v", ErrInternal, err)
	}

	resp := &models.GoalListResponse{Goals: make([]models.GoalResponse, 0, len(goals))}
	for _, goal := range goals {
		item, err := s.withProgress(ctx, "ListByProfessional", goal)
		if err != nil {
			return nil, err
		}
		resp.Goals = append(resp.Goals, *item)
	}

	s.logger.Info("ListByProfessional: %d goals for professional=%d", len(resp.Goals), professionalID)
	return resp, nil
}

// withProgress считает прогресс цели. Для будущего месяца выручка не запрашивается
func (s *Service) withProgress(ctx context.Context, op string, goal *domain.Goal) (*models.GoalResponse, error) {
	now := s.timeProvider.Now()

	current := decimal.Zero
	progress := domain.CalculateProgress(goal, current, now)
	if !progress.IsFuture {
		loc := now.Location()
		revenue, err := s.revenueRepo.SumCompletedRevenue(ctx, goal.ProfessionalID, goal.PeriodStart(loc), goal.PeriodEnd(loc))
		if err != nil {
			s.logger.Error("%s: failed to sum revenue for goal id=%d: %v", op, goal.ID, err)
			return nil, fmt.Errorf("%w: %s - sum revenue: %v", ErrInternal, op, err)
		}
		progress = domain.CalculateProgress(goal, revenue, now)
	}

	return models.FromDomainGoal(goal, progress), nil
}
