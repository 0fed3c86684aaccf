package goal

import (
	"context"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/internal/service/goals/models"
)

type GoalService interface {
	Create(ctx context.Context, req *models.CreateGoalRequest, perms domain.PermissionChecker) (*models.GoalResponse, error)
	GetProgress(ctx context.Context, goalID int64) (*models.GoalResponse, error)
	ListByProfessional(ctx context.Context, professionalID int64) (*models.GoalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
