package commission

import (
	"context"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/internal/service/commissions/models"
)

type CommissionService interface {
	Resolve(ctx context.Context, professionalID, serviceID int64) (*models.ResolvedResponse, error)
	Breakdown(ctx context.Context, professionalID, serviceID int64) (*models.BreakdownResponse, error)
	GetSettings(ctx context.Context, professionalID int64) (*models.SettingsResponse, error)
	SetRule(ctx context.Context, professionalID, serviceID int64, req *models.SetRuleRequest, perms domain.PermissionChecker) (*models.RuleWriteResponse, error)
	SetGeneralPercentage(ctx context.Context, professionalID int64, req *models.SetGeneralPercentageRequest, perms domain.PermissionChecker) (*models.SettingsResponse, error)
	DeleteRule(ctx context.Context, professionalID, serviceID int64, perms domain.PermissionChecker) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
