package commissions

import (
	"context"

	"github.com/jneves25/barber-service/internal/domain"
)

// CommissionRepository интерфейс репозитория комиссий
type CommissionRepository interface {
	GetConfig(ctx context.Context, professionalID int64) (*domain.CommissionConfig, error)
	UpsertConfig(ctx context.Context, config *domain.CommissionConfig) (*domain.CommissionConfig, error)
	GetRule(ctx context.Context, professionalID, serviceID int64) (*domain.CommissionRule, error)
	ListRules(ctx context.Context, professionalID int64) ([]*domain.CommissionRule, error)
	UpsertRule(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error)
	DeleteRule(ctx context.Context, professionalID, serviceID int64) error
}

// CatalogClient интерфейс справочников услуг и мастеров
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
	GetProfessional(ctx context.Context, professionalID int64) (*domain.Professional, error)
}

// MetricsRecorder интерфейс бизнес-метрик комиссий
type MetricsRecorder interface {
	RecordCommissionWrite(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Исходы попытки записи правила для метрик
const (
	outcomeWritten = "written"
	outcomeNoop    = "noop"
	outcomeInvalid = "invalid"
)
