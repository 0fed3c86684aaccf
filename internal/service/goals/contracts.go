package goals

import (
	"context"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/shopspring/decimal"
)

// GoalRepository интерфейс репозитория целей
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	GetByID(ctx context.Context, id int64) (*domain.Goal, error)
	GetByPeriod(ctx context.Context, professionalID int64, month, year int) (*domain.Goal, error)
	ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.Goal, error)
}

// RevenueRepository интерфейс агрегата выручки мастера
type RevenueRepository interface {
	SumCompletedRevenue(ctx context.Context, professionalID int64, from, to time.Time) (decimal.Decimal, error)
}

// CatalogClient интерфейс справочника мастеров
type CatalogClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*domain.Professional, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
