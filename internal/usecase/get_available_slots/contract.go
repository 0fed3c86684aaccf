package get_available_slots

import (
	"context"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
)

// AppointmentRepository интерфейс запроса существующих записей
type AppointmentRepository interface {
	// ListBookings возвращает интервалы активных записей мастера на дату
	ListBookings(ctx context.Context, professionalID int64, date time.Time) ([]domain.BookedInterval, error)
}

// CatalogClient интерфейс справочников услуг и мастеров
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
	GetProfessional(ctx context.Context, professionalID int64) (*domain.Professional, error)
}

// MetricsRecorder интерфейс бизнес-метрик генерации слотов
type MetricsRecorder interface {
	ObserveSlots(available, unavailable int)
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
