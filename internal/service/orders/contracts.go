package orders

import (
	"context"

	"github.com/jneves25/barber-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// OrderItemRepository интерфейс репозитория позиций заказа
type OrderItemRepository interface {
	List(ctx context.Context, appointmentID int64) ([]domain.OrderItem, error)
	Replace(ctx context.Context, appointmentID int64, items []domain.OrderItem) error
}

// CatalogClient интерфейс справочников услуг и товаров
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс бизнес-метрик заказов
type MetricsRecorder interface {
	RecordLedgerMutation(operation string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ledgerOp изменение заказа внутри транзакции
type ledgerOp func(ledger *domain.OrderLedger) ([]domain.OrderItem, error)
