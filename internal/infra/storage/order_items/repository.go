package order_items

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/pkg/dbmetrics"
	"github.com/jneves25/barber-service/pkg/psqlbuilder"
	"github.com/shopspring/decimal"
)

const tableName = "order_items"

// Repository репозиторий позиций заказа (таба) записи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория позиций заказа
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает позиции заказа записи в порядке добавления
func (r *Repository) List(ctx context.Context, appointmentID int64) ([]domain.OrderItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "unit_price", "quantity", "kind").
		From(tableName).
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.Name, &item.UnitPrice, &item.Quantity, &item.Kind); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Replace заменяет все позиции заказа записи на items.
// Должен вызываться внутри транзакции, иначе при сбое вставки заказ останется пустым
func (r *Repository) Replace(ctx context.Context, appointmentID int64, items []domain.OrderItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(items) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(tableName).
		Columns("id", "appointment_id", "position", "name", "unit_price", "quantity", "kind")

	for i, item := range items {
		insertBuilder = insertBuilder.Values(item.ID, appointmentID, i, item.Name, item.UnitPrice, item.Quantity, item.Kind)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// SumCompletedRevenue суммирует заказы завершенных записей мастера за период [from, to]
func (r *Repository) SumCompletedRevenue(ctx context.Context, professionalID int64, from, to time.Time) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(oi.unit_price * oi.quantity), 0)").
		From(tableName + " oi").
		Join("appointments a ON a.id = oi.appointment_id").
		Where(squirrel.Eq{
			"a.professional_id": professionalID,
			"a.status":          string(domain.StatusCompleted),
		}).
		Where(squirrel.GtOrEq{"a.appointment_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"a.appointment_date": to.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumCompletedRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var total decimal.Decimal
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumCompletedRevenue - scan sum: %v", ErrScanRow, err)
	}

	return total, nil
}
