package goal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/pkg/dbmetrics"
	"github.com/jneves25/barber-service/pkg/psqlbuilder"
)

const tableName = "goals"

var columns = []string{
	"id",
	"professional_id",
	"company_id",
	"month",
	"year",
	"target",
	"created_at",
	"updated_at",
}

// Repository репозиторий месячных целей мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория целей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую цель
func (r *Repository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("professional_id", "company_id", "month", "year", "target").
		Values(goal.ProfessionalID, goal.CompanyID, goal.Month, goal.Year, goal.Target).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&goal.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	goal.CreatedAt = createdAt.Time
	goal.UpdatedAt = updatedAt.Time

	return goal, nil
}

// GetByID получает цель по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByPeriod получает цель мастера за месяц
func (r *Repository) GetByPeriod(ctx context.Context, professionalID int64, month, year int) (*domain.Goal, error) {
	return r.getOne(ctx, "GetByPeriod", squirrel.Eq{
		"professional_id": professionalID,
		"month":           month,
		"year":            year,
	})
}

// ListByProfessional получает цели мастера, начиная с последнего месяца
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.Goal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("year DESC, month DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProfessional - scan row: %v", ErrScanRow, err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - rows error: %v", ErrScanRow, err)
	}

	return goals, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Goal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	goal, err := scanGoal(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan goal: %v", ErrScanRow, op, err)
	}

	return goal, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var goal domain.Goal
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&goal.ID,
		&goal.ProfessionalID,
		&goal.CompanyID,
		&goal.Month,
		&goal.Year,
		&goal.Target,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	goal.CreatedAt = createdAt.Time
	goal.UpdatedAt = updatedAt.Time

	return &goal, nil
}
