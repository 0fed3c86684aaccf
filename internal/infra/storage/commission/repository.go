package commission

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

const (
	configsTable = "commission_configs"
	rulesTable   = "commission_rules"
)

var ruleColumns = []string{
	"id",
	"professional_id",
	"service_id",
	"rule_type",
	"value",
	"created_at",
	"updated_at",
}

// Repository репозиторий общих конфигураций и правил комиссий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комиссий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает общую конфигурацию комиссии мастера
func (r *Repository) GetConfig(ctx context.Context, professionalID int64) (*domain.CommissionConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "professional_id", "general_percentage", "created_at", "updated_at").
		From(configsTable).
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.CommissionConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.ProfessionalID,
		&config.GeneralPercentage,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// UpsertConfig создает или обновляет общую конфигурацию мастера
func (r *Repository) UpsertConfig(ctx context.Context, config *domain.CommissionConfig) (*domain.CommissionConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(configsTable).
		Columns("professional_id", "general_percentage").
		Values(config.ProfessionalID, config.GeneralPercentage).
		Suffix("ON CONFLICT (professional_id) DO UPDATE SET general_percentage = EXCLUDED.general_percentage, updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetRule получает правило комиссии мастера для услуги
func (r *Repository) GetRule(ctx context.Context, professionalID, serviceID int64) (*domain.CommissionRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From(rulesTable).
		Where(squirrel.Eq{"professional_id": professionalID, "service_id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRule - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRule - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// ListRules получает все правила мастера, отсортированные по услуге
func (r *Repository) ListRules(ctx context.Context, professionalID int64) ([]*domain.CommissionRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From(rulesTable).
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.CommissionRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRules - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// UpsertRule создает или обновляет правило для пары (мастер, услуга)
func (r *Repository) UpsertRule(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(rulesTable).
		Columns("professional_id", "service_id", "rule_type", "value").
		Values(rule.ProfessionalID, rule.ServiceID, rule.RuleType, rule.Value).
		Suffix("ON CONFLICT (professional_id, service_id) DO UPDATE " +
			"SET rule_type = EXCLUDED.rule_type, value = EXCLUDED.value, updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertRule - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertRule - execute upsert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// DeleteRule удаляет правило, после чего для услуги снова действует общий процент
func (r *Repository) DeleteRule(ctx context.Context, professionalID, serviceID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(rulesTable).
		Where(squirrel.Eq{"professional_id": professionalID, "service_id": serviceID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteRule - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteRule - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteRule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.CommissionRule, error) {
	var rule domain.CommissionRule
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.ProfessionalID,
		&rule.ServiceID,
		&rule.RuleType,
		&rule.Value,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
