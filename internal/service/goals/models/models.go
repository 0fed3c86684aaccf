package models

import (
	"github.com/jneves25/barber-service/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest запрос на создание месячной цели
type CreateGoalRequest struct {
	ProfessionalID int64           `json:"professionalId" validate:"required,gt=0"`
	CompanyID      int64           `json:"companyId" validate:"gte=0"`
	Month          int             `json:"month" validate:"required,min=1,max=12"`
	Year           int             `json:"year" validate:"required,gt=0"`
	Target         decimal.Decimal `json:"target"`
}

// ToDomainGoal конвертирует запрос в доменную модель
func (r *CreateGoalRequest) ToDomainGoal() *domain.Goal {
	return &domain.Goal{
		ProfessionalID: r.ProfessionalID,
		CompanyID:      r.CompanyID,
		Month:          r.Month,
		Year:           r.Year,
		Target:         r.Target,
	}
}

// ProgressResponse прогресс цели.
// Percentage отсутствует для будущих месяцев
type ProgressResponse struct {
	Percentage  *float64 `json:"percentage"`
	IsCompleted bool     `json:"isCompleted"`
	IsFuture    bool     `json:"isFuture"`
	Current     string   `json:"current"`
	Remaining   string   `json:"remaining"`
}

// GoalResponse цель вместе с прогрессом
type GoalResponse struct {
	ID             int64            `json:"id"`
	ProfessionalID int64            `json:"professionalId"`
	CompanyID      int64            `json:"companyId"`
	Month          int              `json:"month"`
	Year           int              `json:"year"`
	Target         string           `json:"target"`
	Progress       ProgressResponse `json:"progress"`
}

// GoalListResponse список целей мастера
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// FromDomainGoal конвертирует цель и её прогресс в DTO
func FromDomainGoal(goal *domain.Goal, progress domain.GoalProgress) *GoalResponse {
	return &GoalResponse{
		ID:             goal.ID,
		ProfessionalID: goal.ProfessionalID,
		CompanyID:      goal.CompanyID,
		Month:          goal.Month,
		Year:           goal.Year,
		Target:         goal.Target.StringFixed(2),
		Progress: ProgressResponse{
			Percentage:  progress.Percentage,
			IsCompleted: progress.IsCompleted,
			IsFuture:    progress.IsFuture,
			Current:     progress.Current.StringFixed(2),
			Remaining:   progress.Remaining.StringFixed(2),
		},
	}
}
