package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a monthly revenue target of a professional.
// Progress is always derived, never stored on the goal.
type Goal struct {
	ID             int64
	ProfessionalID int64
	CompanyID      int64
	Month          int // 1..12
	Year           int
	Target         decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks month range and non-negative target
func (g *Goal) Validate() error {
	if g.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidGoal)
	}
	if g.Month < MinGoalMonth || g.Month > MaxGoalMonth {
		return fmt.Errorf("%w: month must be between %d and %d", ErrInvalidGoal, MinGoalMonth, MaxGoalMonth)
	}
	if g.Year <= 0 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidGoal)
	}
	if g.Target.IsNegative() {
		return fmt.Errorf("%w: target must not be negative", ErrInvalidGoal)
	}
	if !HasMoneyScale(g.Target) {
		return fmt.Errorf("%w: target has more than %d decimal places", ErrInvalidGoal, MoneyScale)
	}
	return nil
}

// PeriodStart returns the first instant of the goal month in loc
func (g *Goal) PeriodStart(loc *time.Location) time.Time {
	return time.Date(g.Year, time.Month(g.Month), 1, 0, 0, 0, 0, loc)
}

// PeriodEnd returns the last day of the goal month in loc
func (g *Goal) PeriodEnd(loc *time.Location) time.Time {
	return g.PeriodStart(loc).AddDate(0, 1, -1)
}

// GoalProgress is what a goal card renders.
// Percentage is nil for future goals: progress is not applicable, not zero.
type GoalProgress struct {
	Percentage  *float64
	IsCompleted bool
	IsFuture    bool
	Remaining   decimal.Decimal
	Current     decimal.Decimal
}

// CalculateProgress derives progress of goal given the accrued value and the current time
func CalculateProgress(goal *Goal, current decimal.Decimal, now time.Time) GoalProgress {
	progress := GoalProgress{
		IsFuture:  isFutureMonth(goal.Year, goal.Month, now),
		Remaining: decimal.Max(decimal.Zero, goal.Target.Sub(current)),
		Current:   current,
	}
	if progress.IsFuture {
		return progress
	}

	var percentage float64
	switch {
	case goal.Target.IsZero() && current.IsPositive():
		percentage = 100
	case goal.Target.IsPositive():
		percentage = current.Div(goal.Target).Mul(hundred).InexactFloat64()
		if percentage > 100 {
			percentage = 100
		}
	default:
		percentage = 0
	}

	progress.Percentage = &percentage
	progress.IsCompleted = percentage >= 100
	return progress
}

// isFutureMonth compares first-of-month dates: (year, month) strictly after now's month
func isFutureMonth(year, month int, now time.Time) bool {
	goalMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return goalMonth.After(currentMonth)
}
