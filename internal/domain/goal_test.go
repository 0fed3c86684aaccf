package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goalNow = time.Date(2025, time.March, 14, 15, 0, 0, 0, time.UTC)

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name          string
		month         int
		year          int
		target        string
		current       string
		wantPercent   float64
		wantCompleted bool
		wantRemaining string
	}{
		{name: "zero target with revenue", month: 3, year: 2025, target: "0", current: "50", wantPercent: 100, wantCompleted: true, wantRemaining: "0"},
		{name: "zero target without revenue", month: 3, year: 2025, target: "0", current: "0", wantPercent: 0, wantRemaining: "0"},
		{name: "half way", month: 3, year: 2025, target: "200", current: "100", wantPercent: 50, wantRemaining: "100"},
		{name: "exceeded is capped", month: 3, year: 2025, target: "200", current: "500", wantPercent: 100, wantCompleted: true, wantRemaining: "0"},
		{name: "exactly reached", month: 3, year: 2025, target: "200", current: "200", wantPercent: 100, wantCompleted: true, wantRemaining: "0"},
		{name: "past month", month: 12, year: 2024, target: "1000", current: "250", wantPercent: 25, wantRemaining: "750"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := &Goal{ProfessionalID: 5, Month: tt.month, Year: tt.year, Target: decimal.RequireFromString(tt.target)}

			progress := CalculateProgress(goal, decimal.RequireFromString(tt.current), goalNow)

			require.NotNil(t, progress.Percentage)
			assert.InDelta(t, tt.wantPercent, *progress.Percentage, 0.0001)
			assert.Equal(t, tt.wantCompleted, progress.IsCompleted)
			assert.False(t, progress.IsFuture)
			assert.True(t, decimal.RequireFromString(tt.wantRemaining).Equal(progress.Remaining), "remaining %s", progress.Remaining)
		})
	}
}

func TestCalculateProgress_FutureMonth(t *testing.T) {
	goal := &Goal{ProfessionalID: 5, Month: 4, Year: 2025, Target: decimal.NewFromInt(1000)}

	progress := CalculateProgress(goal, decimal.Zero, goalNow)

	assert.True(t, progress.IsFuture)
	assert.Nil(t, progress.Percentage)
	assert.False(t, progress.IsCompleted)
	assert.True(t, decimal.NewFromInt(1000).Equal(progress.Remaining))
}

func TestCalculateProgress_NextYearJanuary(t *testing.T) {
	now := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)
	goal := &Goal{ProfessionalID: 5, Month: 1, Year: 2026, Target: decimal.NewFromInt(10)}

	progress := CalculateProgress(goal, decimal.NewFromInt(20), now)

	assert.True(t, progress.IsFuture)
	assert.Nil(t, progress.Percentage)
}

func TestGoal_Validate(t *testing.T) {
	valid := Goal{ProfessionalID: 5, Month: 3, Year: 2025, Target: decimal.NewFromInt(100)}
	assert.NoError(t, valid.Validate())

	cents := Goal{ProfessionalID: 5, Month: 3, Year: 2025, Target: decimal.RequireFromString("1500.25")}
	assert.NoError(t, cents.Validate())

	invalid := []Goal{
		{ProfessionalID: 0, Month: 3, Year: 2025},
		{ProfessionalID: 5, Month: 0, Year: 2025},
		{ProfessionalID: 5, Month: 13, Year: 2025},
		{ProfessionalID: 5, Month: 3, Year: 0},
		{ProfessionalID: 5, Month: 3, Year: 2025, Target: decimal.NewFromInt(-1)},
		{ProfessionalID: 5, Month: 3, Year: 2025, Target: decimal.RequireFromString("1500.125")},
	}
	for _, g := range invalid {
		assert.ErrorIs(t, g.Validate(), ErrInvalidGoal)
	}
}

func TestGoal_Period(t *testing.T) {
	goal := &Goal{Month: 2, Year: 2024}

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), goal.PeriodStart(time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), goal.PeriodEnd(time.UTC))
}
