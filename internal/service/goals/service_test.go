package goals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
	goalRepo "github.com/jneves25/barber-service/internal/infra/storage/goal"
	catalogClient "github.com/jneves25/barber-service/internal/integrations/catalogservice"
	"github.com/jneves25/barber-service/internal/service/goals/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGoals struct {
	goals []*domain.Goal
}

func (f *fakeGoals) Create(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	goal.ID = int64(len(f.goals) + 1)
	f.goals = append(f.goals, goal)
	return goal, nil
}

func (f *fakeGoals) GetByID(_ context.Context, id int64) (*domain.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, goalRepo.ErrGoalNotFound
}

func (f *fakeGoals) GetByPeriod(_ context.Context, professionalID int64, month, year int) (*domain.Goal, error) {
	for _, g := range f.goals {
		if g.ProfessionalID == professionalID && g.Month == month && g.Year == year {
			return g, nil
		}
	}
	return nil, goalRepo.ErrGoalNotFound
}

func (f *fakeGoals) ListByProfessional(_ context.Context, professionalID int64) ([]*domain.Goal, error) {
	out := make([]*domain.Goal, 0)
	for _, g := range f.goals {
		if g.ProfessionalID == professionalID {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeRevenue struct {
	byMonth map[time.Month]decimal.Decimal
	calls   int
	err     error
}

func (f *fakeRevenue) SumCompletedRevenue(_ context.Context, _ int64, from, to time.Time) (decimal.Decimal, error) {
	f.calls++
	if f.err != nil {
		return decimal.Zero, f.err
	}
	if from.Month() != to.Month() || from.Day() != 1 {
		return decimal.Zero, errors.New("unexpected period")
	}
	return f.byMonth[from.Month()], nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetProfessional(_ context.Context, id int64) (*domain.Professional, error) {
	if id == 5 {
		return &domain.Professional{ID: 5}, nil
	}
	return nil, catalogClient.ErrProfessionalNotFound
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var manager = domain.PermissionFunc(func(name string) bool { return name == domain.PermissionManageGoals })

func newTestService(revenue *fakeRevenue) (*Service, *fakeGoals) {
	repo := &fakeGoals{}
	svc := NewService(repo, revenue, fakeCatalog{}, nopLogger{}).
		WithTimeProvider(fixedTime{now: time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)})
	return svc, repo
}

func TestService_CreateAndProgress(t *testing.T) {
	revenue := &fakeRevenue{byMonth: map[time.Month]decimal.Decimal{time.March: decimal.NewFromInt(100)}}
	svc, _ := newTestService(revenue)

	resp, err := svc.Create(context.Background(), &models.CreateGoalRequest{
		ProfessionalID: 5, Month: 3, Year: 2025, Target: decimal.NewFromInt(200),
	}, manager)
	require.NoError(t, err)

	require.NotNil(t, resp.Progress.Percentage)
	assert.InDelta(t, 50, *resp.Progress.Percentage, 0.0001)
	assert.False(t, resp.Progress.IsCompleted)
	assert.Equal(t, "100.00", resp.Progress.Remaining)

	got, err := svc.GetProgress(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestService_ZeroTargetWithRevenueIsCompleted(t *testing.T) {
	revenue := &fakeRevenue{byMonth: map[time.Month]decimal.Decimal{time.March: decimal.NewFromInt(50)}}
	svc, _ := newTestService(revenue)

	resp, err := svc.Create(context.Background(), &models.CreateGoalRequest{
		ProfessionalID: 5, Month: 3, Year: 2025, Target: decimal.Zero,
	}, manager)
	require.NoError(t, err)

	require.NotNil(t, resp.Progress.Percentage)
	assert.Equal(t, float64(100), *resp.Progress.Percentage)
	assert.True(t, resp.Progress.IsCompleted)
	assert.Equal(t, "0.00", resp.Progress.Remaining)
}

func TestService_FutureGoalSkipsRevenue(t *testing.T) {
	revenue := &fakeRevenue{}
	svc, _ := newTestService(revenue)

	resp, err := svc.Create(context.Background(), &models.CreateGoalRequest{
		ProfessionalID: 5, Month: 4, Year: 2025, Target: decimal.NewFromInt(1000),
	}, manager)
	require.NoError(t, err)

	assert.True(t, resp.Progress.IsFuture)
	assert.Nil(t, resp.Progress.Percentage)
	assert.Zero(t, revenue.calls)
}

func TestService_CreateErrors(t *testing.T) {
	svc, repo := newTestService(&fakeRevenue{})
	repo.goals = append(repo.goals, &domain.Goal{ID: 1, ProfessionalID: 5, Month: 3, Year: 2025})
	none := domain.PermissionFunc(func(string) bool { return false })

	tests := []struct {
		name    string
		req     *models.CreateGoalRequest
		perms   domain.PermissionChecker
		wantErr error
	}{
		{name: "no capability", req: &models.CreateGoalRequest{ProfessionalID: 5, Month: 5, Year: 2025}, perms: none, wantErr: ErrAccessDenied},
		{name: "invalid month", req: &models.CreateGoalRequest{ProfessionalID: 5, Month: 13, Year: 2025}, perms: manager, wantErr: ErrInvalidInput},
		{name: "negative target", req: &models.CreateGoalRequest{ProfessionalID: 5, Month: 5, Year: 2025, Target: decimal.NewFromInt(-1)}, perms: manager, wantErr: ErrInvalidInput},
		{name: "target with fractions of a cent", req: &models.CreateGoalRequest{ProfessionalID: 5, Month: 5, Year: 2025, Target: decimal.RequireFromString("2000.005")}, perms: manager, wantErr: ErrInvalidInput},
		{name: "unknown professional", req: &models.CreateGoalRequest{ProfessionalID: 6, Month: 5, Year: 2025}, perms: manager, wantErr: ErrProfessionalNotFound},
		{name: "duplicate month", req: &models.CreateGoalRequest{ProfessionalID: 5, Month: 3, Year: 2025}, perms: manager, wantErr: ErrGoalAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req, tt.perms)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Len(t, repo.goals, 1)
}

func TestService_ListByProfessional(t *testing.T) {
	revenue := &fakeRevenue{byMonth: map[time.Month]decimal.Decimal{
		time.February: decimal.NewFromInt(900),
		time.March:    decimal.NewFromInt(10),
	}}
	svc, repo := newTestService(revenue)
	repo.goals = []*domain.Goal{
		{ID: 1, ProfessionalID: 5, Month: 2, Year: 2025, Target: decimal.NewFromInt(600)},
		{ID: 2, ProfessionalID: 5, Month: 3, Year: 2025, Target: decimal.NewFromInt(100)},
		{ID: 3, ProfessionalID: 5, Month: 6, Year: 2025, Target: decimal.NewFromInt(100)},
		{ID: 4, ProfessionalID: 7, Month: 3, Year: 2025, Target: decimal.NewFromInt(100)},
	}

	resp, err := svc.ListByProfessional(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, resp.Goals, 3)
	assert.True(t, resp.Goals[0].Progress.IsCompleted)
	assert.InDelta(t, 10, *resp.Goals[1].Progress.Percentage, 0.0001)
	assert.True(t, resp.Goals[2].Progress.IsFuture)
	assert.Equal(t, 2, revenue.calls)
}

func TestService_GetProgressErrors(t *testing.T) {
	svc, repo := newTestService(&fakeRevenue{err: errors.New("db down")})
	repo.goals = []*domain.Goal{{ID: 1, ProfessionalID: 5, Month: 3, Year: 2025}}

	_, err := svc.GetProgress(context.Background(), 2)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = svc.GetProgress(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
