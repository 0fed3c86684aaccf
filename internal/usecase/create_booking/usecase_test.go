package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
	catalogClient "github.com/jneves25/barber-service/internal/integrations/catalogservice"
	slotsUC "github.com/jneves25/barber-service/internal/usecase/get_available_slots"
	"github.com/jneves25/barber-service/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointments struct {
	bookings  []domain.BookedInterval
	created   []*domain.Appointment
	createErr error
}

func (f *fakeAppointments) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = int64(len(f.created) + 1)
	f.created = append(f.created, appt)
	return appt, nil
}

func (f *fakeAppointments) ListBookings(_ context.Context, _ int64, _ time.Time) ([]domain.BookedInterval, error) {
	return f.bookings, nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetService(_ context.Context, id int64) (*domain.Service, error) {
	if id == 10 {
		return &domain.Service{ID: 10, Name: "Haircut", Price: decimal.NewFromInt(40), DurationMinutes: 30}, nil
	}
	return nil, catalogClient.ErrServiceNotFound
}

func (fakeCatalog) GetProfessional(_ context.Context, id int64) (*domain.Professional, error) {
	if id == 5 {
		return &domain.Professional{ID: 5, Name: "Marcos"}, nil
	}
	return nil, catalogClient.ErrProfessionalNotFound
}

type fakeTx struct{ calls int }

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var today = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeAppointments) *UseCase {
	schedule := slotsUC.DefaultSchedule()
	schedule.MaxAdvanceDays = 30
	return NewUseCase(repo, fakeCatalog{}, &fakeTx{}, schedule, nopLogger{}).
		WithTimeProvider(fixedTime{now: today})
}

func request(date time.Time, start string) *Request {
	return &Request{
		ClientName:     "  Ana  ",
		ProfessionalID: 5,
		ServiceID:      10,
		Date:           date,
		StartTime:      types.TimeString(start),
	}
}

func TestUseCase_CreatesPendingAppointment(t *testing.T) {
	repo := &fakeAppointments{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), request(today.AddDate(0, 0, 1), "10:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Ana", resp.ClientName)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, "40.00", resp.ServicePrice)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.StatusPending, repo.created[0].Status)
}

func TestUseCase_SlotChecks(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)
	taken := []domain.BookedInterval{{StartTime: "10:00", DurationMinutes: 30}}

	tests := []struct {
		name     string
		req      *Request
		bookings []domain.BookedInterval
		wantErr  error
	}{
		{name: "overlapping booking", req: request(tomorrow, "10:00"), bookings: taken, wantErr: ErrSlotNotAvailable},
		{name: "off grid", req: request(tomorrow, "10:10"), wantErr: ErrInvalidTimeSlot},
		{name: "at closing time", req: request(tomorrow, "19:00"), wantErr: ErrInvalidTimeSlot},
		{name: "earlier today", req: request(today, "11:30"), wantErr: ErrInvalidTimeSlot},
		{name: "past date", req: request(today.AddDate(0, 0, -1), "10:00"), wantErr: ErrInvalidDate},
		{name: "too far ahead", req: request(today.AddDate(0, 0, 31), "10:00"), wantErr: ErrDateTooFarInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointments{bookings: tt.bookings}
			_, err := newTestUseCase(repo).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created)
		})
	}
}

func TestUseCase_AdjacentSlotIsFree(t *testing.T) {
	repo := &fakeAppointments{bookings: []domain.BookedInterval{{StartTime: "10:00", DurationMinutes: 30}}}

	_, err := newTestUseCase(repo).Execute(context.Background(), request(today.AddDate(0, 0, 1), "10:30"))
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestUseCase_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointments{})
	tomorrow := today.AddDate(0, 0, 1)

	noName := request(tomorrow, "10:00")
	noName.ClientName = " "
	_, err := uc.Execute(context.Background(), noName)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badTime := request(tomorrow, "25:00")
	_, err = uc.Execute(context.Background(), badTime)
	assert.ErrorIs(t, err, ErrInvalidInput)

	unknownService := request(tomorrow, "10:00")
	unknownService.ServiceID = 11
	_, err = uc.Execute(context.Background(), unknownService)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	unknownProfessional := request(tomorrow, "10:00")
	unknownProfessional.ProfessionalID = 6
	_, err = uc.Execute(context.Background(), unknownProfessional)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_RepositoryFailure(t *testing.T) {
	repo := &fakeAppointments{createErr: errors.New("db down")}

	_, err := newTestUseCase(repo).Execute(context.Background(), request(today.AddDate(0, 0, 1), "10:00"))
	assert.ErrorIs(t, err, ErrInternal)
}
