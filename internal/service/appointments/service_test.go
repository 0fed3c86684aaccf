package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jneves25/barber-service/internal/domain"
	appointmentRepo "github.com/jneves25/barber-service/internal/infra/storage/appointment"
	"github.com/jneves25/barber-service/internal/service/appointments/models"
	"github.com/jneves25/barber-service/pkg/ptr"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	lastStatus   *domain.AppointmentStatus
	err          error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeRepo) ListByProfessional(_ context.Context, professionalID int64, _, _ time.Time, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.lastStatus = status
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.ProfessionalID == professionalID && (status == nil || a.Status == *status) {
			out = append(out, a)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func seeded() *fakeRepo {
	return &fakeRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Ana", ProfessionalID: 5, ServiceID: 10, Date: day, StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusPending},
		{ID: 2, ClientName: "Bia", ProfessionalID: 5, Date: day, StartTime: "11:00", Status: domain.StatusCompleted},
		{ID: 3, ClientName: "Caio", ProfessionalID: 6, Date: day, StartTime: "11:00", Status: domain.StatusOpen},
	}}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(seeded(), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", resp.Date)
	require.NotNil(t, resp.ServiceID)
	assert.Equal(t, int64(10), *resp.ServiceID)

	resp, err = svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, resp.ServiceID)

	_, err = svc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_ListByProfessional(t *testing.T) {
	repo := seeded()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListByProfessional(context.Background(), &models.ListByProfessionalRequest{ProfessionalID: 5, From: day, To: day})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Nil(t, repo.lastStatus)

	resp, err = svc.ListByProfessional(context.Background(), &models.ListByProfessionalRequest{
		ProfessionalID: 5, From: day, To: day, Status: ptr.Ptr("completed"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Bia", resp.Appointments[0].ClientName)
}

func TestService_ListByProfessionalInvalid(t *testing.T) {
	svc := NewService(seeded(), nopLogger{})

	tests := []*models.ListByProfessionalRequest{
		{ProfessionalID: 5, From: day, To: day.AddDate(0, 0, -1)},
		{ProfessionalID: 5, From: day, To: day.AddDate(1, 0, 0)},
		{ProfessionalID: 5, From: day, To: day, Status: ptr.Ptr("cancelled")},
	}
	for _, req := range tests {
		_, err := svc.ListByProfessional(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestService_ListByProfessionalRepositoryError(t *testing.T) {
	repo := seeded()
	repo.err = errors.New("db down")

	_, err := NewService(repo, nopLogger{}).ListByProfessional(context.Background(), &models.ListByProfessionalRequest{ProfessionalID: 5, From: day, To: day})
	assert.ErrorIs(t, err, ErrInternal)
}
